package controllers

import (
	"net/http"

	"tailorshop-backend/config"
	"tailorshop-backend/middlewares"
	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type measurementInput struct {
	CustomerID  uint               `json:"customer_id" binding:"required"`
	GarmentType models.GarmentType `json:"garment_type" binding:"required"`
	Chest       float64            `json:"chest"`
	Waist       float64            `json:"waist"`
	Hip         float64            `json:"hip"`
	Shoulder    float64            `json:"shoulder"`
	Sleeve      float64            `json:"sleeve"`
	Neck        float64            `json:"neck"`
	Inseam      float64            `json:"inseam"`
	Length      float64            `json:"length"`
	Notes       string             `json:"notes"`
}

// CreateMeasurement stores a new version for (customer, garment type) and
// moves the is_latest flag: the previous latest row is demoted first so at
// most one row per pair carries the flag.
func CreateMeasurement(c *gin.Context) {
	var input measurementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}
	if !input.GarmentType.Valid() {
		utils.Error(c, http.StatusBadRequest, "unknown garment type", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "customer not found", nil)
		return
	}

	m := models.Measurement{
		CustomerID:  input.CustomerID,
		GarmentType: input.GarmentType,
		Chest:       input.Chest,
		Waist:       input.Waist,
		Hip:         input.Hip,
		Shoulder:    input.Shoulder,
		Sleeve:      input.Sleeve,
		Neck:        input.Neck,
		Inseam:      input.Inseam,
		Length:      input.Length,
		Notes:       input.Notes,
		TakenByID:   middlewares.CurrentUserID(c),
		IsLatest:    true,
	}
	if err := m.ValidateFields(); err != nil {
		utils.Error(c, http.StatusBadRequest, "missing required fields", err)
		return
	}

	var maxVersion int
	config.DB.Model(&models.Measurement{}).
		Where("customer_id = ? AND garment_type = ?", input.CustomerID, input.GarmentType).
		Select("COALESCE(MAX(version),0)").Scan(&maxVersion)
	m.Version = maxVersion + 1

	// Demote the previous latest before inserting the new one.
	config.DB.Model(&models.Measurement{}).
		Where("customer_id = ? AND garment_type = ? AND is_latest = ?", input.CustomerID, input.GarmentType, true).
		Update("is_latest", false)

	if err := config.DB.Create(&m).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not create measurement", err)
		return
	}
	utils.Success(c, "measurement created", m)
}

// GET /measurements?customer_id=&garment_type=&latest=
func GetAllMeasurements(c *gin.Context) {
	q := config.DB.Model(&models.Measurement{})

	if cid := c.Query("customer_id"); cid != "" {
		q = q.Where("customer_id = ?", cid)
	}
	if gt := c.Query("garment_type"); gt != "" {
		q = q.Where("garment_type = ?", gt)
	}
	if c.Query("latest") == "true" {
		q = q.Where("is_latest = ?", true)
	}

	var out []models.Measurement
	if err := q.Order("id DESC").Find(&out).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "query failed", err)
		return
	}
	utils.Success(c, "ok", out)
}

func GetMeasurementByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var m models.Measurement
	if err := config.DB.First(&m, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "measurement not found", nil)
		return
	}
	utils.Success(c, "ok", m)
}

// UpdateMeasurement edits the values of an existing version in place. If
// the edited row is not the latest it is not promoted.
func UpdateMeasurement(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var m models.Measurement
	if err := config.DB.First(&m, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "measurement not found", nil)
		return
	}

	var input struct {
		Chest    *float64 `json:"chest"`
		Waist    *float64 `json:"waist"`
		Hip      *float64 `json:"hip"`
		Shoulder *float64 `json:"shoulder"`
		Sleeve   *float64 `json:"sleeve"`
		Neck     *float64 `json:"neck"`
		Inseam   *float64 `json:"inseam"`
		Length   *float64 `json:"length"`
		Notes    *string  `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid payload", err)
		return
	}

	if input.Chest != nil {
		m.Chest = *input.Chest
	}
	if input.Waist != nil {
		m.Waist = *input.Waist
	}
	if input.Hip != nil {
		m.Hip = *input.Hip
	}
	if input.Shoulder != nil {
		m.Shoulder = *input.Shoulder
	}
	if input.Sleeve != nil {
		m.Sleeve = *input.Sleeve
	}
	if input.Neck != nil {
		m.Neck = *input.Neck
	}
	if input.Inseam != nil {
		m.Inseam = *input.Inseam
	}
	if input.Length != nil {
		m.Length = *input.Length
	}
	if input.Notes != nil {
		m.Notes = *input.Notes
	}

	if err := m.ValidateFields(); err != nil {
		utils.Error(c, http.StatusBadRequest, "missing required fields", err)
		return
	}
	if err := config.DB.Save(&m).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not update measurement", err)
		return
	}
	utils.Success(c, "measurement updated", m)
}

// DeleteMeasurement only flips is_latest off on the targeted row. It does
// not remove the row and does not promote an older version, so the pair
// may end up with no latest measurement at all.
func DeleteMeasurement(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "invalid id", nil)
		return
	}

	var m models.Measurement
	if err := config.DB.First(&m, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "measurement not found", nil)
		return
	}

	m.IsLatest = false
	if err := config.DB.Save(&m).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "could not delete measurement", err)
		return
	}
	utils.Success(c, "measurement retired", m)
}
