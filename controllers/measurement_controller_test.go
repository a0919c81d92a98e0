package controllers

import (
	"net/http"
	"testing"

	"tailorshop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func measurementRouter() *gin.Engine {
	r := gin.New()
	r.POST("/measurements", CreateMeasurement)
	r.GET("/measurements", GetAllMeasurements)
	r.PUT("/measurements/:id", UpdateMeasurement)
	r.DELETE("/measurements/:id", DeleteMeasurement)
	return r
}

func latestCount(t *testing.T, db *gorm.DB, customerID uint, gt models.GarmentType) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Measurement{}).
		Where("customer_id = ? AND garment_type = ? AND is_latest = ?", customerID, gt, true).
		Count(&n).Error)
	return n
}

func shirtPayload(customerID uint) gin.H {
	return gin.H{
		"customer_id":  customerID,
		"garment_type": "SHIRT",
		"chest":        98.0,
		"shoulder":     44.0,
		"sleeve":       62.0,
		"neck":         39.0,
		"length":       74.0,
	}
}

func TestCreateMeasurementVersionsAndLatestFlag(t *testing.T) {
	db := setupTest(t)
	customer := models.Customer{Name: "Asha", Phone: "+100", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)

	r := measurementRouter()

	w := doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var first models.Measurement
	decodeData(t, w, &first)
	require.Equal(t, 1, first.Version)
	require.True(t, first.IsLatest)

	w = doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var second models.Measurement
	decodeData(t, w, &second)
	require.Equal(t, 2, second.Version)

	// The previous latest was demoted; at most one row carries the flag.
	require.EqualValues(t, 1, latestCount(t, db, customer.ID, models.GarmentShirt))
	var reloaded models.Measurement
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	require.False(t, reloaded.IsLatest)

	// Versions for a different garment type count independently.
	w = doJSON(t, r, http.MethodPost, "/measurements", gin.H{
		"customer_id":  customer.ID,
		"garment_type": "TROUSER",
		"waist":        84.0,
		"hip":          100.0,
		"inseam":       78.0,
		"length":       102.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var trouser models.Measurement
	decodeData(t, w, &trouser)
	require.Equal(t, 1, trouser.Version)
}

func TestCreateMeasurementMissingRequiredField(t *testing.T) {
	db := setupTest(t)
	customer := models.Customer{Name: "Ben", Phone: "+200", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)

	payload := shirtPayload(customer.ID)
	payload["neck"] = 0.0

	w := doJSON(t, measurementRouter(), http.MethodPost, "/measurements", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteMeasurementFlipsFlagWithoutPromotion(t *testing.T) {
	db := setupTest(t)
	customer := models.Customer{Name: "Clio", Phone: "+300", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)

	r := measurementRouter()
	w := doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var latest models.Measurement
	decodeData(t, w, &latest)

	w = doJSON(t, r, http.MethodDelete, "/measurements/"+itoa(latest.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The row survives with the flag off; the older version is NOT
	// promoted, so the pair is left with no latest measurement.
	var count int64
	require.NoError(t, db.Model(&models.Measurement{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
	require.EqualValues(t, 0, latestCount(t, db, customer.ID, models.GarmentShirt))
}

func TestUpdateMeasurementDoesNotPromote(t *testing.T) {
	db := setupTest(t)
	customer := models.Customer{Name: "Dina", Phone: "+400", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)

	r := measurementRouter()
	w := doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))
	var first models.Measurement
	decodeData(t, w, &first)
	doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))

	w = doJSON(t, r, http.MethodPut, "/measurements/"+itoa(first.ID), gin.H{"chest": 101.0})
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Measurement
	require.NoError(t, db.First(&reloaded, first.ID).Error)
	require.Equal(t, 101.0, reloaded.Chest)
	require.False(t, reloaded.IsLatest, "editing an old version must not promote it")
	require.EqualValues(t, 1, latestCount(t, db, customer.ID, models.GarmentShirt))
}

func TestGetMeasurementsLatestFilter(t *testing.T) {
	db := setupTest(t)
	customer := models.Customer{Name: "Eli", Phone: "+500", IsActive: true}
	require.NoError(t, db.Create(&customer).Error)

	r := measurementRouter()
	doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))
	doJSON(t, r, http.MethodPost, "/measurements", shirtPayload(customer.ID))

	w := doJSON(t, r, http.MethodGet, "/measurements?latest=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.Measurement
	decodeData(t, w, &rows)
	require.Len(t, rows, 1)
	require.Equal(t, 2, rows[0].Version)
}
