package models

import "fmt"

type GarmentType string

const (
	GarmentShirt   GarmentType = "SHIRT"
	GarmentSuit    GarmentType = "SUIT"
	GarmentDress   GarmentType = "DRESS"
	GarmentTrouser GarmentType = "TROUSER"
)

func (g GarmentType) Valid() bool {
	switch g {
	case GarmentShirt, GarmentSuit, GarmentDress, GarmentTrouser:
		return true
	}
	return false
}

// Required measurement fields per garment type. The measurement columns are
// a closed set; each garment type names the subset that must be non-zero.
var garmentFields = map[GarmentType][]string{
	GarmentShirt:   {"chest", "shoulder", "sleeve", "neck", "length"},
	GarmentSuit:    {"chest", "waist", "shoulder", "sleeve", "neck", "length"},
	GarmentDress:   {"chest", "waist", "hip", "shoulder", "length"},
	GarmentTrouser: {"waist", "hip", "inseam", "length"},
}

func RequiredFields(g GarmentType) []string {
	return garmentFields[g]
}

// ValidateFields checks the required subset for the garment type against the
// measurement values. Values are in centimeters; zero means "not taken".
func (m *Measurement) ValidateFields() error {
	values := map[string]float64{
		"chest":    m.Chest,
		"waist":    m.Waist,
		"hip":      m.Hip,
		"shoulder": m.Shoulder,
		"sleeve":   m.Sleeve,
		"neck":     m.Neck,
		"inseam":   m.Inseam,
		"length":   m.Length,
	}
	for _, f := range garmentFields[m.GarmentType] {
		if values[f] <= 0 {
			return fmt.Errorf("measurement field %q is required for %s", f, m.GarmentType)
		}
	}
	return nil
}
