package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFieldsPerGarment(t *testing.T) {
	shirt := &Measurement{
		GarmentType: GarmentShirt,
		Chest:       98, Shoulder: 44, Sleeve: 62, Neck: 39, Length: 74,
	}
	require.NoError(t, shirt.ValidateFields())

	// Trousers do not need chest, but waist is mandatory.
	trouser := &Measurement{
		GarmentType: GarmentTrouser,
		Hip:         100, Inseam: 78, Length: 102,
	}
	err := trouser.ValidateFields()
	require.Error(t, err)
	require.Contains(t, err.Error(), "waist")

	trouser.Waist = 84
	require.NoError(t, trouser.ValidateFields())
}

func TestGarmentTypeValid(t *testing.T) {
	require.True(t, GarmentSuit.Valid())
	require.False(t, GarmentType("KIMONO").Valid())
}

func TestRequiredFieldsClosedSet(t *testing.T) {
	for _, g := range []GarmentType{GarmentShirt, GarmentSuit, GarmentDress, GarmentTrouser} {
		require.NotEmpty(t, RequiredFields(g))
	}
}
