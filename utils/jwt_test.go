package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "asha", "MANAGER")
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, float64(7), claims["user_id"])
	require.Equal(t, "asha", claims["username"])
	require.Equal(t, "MANAGER", claims["role"])
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not.a.token")
	require.Error(t, err)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	orig := SecretKey
	defer func() { SecretKey = orig }()

	token, err := GenerateToken(1, "x", "TAILOR")
	require.NoError(t, err)

	SecretKey = []byte("rotated")
	_, err = VerifyToken(token)
	require.Error(t, err)
}
