package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	tok, err := GenerateJWT("match-1", "secret", 5)
	require.NoError(t, err)

	claims, err := ValidateJWT(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "match-1", claims.MatchID)
	assert.Equal(t, "crease", claims.Issuer)
}

func TestValidateRejects(t *testing.T) {
	good, err := GenerateJWT("match-1", "secret", 5)
	require.NoError(t, err)
	expired, err := GenerateJWT("match-1", "secret", -1)
	require.NoError(t, err)

	noMatch := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			Issuer:    issuer,
		},
	})
	noMatchStr, err := noMatch.SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"empty token", "", "secret"},
		{"empty secret", good, ""},
		{"wrong secret", good, "other"},
		{"expired", expired, "secret"},
		{"garbage", "not.a.jwt", "secret"},
		{"missing match id", noMatchStr, "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateJWT(tt.token, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestGenerateRequiresInputs(t *testing.T) {
	_, err := GenerateJWT("", "secret", 5)
	assert.Error(t, err)
	_, err = GenerateJWT("m", "", 5)
	assert.Error(t, err)
}
