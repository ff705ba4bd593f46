package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic-server/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test_secret", TokenTTLMinutes: 60}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken("vet@clinic.test", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "vet@clinic.test", claims.Email)
	assert.Equal(t, "vet@clinic.test", claims.Subject)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()

	// Token issued 61 minutes ago with the default 60-minute TTL.
	claims := &Claims{
		Email: "vet@clinic.test",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-61 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Minute)),
			Subject:   "vet@clinic.test",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = ValidateToken(signed, cfg.JWTSecret)
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken("vet@clinic.test", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "another_secret")
	assert.Error(t, err)
}

func TestValidateTokenTampered(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken("vet@clinic.test", cfg)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered, cfg.JWTSecret)
	assert.Error(t, err)
}
