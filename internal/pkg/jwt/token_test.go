package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/openroads/trafficmon/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // minutes
			Issuer:     "trafficmon-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, true, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, true, (*claims)["is_admin"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestGenerateToken_NonAdmin(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), false, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, false, (*claims)["is_admin"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), true, cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := jwtlib.MapClaims{
		"user_id":  uuid.New().String(),
		"is_admin": true,
		"exp":      time.Now().Add(-time.Hour).Unix(),
		"iss":      cfg.JWT.Issuer,
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	parsed, err := ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
