package util

import (
	"testing"
	"time"

	"pattern_edu_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret-at-least-32-chars!!"

func testUser() *model.User {
	u := &model.User{
		AccountID: 7,
		Email:     "student@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      model.Student,
	}
	u.ID = 42
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), "sess-123", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, uint(7), claims.AccountID)
	assert.Equal(t, "sess-123", claims.SessionID)
	assert.Equal(t, model.Student, claims.Role)
	assert.Equal(t, "student@example.com", claims.Email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "sess-123", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "a-completely-different-secret-value")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), "sess-123", testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := ParseJWT(token, testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestParseJWTGarbage(t *testing.T) {
	claims, err := ParseJWT("not.a.token", testSecret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
