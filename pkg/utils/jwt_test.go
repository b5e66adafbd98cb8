package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "load-analytics/pkg/errors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(userID, "dispatch@example.com", "dispatcher", "secret", 1)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "dispatcher", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateToken_Rejects(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "dispatch@example.com", "dispatcher", "secret", 1)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	expired, err := GenerateToken(uuid.New(), "dispatch@example.com", "dispatcher", "secret", -1)
	require.NoError(t, err)
	_, err = ValidateToken(expired, "secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)

	_, err = ValidateToken("not-a-token", "secret")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
