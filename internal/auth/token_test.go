package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelflow/workshop-service/internal/auth"
	"github.com/jewelflow/workshop-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	user := &domain.User{ID: "u-1", Username: "rajesh", Role: domain.RoleAdmin}

	token, sessionID, expiresAt, err := tm.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, sessionID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, sessionID, claims.ID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour)
	other := auth.NewTokenManager("different", time.Hour)

	token, _, _, err := tm.GenerateToken(&domain.User{ID: "u-1", Role: domain.RoleWorker})
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Millisecond)

	token, _, _, err := tm.GenerateToken(&domain.User{ID: "u-1", Role: domain.RoleWorker})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}
