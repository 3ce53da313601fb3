package tokens

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWTRoundTrip(t *testing.T) {
	key := []byte("secret")
	userID := uuid.New()

	tokenStr, genErr := GenerateUserJWT(userID, time.Hour, key)
	require.NoError(t, genErr)
	require.NotEmpty(t, tokenStr)

	token, valErr := ValidateUserJWT(tokenStr, key)
	require.NoError(t, valErr)

	claims, ok := token.Claims.(*UserClaims)
	require.True(t, ok)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestUserJWTWrongKey(t *testing.T) {
	tokenStr, genErr := GenerateUserJWT(uuid.New(), time.Hour, []byte("secret"))
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenStr, []byte("another secret"))
	assert.Error(t, valErr)
}

func TestUserJWTExpired(t *testing.T) {
	tokenStr, genErr := GenerateUserJWT(uuid.New(), -time.Minute, []byte("secret"))
	require.NoError(t, genErr)

	_, valErr := ValidateUserJWT(tokenStr, []byte("secret"))
	assert.ErrorIs(t, valErr, ErrTokenExpired)
}
