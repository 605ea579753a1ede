package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/infrastructure/jwt"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	mgr := jwt.NewJWTManager("test-secret")

	token, err := mgr.GenerateAccessToken("user-1", []string{entity.PermLikeAdd, entity.PermLikeView})
	assert.NoError(t, err)

	claims, err := mgr.ParseAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.True(t, claims.Actor().HasPermission(entity.PermLikeAdd))
	assert.True(t, claims.Actor().HasPermission(entity.PermLikeView))
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := jwt.NewJWTManager("secret-a").GenerateAccessToken("user-1", nil)
	assert.NoError(t, err)

	_, err = jwt.NewJWTManager("secret-b").ParseAccessToken(token)
	assert.Error(t, err)
}
