package contract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// IPreferenceCache caches resolved like-notification preferences per user.
// A miss is (nil, false, nil); the caller falls through to the user store.
type IPreferenceCache interface {
	GetLikePrefs(ctx context.Context, userID string) (*entity.LikePreferences, bool, error)
	SetLikePrefs(ctx context.Context, userID string, prefs *entity.LikePreferences) error
	InvalidateLikePrefs(ctx context.Context, userID string) error
}
