package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// PreferenceStore caches resolved like-notification preferences in Redis so
// the notification path does not hit the user collection on every like.
type PreferenceStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPreferenceStore(rdb *redis.Client, ttl time.Duration) *PreferenceStore {
	return &PreferenceStore{rdb: rdb, ttl: ttl}
}

func likePrefsKey(userID string) string { return fmt.Sprintf("user:likeprefs:%s", userID) }

func (s *PreferenceStore) GetLikePrefs(ctx context.Context, userID string) (*entity.LikePreferences, bool, error) {
	b, err := s.rdb.Get(ctx, likePrefsKey(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var prefs entity.LikePreferences
	if err := json.Unmarshal(b, &prefs); err != nil {
		return nil, false, nil
	}
	return &prefs, true, nil
}

func (s *PreferenceStore) SetLikePrefs(ctx context.Context, userID string, prefs *entity.LikePreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, likePrefsKey(userID), data, s.ttl).Err()
}

// InvalidateLikePrefs drops the cached entry, called when a user edits their
// notification settings.
func (s *PreferenceStore) InvalidateLikePrefs(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, likePrefsKey(userID)).Err()
}
