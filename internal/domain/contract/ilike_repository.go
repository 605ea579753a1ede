package contract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// ILikeRepository defines the interface for like state persistence.
//
// SetLikeState must be a single atomic upsert keyed on the natural key
// (userID, postType, postID) — never a read-then-write pair — so two
// concurrent toggles from the same user cannot insert duplicate rows.
type ILikeRepository interface {
	GetLikeState(ctx context.Context, userID string, postType entity.PostType, postID int64) (bool, error)
	SetLikeState(ctx context.Context, userID string, postType entity.PostType, postID int64, liked bool) error
	CountLikes(ctx context.Context, postType entity.PostType, postID int64) (int64, error)
	// LikedPostIDs returns, out of postIDs, the IDs the user has an active
	// like on. One bulk query instead of one lookup per post.
	LikedPostIDs(ctx context.Context, userID string, postType entity.PostType, postIDs []int64) (map[int64]bool, error)
}
