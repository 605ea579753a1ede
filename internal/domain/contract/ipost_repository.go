package contract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// IPostRepository is the read-only view onto the forum's content subsystem.
type IPostRepository interface {
	GetPost(ctx context.Context, postType entity.PostType, postID int64) (*entity.Post, error)
	Exists(ctx context.Context, postType entity.PostType, postID int64) (bool, error)
	// ListCommentIDs returns the post IDs of all comments in a discussion,
	// used to build the viewer's like set for a whole thread at once.
	ListCommentIDs(ctx context.Context, discussionID int64) ([]int64, error)
}
