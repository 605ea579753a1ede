package usecasecontract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

type ILikeUseCase interface {
	// Toggle flips the actor's like state on the post and returns the new
	// state together with the freshly recomputed aggregate count.
	Toggle(ctx context.Context, actor entity.Actor, postType entity.PostType, postID int64) (*entity.ToggleResult, error)
	// PostExists reports whether the target post is known to the content
	// subsystem. Handlers call this before toggling.
	PostExists(ctx context.Context, postType entity.PostType, postID int64) bool
	// PostOwner returns the user ID of the post's author.
	PostOwner(ctx context.Context, postType entity.PostType, postID int64) (string, error)
	// ThreadLikeSummary builds the viewer's like overview for a discussion
	// and all of its comments with one bulk like-set query.
	ThreadLikeSummary(ctx context.Context, actor entity.Actor, discussionID int64) ([]entity.PostLikeSummary, error)
}
