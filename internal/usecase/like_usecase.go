package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

// LikeUsecase handles the business logic for toggling likes on posts and for
// reading like state back for rendering.
type LikeUsecase struct {
	likeRepo contract.ILikeRepository
	postRepo contract.IPostRepository
	gate     usecasecontract.IPermissionGate
	logger   usecasecontract.IAppLogger
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(likeRepo contract.ILikeRepository, postRepo contract.IPostRepository, gate usecasecontract.IPermissionGate, logger usecasecontract.IAppLogger) *LikeUsecase {
	return &LikeUsecase{
		likeRepo: likeRepo,
		postRepo: postRepo,
		gate:     gate,
		logger:   logger,
	}
}

// Toggle flips the actor's like state on a post.
//
// Validation and the permission check run before any mutation, so a rejected
// request leaves no trace. The persisted flip is a single atomic upsert in the
// repository, and the count is always recomputed from the rows rather than
// maintained incrementally, so it cannot drift under concurrent toggles.
// Whether the target post exists is the caller's concern; liking one's own
// post is not blocked here either, the presentation layer simply omits the
// button for the viewer's own content.
func (u *LikeUsecase) Toggle(ctx context.Context, actor entity.Actor, postType entity.PostType, postID int64) (*entity.ToggleResult, error) {
	if !postType.Valid() {
		return nil, ErrInvalidPostType
	}
	if !u.gate.CanCreateLike(actor) {
		return nil, ErrPermissionDenied
	}

	current, err := u.likeRepo.GetLikeState(ctx, actor.UserID, postType, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to read like state: %w", err)
	}

	newState := !current
	if err := u.likeRepo.SetLikeState(ctx, actor.UserID, postType, postID, newState); err != nil {
		return nil, fmt.Errorf("failed to persist like state: %w", err)
	}

	count, err := u.likeRepo.CountLikes(ctx, postType, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to recount likes: %w", err)
	}

	return &entity.ToggleResult{NewState: newState, NewCount: count}, nil
}

// PostExists checks if a post is known to the content subsystem.
func (u *LikeUsecase) PostExists(ctx context.Context, postType entity.PostType, postID int64) bool {
	ok, err := u.postRepo.Exists(ctx, postType, postID)
	if err != nil {
		u.logger.Warnf("post existence check failed for %s/%d: %v", postType.Lower(), postID, err)
		return false
	}
	return ok
}

// PostOwner returns the author of a post, for notification routing.
func (u *LikeUsecase) PostOwner(ctx context.Context, postType entity.PostType, postID int64) (string, error) {
	post, err := u.postRepo.GetPost(ctx, postType, postID)
	if err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to look up post owner: %w", err)
	}
	return post.OwnerUserID, nil
}

// ThreadLikeSummary returns the like overview for a discussion and all of its
// comments: per-post aggregate counts plus the viewer's own like set. The
// viewer's set is fetched with one bulk query for the whole thread instead of
// one lookup per post.
func (u *LikeUsecase) ThreadLikeSummary(ctx context.Context, actor entity.Actor, discussionID int64) ([]entity.PostLikeSummary, error) {
	if !u.gate.CanCreateLike(actor) && !u.gate.CanViewLikes(actor) {
		return nil, ErrPermissionDenied
	}

	commentIDs, err := u.postRepo.ListCommentIDs(ctx, discussionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of discussion %d: %w", discussionID, err)
	}

	likedComments, err := u.likeRepo.LikedPostIDs(ctx, actor.UserID, entity.PostTypeComment, commentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer like set: %w", err)
	}
	likedDiscussion, err := u.likeRepo.LikedPostIDs(ctx, actor.UserID, entity.PostTypeDiscussion, []int64{discussionID})
	if err != nil {
		return nil, fmt.Errorf("failed to load viewer like set: %w", err)
	}

	summaries := make([]entity.PostLikeSummary, 0, len(commentIDs)+1)

	discussionCount, err := u.likeRepo.CountLikes(ctx, entity.PostTypeDiscussion, discussionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	summaries = append(summaries, entity.PostLikeSummary{
		PostType:      entity.PostTypeDiscussion,
		PostID:        discussionID,
		Count:         discussionCount,
		LikedByViewer: likedDiscussion[discussionID],
	})

	for _, commentID := range commentIDs {
		count, err := u.likeRepo.CountLikes(ctx, entity.PostTypeComment, commentID)
		if err != nil {
			return nil, fmt.Errorf("failed to count likes: %w", err)
		}
		summaries = append(summaries, entity.PostLikeSummary{
			PostType:      entity.PostTypeComment,
			PostID:        commentID,
			Count:         count,
			LikedByViewer: likedComments[commentID],
		})
	}

	return summaries, nil
}
