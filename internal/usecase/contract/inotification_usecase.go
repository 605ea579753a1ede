package usecasecontract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

type INotificationDispatcher interface {
	// NotifyLike records a "Like" activity for the post owner. Called only on
	// a false→true transition; self-likes are a silent no-op. A returned
	// error must never fail the toggle that triggered it — callers log it
	// and move on.
	NotifyLike(ctx context.Context, actorID, recipientID string, postType entity.PostType, postID int64) error
	// NotifyProfileLike records a "Like" activity for a profile user (the
	// legacy like-only feature). Self-likes return ErrSelfLike.
	NotifyProfileLike(ctx context.Context, actorID string, profileUser *entity.User) error
	// WouldNotify reports whether the recipient's preferences allow a like
	// notification at all. Used to decide whether the button is shown.
	WouldNotify(ctx context.Context, recipientID string) bool
}
