package usecase

import "errors"

var (
	// ErrInvalidPostType is returned when a toggle targets an unsupported
	// post kind.
	ErrInvalidPostType = errors.New("invalid post type")
	// ErrPermissionDenied is returned when the actor lacks the permission an
	// operation requires. It is never a silent no-op.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrSelfLike is returned when a user tries to like their own profile.
	ErrSelfLike = errors.New("cannot like your own profile")
)
