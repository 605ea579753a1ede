package contract

import "errors"

// Not-found sentinels shared between repositories and usecases, so callers can
// branch with errors.Is without importing a concrete storage package.
var (
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = errors.New("user not found")
	ErrLikeNotFound = errors.New("like record not found")
)
