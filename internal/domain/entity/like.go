package entity

import (
	"strings"
	"time"
)

// PostType identifies the kind of post a like can attach to.
type PostType string

const (
	PostTypeComment    PostType = "Comment"
	PostTypeDiscussion PostType = "Discussion"
)

// ParsePostType normalizes a raw route parameter ("comment", "Discussion", ...)
// into a PostType. The second return value is false for anything outside the
// supported kinds, so an unvalidated string can never reach storage.
func ParsePostType(raw string) (PostType, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "comment":
		return PostTypeComment, true
	case "discussion":
		return PostTypeDiscussion, true
	}
	return "", false
}

// Valid reports whether the post type is one of the supported kinds.
func (t PostType) Valid() bool {
	return t == PostTypeComment || t == PostTypeDiscussion
}

// Lower returns the URL form of the post type.
func (t PostType) Lower() string {
	return strings.ToLower(string(t))
}

// Like represents one user's like state on a single post. There is at most one
// record per (user, post type, post) triple; unliking flips Liked to false
// instead of deleting the row.
type Like struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	PostType  PostType  `bson:"post_type" json:"post_type"`
	PostID    int64     `bson:"post_id" json:"post_id"`
	Liked     bool      `bson:"liked" json:"liked"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ToggleResult is what a successful toggle reports back to the caller.
type ToggleResult struct {
	NewState bool  `json:"new_state"`
	NewCount int64 `json:"new_count"`
}

// PostLikeSummary is one entry of a thread-wide like overview: the aggregate
// count for a post plus whether the current viewer has an active like on it.
type PostLikeSummary struct {
	PostType      PostType `json:"post_type"`
	PostID        int64    `json:"post_id"`
	Count         int64    `json:"count"`
	LikedByViewer bool     `json:"liked_by_viewer"`
}
