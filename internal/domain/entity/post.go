package entity

import "time"

// Post is a read-only reference to a comment or discussion owned by the forum's
// content subsystem. This service never mutates posts; it only needs the owner
// for notification routing and the discussion linkage for thread rendering.
type Post struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	PostType     PostType  `bson:"post_type" json:"post_type"`
	PostID       int64     `bson:"post_id" json:"post_id"`
	DiscussionID int64     `bson:"discussion_id,omitempty" json:"discussion_id,omitempty"`
	OwnerUserID  string    `bson:"owner_user_id" json:"owner_user_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
