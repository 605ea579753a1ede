package entity

import (
	"time"
)

// Permission names checked by the like feature.
const (
	PermLikeAdd  = "like.add"
	PermLikeView = "like.view"
)

// Preference keys a user can override on their profile.
const (
	PrefPopupLike = "Popup.Like"
	PrefEmailLike = "Email.Like"
)

// User represents a registered user in the system. Authentication is owned by
// an external subsystem; this service only reads identity, display data and
// notification preferences.
type User struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	Username    string          `bson:"username" json:"username"`
	Email       string          `bson:"email" json:"email"`
	Preferences map[string]bool `bson:"preferences,omitempty" json:"preferences,omitempty"`
	IsActive    bool            `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `bson:"updated_at" json:"updated_at"`
}

// LikePreferences is the resolved pair of notification switches for the Like
// activity, after per-user overrides and config defaults have been applied.
type LikePreferences struct {
	Popup bool `json:"popup"`
	Email bool `json:"email"`
}

// Enabled reports whether the user would receive a like notification at all.
func (p LikePreferences) Enabled() bool {
	return p.Popup || p.Email
}

// Actor is the per-request identity snapshot extracted from the auth token.
// Components receive it explicitly instead of reaching into ambient session
// state, so they stay deterministic under test.
type Actor struct {
	UserID      string   `json:"user_id"`
	Permissions []string `json:"permissions"`
}

// HasPermission checks whether the actor's permission snapshot contains perm.
func (a Actor) HasPermission(perm string) bool {
	for _, p := range a.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
