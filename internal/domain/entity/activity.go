package entity

import "time"

// ActivityTypeLike is the activity type recorded for like notifications.
const ActivityTypeLike = "Like"

// Activity is the notification event handed to the activity subsystem when a
// user likes a post or a profile. Delivery (popup feed, email) is the activity
// subsystem's job; this service only records the event.
type Activity struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	ActivityType    string    `bson:"activity_type" json:"activity_type"`
	ActivityUserID  string    `bson:"activity_user_id" json:"activity_user_id"`
	RegardingUserID string    `bson:"regarding_user_id" json:"regarding_user_id"`
	Headline        string    `bson:"headline" json:"headline"`
	Route           string    `bson:"route" json:"route"`
	NotifyPopup     bool      `bson:"notify_popup" json:"notify_popup"`
	NotifyEmail     bool      `bson:"notify_email" json:"notify_email"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
