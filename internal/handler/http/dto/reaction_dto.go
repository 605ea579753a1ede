package dto

import "github.com/openforum/likeservice/internal/view"

// ToggleLikeParams carries the normalized route parameters of a toggle call.
type ToggleLikeParams struct {
	PostType string `validate:"required,posttype"`
	PostID   int64  `validate:"required,gt=0"`
}

// ViewPatchResponse is the partial-view instruction returned after a toggle:
// the client replaces the element at Target with the fresh button instead of
// re-rendering the page.
type ViewPatchResponse struct {
	Target string          `json:"target"`
	Type   string          `json:"type"`
	Liked  bool            `json:"liked"`
	Count  int64           `json:"count"`
	View   view.ButtonView `json:"view"`
	Markup string          `json:"markup"`
}

// ThreadButtonsResponse lists the rendered like buttons for every post in a
// discussion thread.
type ThreadButtonsResponse struct {
	DiscussionID int64        `json:"discussion_id"`
	Buttons      []PostButton `json:"buttons"`
}

// PostButton pairs a post reference with its rendered button.
type PostButton struct {
	PostType string          `json:"post_type"`
	PostID   int64           `json:"post_id"`
	Liked    bool            `json:"liked"`
	Count    int64           `json:"count"`
	View     view.ButtonView `json:"view"`
	Markup   string          `json:"markup"`
}
