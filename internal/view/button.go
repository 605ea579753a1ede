// Package view builds presentational descriptors for the like button. It is
// pure: no I/O, no store access, every output derived from the arguments.
package view

import (
	"fmt"
	"strconv"

	"github.com/openforum/likeservice/internal/domain/entity"
)

const (
	likeLabel   = "Like"
	unlikeLabel = "Unlike"
)

// ButtonView describes the like button for a single post.
type ButtonView struct {
	Label          string `json:"label"`
	Disabled       bool   `json:"disabled"`
	CountDisplay   string `json:"count_display"`
	TargetURL      string `json:"target_url"`
	TargetSelector string `json:"target_selector"`
}

// RenderButton maps a post's like state to its button descriptor.
//
// The label reads "Unlike" when the viewer already likes the post, the count
// is hidden entirely at zero, and the button is disabled for viewers who may
// see likes but not create them.
func RenderButton(postType entity.PostType, postID int64, count int64, likedByViewer, viewerCanLike bool) ButtonView {
	label := likeLabel
	if likedByViewer {
		label = unlikeLabel
	}
	countDisplay := ""
	if count > 0 {
		countDisplay = strconv.FormatInt(count, 10)
	}
	return ButtonView{
		Label:          label,
		Disabled:       !viewerCanLike,
		CountDisplay:   countDisplay,
		TargetURL:      fmt.Sprintf("/plugin/rjlike/%s/%d", postType.Lower(), postID),
		TargetSelector: fmt.Sprintf("#%s_%d a.ReactButton-Like", postType, postID),
	}
}

// Markup renders the anchor markup the response patch replaces the old button
// with. The class names match what the stock reaction stylesheet expects.
func (v ButtonView) Markup() string {
	cssClass := ""
	countSpan := ""
	if v.CountDisplay != "" {
		cssClass = " HasCount"
		countSpan = `<span class="Count">` + v.CountDisplay + `</span>`
	}
	disabled := ""
	if v.Disabled {
		disabled = "disabled "
	}
	return `<a class="Hijack ReactButton ReactButton-Like` + cssClass + `" ` +
		`href="` + v.TargetURL + `" ` + disabled +
		`title="` + v.Label + `" rel="nofollow">` +
		`<span class="ReactSprite ReactLike"></span>` +
		countSpan +
		`<span class="ReactLabel">` + likeLabel + `</span>` +
		`</a>`
}
