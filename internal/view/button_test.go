package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/view"
)

func TestRenderButton_Labels(t *testing.T) {
	btn := view.RenderButton(entity.PostTypeComment, 5, 0, false, true)
	assert.Equal(t, "Like", btn.Label)

	btn = view.RenderButton(entity.PostTypeComment, 5, 1, true, true)
	assert.Equal(t, "Unlike", btn.Label)
}

func TestRenderButton_CountDisplay(t *testing.T) {
	// Zero likes hides the count entirely.
	btn := view.RenderButton(entity.PostTypeDiscussion, 9, 0, false, true)
	assert.Empty(t, btn.CountDisplay)

	btn = view.RenderButton(entity.PostTypeDiscussion, 9, 42, false, true)
	assert.Equal(t, "42", btn.CountDisplay)
}

func TestRenderButton_Disabled(t *testing.T) {
	btn := view.RenderButton(entity.PostTypeComment, 5, 0, false, false)
	assert.True(t, btn.Disabled)

	btn = view.RenderButton(entity.PostTypeComment, 5, 0, false, true)
	assert.False(t, btn.Disabled)
}

func TestRenderButton_Targets(t *testing.T) {
	btn := view.RenderButton(entity.PostTypeDiscussion, 123, 0, false, true)
	assert.Equal(t, "/plugin/rjlike/discussion/123", btn.TargetURL)
	assert.Equal(t, "#Discussion_123 a.ReactButton-Like", btn.TargetSelector)
}

func TestButtonView_Markup(t *testing.T) {
	btn := view.RenderButton(entity.PostTypeComment, 5, 3, true, true)
	markup := btn.Markup()
	assert.Contains(t, markup, `class="Hijack ReactButton ReactButton-Like HasCount"`)
	assert.Contains(t, markup, `href="/plugin/rjlike/comment/5"`)
	assert.Contains(t, markup, `title="Unlike"`)
	assert.Contains(t, markup, `<span class="Count">3</span>`)
	assert.NotContains(t, markup, "disabled")

	btn = view.RenderButton(entity.PostTypeComment, 5, 0, false, false)
	markup = btn.Markup()
	assert.NotContains(t, markup, "HasCount")
	assert.NotContains(t, markup, `<span class="Count">`)
	assert.Contains(t, markup, "disabled ")
	assert.Contains(t, markup, `title="Like"`)
}
