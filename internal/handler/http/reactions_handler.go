package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openforum/likeservice/internal/handler/http/dto"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
	"github.com/openforum/likeservice/internal/view"
)

// ReactionsHandler serves the per-thread like overview used when a discussion
// page is rendered.
type ReactionsHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
	gate        usecasecontract.IPermissionGate
}

func NewReactionsHandler(likeUsecase usecasecontract.ILikeUseCase, gate usecasecontract.IPermissionGate) *ReactionsHandler {
	return &ReactionsHandler{
		likeUsecase: likeUsecase,
		gate:        gate,
	}
}

// ThreadButtonsHandler handles GET /plugin/rjlike/discussion/:discussionID/buttons.
//
// The viewer's like set for the whole thread is resolved in one bulk lookup,
// then every post gets its button rendered with the viewer's state baked in.
func (h *ReactionsHandler) ThreadButtonsHandler(c *gin.Context) {
	actor, ok := ActorFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	discussionID, err := strconv.ParseInt(c.Param("discussionID"), 10, 64)
	if err != nil || discussionID <= 0 {
		ErrorHandler(c, http.StatusBadRequest, "Invalid discussion ID")
		return
	}

	summaries, err := h.likeUsecase.ThreadLikeSummary(c.Request.Context(), actor, discussionID)
	if err != nil {
		MapUsecaseError(c, err)
		return
	}

	canLike := h.gate.CanCreateLike(actor)
	buttons := make([]dto.PostButton, 0, len(summaries))
	for _, s := range summaries {
		btn := view.RenderButton(s.PostType, s.PostID, s.Count, s.LikedByViewer, canLike)
		buttons = append(buttons, dto.PostButton{
			PostType: string(s.PostType),
			PostID:   s.PostID,
			Liked:    s.LikedByViewer,
			Count:    s.Count,
			View:     btn,
			Markup:   btn.Markup(),
		})
	}

	SuccessHandler(c, http.StatusOK, dto.ThreadButtonsResponse{
		DiscussionID: discussionID,
		Buttons:      buttons,
	})
}
