package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/handler/http/dto"
	"github.com/openforum/likeservice/internal/infrastructure/metrics"
	appvalidator "github.com/openforum/likeservice/internal/infrastructure/validator"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
	"github.com/openforum/likeservice/internal/view"
)

// InteractionHandler is the boundary for the like toggle endpoint.
type InteractionHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
	notifier    usecasecontract.INotificationDispatcher
	gate        usecasecontract.IPermissionGate
	validator   *appvalidator.AppValidator
	logger      usecasecontract.IAppLogger
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase, notifier usecasecontract.INotificationDispatcher, gate usecasecontract.IPermissionGate, validator *appvalidator.AppValidator, logger usecasecontract.IAppLogger) *InteractionHandler {
	return &InteractionHandler{
		likeUsecase: likeUsecase,
		notifier:    notifier,
		gate:        gate,
		validator:   validator,
		logger:      logger,
	}
}

// ToggleLikeHandler handles POST /plugin/rjlike/:postType/:postID.
//
// It validates the route parameters, checks that the target post exists,
// toggles the like, dispatches the owner notification only on a false→true
// transition, and answers with a view patch carrying the fresh button. A
// failed notification is logged and counted but never fails the response:
// the like itself already succeeded.
func (h *InteractionHandler) ToggleLikeHandler(c *gin.Context) {
	actor, ok := ActorFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	postID, err := strconv.ParseInt(c.Param("postID"), 10, 64)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid post ID")
		return
	}
	params := dto.ToggleLikeParams{PostType: c.Param("postType"), PostID: postID}
	if err := h.validator.ValidateStruct(params); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid post reference")
		return
	}
	postType, _ := entity.ParsePostType(params.PostType)

	if !h.likeUsecase.PostExists(c.Request.Context(), postType, postID) {
		ErrorHandler(c, http.StatusNotFound, "Post not found")
		return
	}

	result, err := h.likeUsecase.Toggle(c.Request.Context(), actor, postType, postID)
	if err != nil {
		MapUsecaseError(c, err)
		return
	}

	action := "unlike"
	if result.NewState {
		action = "like"
	}
	metrics.LikesToggled.WithLabelValues(postType.Lower(), action).Inc()

	// Only a transition into the liked state notifies, and only after the
	// state change is safely persisted.
	if result.NewState {
		h.notifyOwner(c, actor, postType, postID)
	}

	btn := view.RenderButton(postType, postID, result.NewCount, result.NewState, h.gate.CanCreateLike(actor))
	SuccessHandler(c, http.StatusOK, dto.ViewPatchResponse{
		Target: btn.TargetSelector,
		Type:   "ReplaceWith",
		Liked:  result.NewState,
		Count:  result.NewCount,
		View:   btn,
		Markup: btn.Markup(),
	})
}

func (h *InteractionHandler) notifyOwner(c *gin.Context, actor entity.Actor, postType entity.PostType, postID int64) {
	ownerID, err := h.likeUsecase.PostOwner(c.Request.Context(), postType, postID)
	if err != nil {
		h.logger.Errorf("owner lookup for %s/%d failed, notification skipped: %v", postType.Lower(), postID, err)
		metrics.NotificationFailures.Inc()
		return
	}
	if err := h.notifier.NotifyLike(c.Request.Context(), actor.UserID, ownerID, postType, postID); err != nil {
		h.logger.Errorf("like notification for %s/%d failed: %v", postType.Lower(), postID, err)
		metrics.NotificationFailures.Inc()
	}
}
