package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

// ProfileLikeHandler implements the legacy like-only profile feature: a like
// sent straight to a user with no stored toggle state and no unlike.
type ProfileLikeHandler struct {
	notifier usecasecontract.INotificationDispatcher
	userRepo contract.IUserRepository
	config   usecasecontract.IConfigProvider
	logger   usecasecontract.IAppLogger
}

func NewProfileLikeHandler(notifier usecasecontract.INotificationDispatcher, userRepo contract.IUserRepository, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *ProfileLikeHandler {
	return &ProfileLikeHandler{
		notifier: notifier,
		userRepo: userRepo,
		config:   config,
		logger:   logger,
	}
}

// LikeProfileHandler handles POST /plugin/like/:userRef, where userRef is a
// user ID or, on forums with unique names, a username.
func (h *ProfileLikeHandler) LikeProfileHandler(c *gin.Context) {
	actor, ok := ActorFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profileUser, err := h.resolveUser(c, c.Param("userRef"))
	if err != nil {
		MapUsecaseError(c, err)
		return
	}

	if err := h.notifier.NotifyProfileLike(c.Request.Context(), actor.UserID, profileUser); err != nil {
		h.logger.Warnf("profile like from %s to %s failed: %v", actor.UserID, profileUser.ID, err)
		MapUsecaseError(c, err)
		return
	}

	MessageHandler(c, http.StatusOK, fmt.Sprintf("You've liked %s!", profileUser.Username))
}

// ShowLikeButtonHandler handles GET /plugin/like/:userRef/button. It reports
// whether a like button belongs on the profile: never on one's own profile,
// and only when the profile user would actually receive a notification.
func (h *ProfileLikeHandler) ShowLikeButtonHandler(c *gin.Context) {
	actor, ok := ActorFromContext(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profileUser, err := h.resolveUser(c, c.Param("userRef"))
	if err != nil {
		MapUsecaseError(c, err)
		return
	}

	show := actor.UserID != profileUser.ID &&
		h.notifier.WouldNotify(c.Request.Context(), profileUser.ID)

	SuccessHandler(c, http.StatusOK, gin.H{
		"show":         show,
		"use_dropdown": h.config.GetUseDropDownButton(),
		"target_url":   "/plugin/like/" + c.Param("userRef"),
	})
}

func (h *ProfileLikeHandler) resolveUser(c *gin.Context, ref string) (*entity.User, error) {
	if ref == "" {
		return nil, contract.ErrUserNotFound
	}
	// IDs are UUIDs; anything else is treated as a username.
	if _, err := uuid.Parse(ref); err == nil {
		return h.userRepo.GetUserByID(c.Request.Context(), ref)
	}
	return h.userRepo.GetUserByUsername(c.Request.Context(), ref)
}
