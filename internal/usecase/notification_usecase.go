package usecase

import (
	"context"
	"fmt"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

// NotificationUsecase turns qualifying like toggles into activity events for
// the liked user. It resolves the recipient's notification preferences, with
// an optional cache in front of the user store, and never retries a failed
// dispatch within the request.
type NotificationUsecase struct {
	activityRepo contract.IActivityRepository
	userRepo     contract.IUserRepository
	prefCache    contract.IPreferenceCache // optional
	config       usecasecontract.IConfigProvider
	logger       usecasecontract.IAppLogger
}

// NewNotificationUsecase creates and returns a new NotificationUsecase.
func NewNotificationUsecase(activityRepo contract.IActivityRepository, userRepo contract.IUserRepository, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *NotificationUsecase {
	return &NotificationUsecase{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		config:       config,
		logger:       logger,
	}
}

// SetPreferenceCache wires an optional cache for resolved preferences.
func (u *NotificationUsecase) SetPreferenceCache(cache contract.IPreferenceCache) {
	u.prefCache = cache
}

// NotifyLike records a "Like" activity addressed to the post owner. Self-likes
// are skipped silently. Each qualifying toggle produces exactly one event; a
// re-like after an unlike notifies again.
func (u *NotificationUsecase) NotifyLike(ctx context.Context, actorID, recipientID string, postType entity.PostType, postID int64) error {
	if actorID == recipientID {
		return nil
	}

	prefs := u.resolvePrefs(ctx, recipientID)
	if !prefs.Enabled() {
		u.logger.Debugf("like notification to %s suppressed by preferences", recipientID)
		return nil
	}

	activity := &entity.Activity{
		ActivityType:    entity.ActivityTypeLike,
		ActivityUserID:  actorID,
		RegardingUserID: recipientID,
		Headline:        "%s liked your post.",
		Route:           fmt.Sprintf("/%s/%d", postType.Lower(), postID),
		NotifyPopup:     prefs.Popup,
		NotifyEmail:     prefs.Email,
	}
	if err := u.activityRepo.AddActivity(ctx, activity); err != nil {
		return fmt.Errorf("failed to record like activity: %w", err)
	}
	return nil
}

// NotifyProfileLike records a "Like" activity for a profile user. Unlike post
// likes, liking your own profile is rejected outright so the caller can give
// feedback.
func (u *NotificationUsecase) NotifyProfileLike(ctx context.Context, actorID string, profileUser *entity.User) error {
	if profileUser == nil {
		return contract.ErrUserNotFound
	}
	if actorID == profileUser.ID {
		return ErrSelfLike
	}

	prefs := u.resolvePrefs(ctx, profileUser.ID)
	if !prefs.Enabled() {
		return nil
	}

	activity := &entity.Activity{
		ActivityType:    entity.ActivityTypeLike,
		ActivityUserID:  actorID,
		RegardingUserID: profileUser.ID,
		Headline:        "%s liked you.",
		Route:           "/profile/" + profileUser.Username,
		NotifyPopup:     prefs.Popup,
		NotifyEmail:     prefs.Email,
	}
	if err := u.activityRepo.AddActivity(ctx, activity); err != nil {
		return fmt.Errorf("failed to record profile like activity: %w", err)
	}
	return nil
}

// WouldNotify reports whether a like aimed at recipientID would produce a
// notification. The profile button is only shown when this is true.
func (u *NotificationUsecase) WouldNotify(ctx context.Context, recipientID string) bool {
	return u.resolvePrefs(ctx, recipientID).Enabled()
}

// resolvePrefs loads the recipient's like-notification switches: cache first,
// then the user document, then the config defaults. Lookup failures fall back
// to the defaults rather than blocking the notification path.
func (u *NotificationUsecase) resolvePrefs(ctx context.Context, userID string) entity.LikePreferences {
	if u.prefCache != nil {
		if prefs, ok, err := u.prefCache.GetLikePrefs(ctx, userID); err == nil && ok {
			return *prefs
		}
	}

	prefs := entity.LikePreferences{
		Popup: u.config.GetDefaultPopupLikePref(),
		Email: u.config.GetDefaultEmailLikePref(),
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		u.logger.Warnf("preference lookup for %s failed, using defaults: %v", userID, err)
		return prefs
	}
	if v, ok := user.Preferences[entity.PrefPopupLike]; ok {
		prefs.Popup = v
	}
	if v, ok := user.Preferences[entity.PrefEmailLike]; ok {
		prefs.Email = v
	}

	if u.prefCache != nil {
		if err := u.prefCache.SetLikePrefs(ctx, userID, &prefs); err != nil {
			u.logger.Debugf("preference cache write for %s failed: %v", userID, err)
		}
	}
	return prefs
}
