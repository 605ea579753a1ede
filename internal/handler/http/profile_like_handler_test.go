package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/openforum/likeservice/internal/domain/entity"
	handler "github.com/openforum/likeservice/internal/handler/http"
	"github.com/openforum/likeservice/internal/handler/http/mocks"
)

type stubConfig struct{ dropdown bool }

func (c stubConfig) GetAppBaseURL() string         { return "http://localhost:8080" }
func (c stubConfig) GetUseDropDownButton() bool    { return c.dropdown }
func (c stubConfig) GetDefaultPopupLikePref() bool { return true }
func (c stubConfig) GetDefaultEmailLikePref() bool { return false }

func setupProfileRouter(actor entity.Actor, notifier *mocks.MockNotifier, users *mocks.MockUserRepo) *gin.Engine {
	h := handler.NewProfileLikeHandler(notifier, users, stubConfig{}, testLogger{})

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor.UserID != "" {
			c.Set("actor", actor)
		}
		c.Next()
	})
	r.POST("/plugin/like/:userRef", h.LikeProfileHandler)
	r.GET("/plugin/like/:userRef/button", h.ShowLikeButtonHandler)
	return r
}

func TestLikeProfile_ByUsername(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	users := mocks.NewMockUserRepo(&entity.User{ID: uuid.New().String(), Username: "jane"})
	r := setupProfileRouter(likerActor(), notifier, users)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/plugin/like/jane", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "You've liked jane!")
	assert.Len(t, notifier.ProfileCalls, 1)
}

func TestLikeProfile_ByID(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	id := uuid.New().String()
	users := mocks.NewMockUserRepo(&entity.User{ID: id, Username: "jane"})
	r := setupProfileRouter(likerActor(), notifier, users)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/plugin/like/"+id, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, notifier.ProfileCalls, 1)
	assert.Equal(t, id, notifier.ProfileCalls[0])
}

func TestLikeProfile_UnknownUser(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	r := setupProfileRouter(likerActor(), notifier, mocks.NewMockUserRepo())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/plugin/like/nobody", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, notifier.ProfileCalls)
}

func TestShowLikeButton(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	users := mocks.NewMockUserRepo(&entity.User{ID: "profile-user", Username: "jane"})
	r := setupProfileRouter(likerActor(), notifier, users)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plugin/like/jane/button", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"show":true`)

	// No button when the profile user would never see the notification.
	notifier.WouldNotifyAnswer = false
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/plugin/like/jane/button", nil)
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `"show":false`)
}

func TestShowLikeButton_OwnProfile(t *testing.T) {
	notifier := mocks.NewMockNotifier()
	actor := likerActor()
	users := mocks.NewMockUserRepo(&entity.User{ID: actor.UserID, Username: "self"})
	r := setupProfileRouter(actor, notifier, users)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plugin/like/self/button", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"show":false`)
}
