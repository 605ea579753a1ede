package mocks

import (
	"context"
	"errors"

	"github.com/openforum/likeservice/internal/domain/entity"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

// NotifyCall records one dispatched like notification.
type NotifyCall struct {
	ActorID     string
	RecipientID string
	PostType    entity.PostType
	PostID      int64
}

// MockNotifier is a mock implementation of the INotificationDispatcher
// interface that records dispatched notifications.
type MockNotifier struct {
	ShouldFailDispatch bool
	WouldNotifyAnswer  bool

	Calls        []NotifyCall
	ProfileCalls []string
}

var _ usecasecontract.INotificationDispatcher = (*MockNotifier)(nil)

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{WouldNotifyAnswer: true}
}

func (m *MockNotifier) NotifyLike(ctx context.Context, actorID, recipientID string, postType entity.PostType, postID int64) error {
	if m.ShouldFailDispatch {
		return errors.New("activity subsystem unavailable")
	}
	m.Calls = append(m.Calls, NotifyCall{ActorID: actorID, RecipientID: recipientID, PostType: postType, PostID: postID})
	return nil
}

func (m *MockNotifier) NotifyProfileLike(ctx context.Context, actorID string, profileUser *entity.User) error {
	if m.ShouldFailDispatch {
		return errors.New("activity subsystem unavailable")
	}
	m.ProfileCalls = append(m.ProfileCalls, profileUser.ID)
	return nil
}

func (m *MockNotifier) WouldNotify(ctx context.Context, recipientID string) bool {
	return m.WouldNotifyAnswer
}
