package mocks

import (
	"context"
	"errors"

	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/usecase"
	usecasecontract "github.com/openforum/likeservice/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of the ILikeUseCase interface.
type MockLikeUsecase struct {
	// Control mock behavior
	ShouldFailToggle bool
	ShouldDenyToggle bool
	PostMissing      bool
	ShouldFailThread bool

	// Return values
	MockResult    entity.ToggleResult
	MockOwnerID   string
	MockSummaries []entity.PostLikeSummary

	// Call recording
	ToggleCalls int
}

// Ensure MockLikeUsecase implements the interface the handlers expect.
var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{
		MockResult:  entity.ToggleResult{NewState: true, NewCount: 1},
		MockOwnerID: "owner-user-id",
	}
}

func (m *MockLikeUsecase) Toggle(ctx context.Context, actor entity.Actor, postType entity.PostType, postID int64) (*entity.ToggleResult, error) {
	m.ToggleCalls++
	if m.ShouldDenyToggle {
		return nil, usecase.ErrPermissionDenied
	}
	if m.ShouldFailToggle {
		return nil, errors.New("storage failure")
	}
	result := m.MockResult
	return &result, nil
}

func (m *MockLikeUsecase) PostExists(ctx context.Context, postType entity.PostType, postID int64) bool {
	return !m.PostMissing
}

func (m *MockLikeUsecase) PostOwner(ctx context.Context, postType entity.PostType, postID int64) (string, error) {
	return m.MockOwnerID, nil
}

func (m *MockLikeUsecase) ThreadLikeSummary(ctx context.Context, actor entity.Actor, discussionID int64) ([]entity.PostLikeSummary, error) {
	if m.ShouldFailThread {
		return nil, errors.New("storage failure")
	}
	return m.MockSummaries, nil
}
