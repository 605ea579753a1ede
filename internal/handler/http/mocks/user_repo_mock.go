package mocks

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
)

// MockUserRepo is a mock implementation of the IUserRepository interface.
type MockUserRepo struct {
	Users map[string]*entity.User
}

var _ contract.IUserRepository = (*MockUserRepo)(nil)

func NewMockUserRepo(users ...*entity.User) *MockUserRepo {
	m := &MockUserRepo{Users: make(map[string]*entity.User)}
	for _, u := range users {
		m.Users[u.ID] = u
	}
	return m
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := m.Users[id]
	if !ok {
		return nil, contract.ErrUserNotFound
	}
	return user, nil
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}
