package contract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// IUserRepository is the read-only view onto the user subsystem.
type IUserRepository interface {
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
