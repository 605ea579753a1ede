package usecase

import (
	"github.com/openforum/likeservice/internal/domain/entity"
)

// JWTService defines the token operations this service consumes. Issuing
// tokens is owned by the auth subsystem; GenerateAccessToken exists for
// tooling and tests.
type JWTService interface {
	GenerateAccessToken(userID string, permissions []string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
