package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/usecase"
)

// JWTManager verifies access tokens minted by the auth subsystem and carries
// the shared signing secret.
type JWTManager struct {
	secret      []byte
	accessStale time.Duration
}

// NewJWTManager creates a new JWTManager with the shared secret.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		secret:      []byte(secret),
		accessStale: 15 * time.Minute,
	}
}

// NewJWTService adapts the manager to the usecase.JWTService interface.
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return mgr
}

type customClaims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a token carrying the user's permission snapshot.
// Production tokens come from the auth subsystem; this is for tooling and tests.
func (m *JWTManager) GenerateAccessToken(userID string, permissions []string) (string, error) {
	now := time.Now()
	claims := customClaims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessStale)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseAccessToken validates a token and returns the claims this service
// consumes from it.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &customClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*customClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{
		UserID:           claims.Subject,
		Permissions:      claims.Permissions,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
