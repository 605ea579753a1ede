package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/handler/http/dto"
	"github.com/openforum/likeservice/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses.
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses.
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses.
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// MapUsecaseError translates the usecase error taxonomy into HTTP responses.
// Validation and permission errors are reported as such; everything else is a
// storage-layer failure and must not be reported as success.
func MapUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidPostType):
		ErrorHandler(c, http.StatusBadRequest, "Unsupported post type")
	case errors.Is(err, usecase.ErrPermissionDenied):
		ErrorHandler(c, http.StatusForbidden, "Permission denied")
	case errors.Is(err, usecase.ErrSelfLike):
		ErrorHandler(c, http.StatusBadRequest, "You cannot like yourself")
	case errors.Is(err, contract.ErrPostNotFound):
		ErrorHandler(c, http.StatusNotFound, "Post not found")
	case errors.Is(err, contract.ErrUserNotFound):
		ErrorHandler(c, http.StatusNotFound, "User not found")
	default:
		ErrorHandler(c, http.StatusInternalServerError, "Something went wrong")
	}
}

// ActorFromContext returns the identity snapshot the auth middleware stored.
func ActorFromContext(c *gin.Context) (entity.Actor, bool) {
	v, exists := c.Get("actor")
	if !exists {
		return entity.Actor{}, false
	}
	actor, ok := v.(entity.Actor)
	return actor, ok
}
