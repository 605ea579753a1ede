package contract

import (
	"context"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// IActivityRepository hands notification events to the activity subsystem.
type IActivityRepository interface {
	AddActivity(ctx context.Context, activity *entity.Activity) error
}
