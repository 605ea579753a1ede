package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/infrastructure/uuidgen"
)

// ActivityRepository hands notification events to the activity subsystem by
// appending to its collection. Delivery is the activity subsystem's job.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates and returns a new ActivityRepository instance.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
	}
}

// AddActivity records one activity event.
func (r *ActivityRepository) AddActivity(ctx context.Context, activity *entity.Activity) error {
	if activity.ID == "" {
		activity.ID = uuidgen.NewGenerator().NewUUID()
	}
	activity.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, activity); err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}
