package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openforum/likeservice/internal/domain/entity"
)

// LikeRepository is the MongoDB implementation of the ILikeRepository
// interface. One document per (user, post type, post) triple; unliking flips
// the liked flag instead of removing the document.
type LikeRepository struct {
	collection *mongo.Collection
}

// NewLikeRepository creates and returns a new LikeRepository instance.
func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{
		collection: db.Collection("user_likes"),
	}
}

// GetLikeState returns the user's current like state on a post. A missing
// document reads as false.
func (r *LikeRepository) GetLikeState(ctx context.Context, userID string, postType entity.PostType, postID int64) (bool, error) {
	var like entity.Like
	filter := bson.M{"user_id": userID, "post_type": postType, "post_id": postID}

	err := r.collection.FindOne(ctx, filter).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read like state: %w", err)
	}
	return like.Liked, nil
}

// SetLikeState persists the new like state as one atomic upsert keyed on the
// natural key. Two concurrent toggles from the same user on the same post can
// never create duplicate documents: both race into the same upsert filter and
// the unique index on (user_id, post_type, post_id) backs it up.
func (r *LikeRepository) SetLikeState(ctx context.Context, userID string, postType entity.PostType, postID int64, liked bool) error {
	filter := bson.M{
		"user_id":   userID,
		"post_type": postType,
		"post_id":   postID,
	}
	update := bson.M{
		"$set": bson.M{
			"liked":      liked,
			"updated_at": time.Now(),
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"created_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert like state: %w", err)
	}
	return nil
}

// CountLikes counts the active likes for a post. Always a fresh aggregate
// over the documents, never a maintained counter.
func (r *LikeRepository) CountLikes(ctx context.Context, postType entity.PostType, postID int64) (int64, error) {
	filter := bson.M{"post_type": postType, "post_id": postID, "liked": true}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// LikedPostIDs returns, out of postIDs, the set the user actively likes.
func (r *LikeRepository) LikedPostIDs(ctx context.Context, userID string, postType entity.PostType, postIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(postIDs))
	if len(postIDs) == 0 {
		return liked, nil
	}

	filter := bson.M{
		"user_id":   userID,
		"post_type": postType,
		"post_id":   bson.M{"$in": postIDs},
		"liked":     true,
	}
	opts := options.Find().SetProjection(bson.M{"post_id": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load liked post IDs: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			PostID int64 `bson:"post_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode liked post ID: %w", err)
		}
		liked[doc.PostID] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate liked post IDs: %w", err)
	}
	return liked, nil
}
