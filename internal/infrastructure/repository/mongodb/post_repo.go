package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
)

// PostRepository is the read-only MongoDB adapter onto the forum's posts
// collection. Discussions and comments share the collection, discriminated by
// post_type.
type PostRepository struct {
	collection *mongo.Collection
}

// NewPostRepository creates and returns a new PostRepository instance.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		collection: db.Collection("posts"),
	}
}

// GetPost retrieves a post by its typed key.
func (r *PostRepository) GetPost(ctx context.Context, postType entity.PostType, postID int64) (*entity.Post, error) {
	var post entity.Post
	filter := bson.M{"post_type": postType, "post_id": postID}

	err := r.collection.FindOne(ctx, filter).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return &post, nil
}

// Exists reports whether a post with the typed key is present.
func (r *PostRepository) Exists(ctx context.Context, postType entity.PostType, postID int64) (bool, error) {
	filter := bson.M{"post_type": postType, "post_id": postID}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return count > 0, nil
}

// ListCommentIDs returns the post IDs of all comments in a discussion.
func (r *PostRepository) ListCommentIDs(ctx context.Context, discussionID int64) ([]int64, error) {
	filter := bson.M{"post_type": entity.PostTypeComment, "discussion_id": discussionID}
	opts := options.Find().SetProjection(bson.M{"post_id": 1}).SetSort(bson.M{"post_id": 1})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []int64
	for cursor.Next(ctx) {
		var doc struct {
			PostID int64 `bson:"post_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode comment ID: %w", err)
		}
		ids = append(ids, doc.PostID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return ids, nil
}
