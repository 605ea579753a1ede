package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openforum/likeservice/internal/domain/contract"
	"github.com/openforum/likeservice/internal/domain/entity"
	"github.com/openforum/likeservice/internal/usecase"
)

// fakeLikeRepo keeps like rows in memory. SetLikeState is atomic under a
// mutex, mirroring the storage-native upsert of the real repository. An
// optional read barrier lets tests force two toggles to read concurrently.
type fakeLikeRepo struct {
	mu         sync.Mutex
	rows       map[string]bool
	failReads  bool
	failWrites bool
	readGate   *sync.WaitGroup
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{rows: make(map[string]bool)}
}

func likeKey(userID string, postType entity.PostType, postID int64) string {
	return fmt.Sprintf("%s|%s|%d", userID, postType, postID)
}

func (f *fakeLikeRepo) GetLikeState(_ context.Context, userID string, postType entity.PostType, postID int64) (bool, error) {
	if f.failReads {
		return false, errors.New("read failed")
	}
	f.mu.Lock()
	liked := f.rows[likeKey(userID, postType, postID)]
	f.mu.Unlock()
	if f.readGate != nil {
		// Hold every reader here until all of them have read.
		f.readGate.Done()
		f.readGate.Wait()
	}
	return liked, nil
}

func (f *fakeLikeRepo) SetLikeState(_ context.Context, userID string, postType entity.PostType, postID int64, liked bool) error {
	if f.failWrites {
		return errors.New("write failed")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[likeKey(userID, postType, postID)] = liked
	return nil
}

func (f *fakeLikeRepo) CountLikes(_ context.Context, postType entity.PostType, postID int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	suffix := fmt.Sprintf("|%s|%d", postType, postID)
	var count int64
	for key, liked := range f.rows {
		if liked && len(key) > len(suffix) && key[len(key)-len(suffix):] == suffix {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) LikedPostIDs(_ context.Context, userID string, postType entity.PostType, postIDs []int64) (map[int64]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	liked := make(map[int64]bool)
	for _, id := range postIDs {
		if f.rows[likeKey(userID, postType, id)] {
			liked[id] = true
		}
	}
	return liked, nil
}

type fakePostRepo struct {
	posts    map[string]*entity.Post
	comments map[int64][]int64
}

func postKey(postType entity.PostType, postID int64) string {
	return fmt.Sprintf("%s|%d", postType, postID)
}

func (f *fakePostRepo) GetPost(_ context.Context, postType entity.PostType, postID int64) (*entity.Post, error) {
	post, ok := f.posts[postKey(postType, postID)]
	if !ok {
		return nil, contract.ErrPostNotFound
	}
	return post, nil
}

func (f *fakePostRepo) Exists(_ context.Context, postType entity.PostType, postID int64) (bool, error) {
	_, ok := f.posts[postKey(postType, postID)]
	return ok, nil
}

func (f *fakePostRepo) ListCommentIDs(_ context.Context, discussionID int64) ([]int64, error) {
	return f.comments[discussionID], nil
}

type stubGate struct {
	add, view bool
}

func (g stubGate) CanCreateLike(entity.Actor) bool { return g.add }
func (g stubGate) CanViewLikes(entity.Actor) bool  { return g.view }

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

func likerActor(id string) entity.Actor {
	return entity.Actor{UserID: id, Permissions: []string{entity.PermLikeAdd, entity.PermLikeView}}
}

func TestToggle_PairReturnsToOriginal(t *testing.T) {
	repo := newFakeLikeRepo()
	uc := usecase.NewLikeUsecase(repo, &fakePostRepo{}, stubGate{add: true}, nopLogger{})
	actor := likerActor("user-a")

	first, err := uc.Toggle(context.Background(), actor, entity.PostTypeComment, 5)
	assert.NoError(t, err)
	assert.True(t, first.NewState)
	assert.Equal(t, int64(1), first.NewCount)

	second, err := uc.Toggle(context.Background(), actor, entity.PostTypeComment, 5)
	assert.NoError(t, err)
	assert.False(t, second.NewState)
	assert.Equal(t, int64(0), second.NewCount)

	// The pair is idempotent: still exactly one row, back in the
	// retracted state.
	assert.Len(t, repo.rows, 1)
}

func TestToggle_CountAcrossActors(t *testing.T) {
	repo := newFakeLikeRepo()
	uc := usecase.NewLikeUsecase(repo, &fakePostRepo{}, stubGate{add: true}, nopLogger{})

	// A likes, unlikes; B likes. A's state must not be touched by B.
	resA, err := uc.Toggle(context.Background(), likerActor("user-a"), entity.PostTypeDiscussion, 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), resA.NewCount)

	resA, err = uc.Toggle(context.Background(), likerActor("user-a"), entity.PostTypeDiscussion, 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), resA.NewCount)

	resB, err := uc.Toggle(context.Background(), likerActor("user-b"), entity.PostTypeDiscussion, 9)
	assert.NoError(t, err)
	assert.True(t, resB.NewState)
	assert.Equal(t, int64(1), resB.NewCount)

	stateA, err := repo.GetLikeState(context.Background(), "user-a", entity.PostTypeDiscussion, 9)
	assert.NoError(t, err)
	assert.False(t, stateA)
}

func TestToggle_InvalidPostType(t *testing.T) {
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), &fakePostRepo{}, stubGate{add: true}, nopLogger{})

	_, err := uc.Toggle(context.Background(), likerActor("user-a"), entity.PostType("Poll"), 1)
	assert.ErrorIs(t, err, usecase.ErrInvalidPostType)
}

func TestToggle_PermissionDenied(t *testing.T) {
	repo := newFakeLikeRepo()
	uc := usecase.NewLikeUsecase(repo, &fakePostRepo{}, stubGate{view: true}, nopLogger{})

	_, err := uc.Toggle(context.Background(), likerActor("user-a"), entity.PostTypeComment, 5)
	assert.ErrorIs(t, err, usecase.ErrPermissionDenied)
	// Fail fast: no row was written.
	assert.Empty(t, repo.rows)
}

func TestToggle_StorageErrorAborts(t *testing.T) {
	repo := newFakeLikeRepo()
	repo.failWrites = true
	uc := usecase.NewLikeUsecase(repo, &fakePostRepo{}, stubGate{add: true}, nopLogger{})

	_, err := uc.Toggle(context.Background(), likerActor("user-a"), entity.PostTypeComment, 5)
	assert.Error(t, err)
	assert.Empty(t, repo.rows)

	repo.failWrites = false
	repo.failReads = true
	_, err = uc.Toggle(context.Background(), likerActor("user-a"), entity.PostTypeComment, 5)
	assert.Error(t, err)
	assert.Empty(t, repo.rows)
}

func TestToggle_ConcurrentDoubleSubmit(t *testing.T) {
	repo := newFakeLikeRepo()
	// Force both requests to read the initial false state before either
	// writes, the worst-case double-submit interleaving.
	gate := &sync.WaitGroup{}
	gate.Add(2)
	repo.readGate = gate

	uc := usecase.NewLikeUsecase(repo, &fakePostRepo{}, stubGate{add: true}, nopLogger{})
	actor := likerActor("user-a")

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Toggle(context.Background(), actor, entity.PostTypeComment, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	repo.readGate = nil

	// One row, in the liked state, counted once.
	assert.Len(t, repo.rows, 1)
	state, err := repo.GetLikeState(context.Background(), "user-a", entity.PostTypeComment, 5)
	assert.NoError(t, err)
	assert.True(t, state)
	count, err := repo.CountLikes(context.Background(), entity.PostTypeComment, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPostOwner(t *testing.T) {
	posts := &fakePostRepo{posts: map[string]*entity.Post{
		postKey(entity.PostTypeComment, 5): {PostType: entity.PostTypeComment, PostID: 5, OwnerUserID: "owner-1"},
	}}
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), posts, stubGate{add: true}, nopLogger{})

	owner, err := uc.PostOwner(context.Background(), entity.PostTypeComment, 5)
	assert.NoError(t, err)
	assert.Equal(t, "owner-1", owner)

	_, err = uc.PostOwner(context.Background(), entity.PostTypeComment, 99)
	assert.ErrorIs(t, err, contract.ErrPostNotFound)
}

func TestThreadLikeSummary(t *testing.T) {
	repo := newFakeLikeRepo()
	posts := &fakePostRepo{comments: map[int64][]int64{7: {21, 22, 23}}}
	uc := usecase.NewLikeUsecase(repo, posts, stubGate{add: true, view: true}, nopLogger{})
	viewer := likerActor("viewer")

	// Viewer likes the discussion and one comment; someone else likes
	// another comment.
	_, err := uc.Toggle(context.Background(), viewer, entity.PostTypeDiscussion, 7)
	assert.NoError(t, err)
	_, err = uc.Toggle(context.Background(), viewer, entity.PostTypeComment, 22)
	assert.NoError(t, err)
	_, err = uc.Toggle(context.Background(), likerActor("other"), entity.PostTypeComment, 23)
	assert.NoError(t, err)

	summaries, err := uc.ThreadLikeSummary(context.Background(), viewer, 7)
	assert.NoError(t, err)
	assert.Len(t, summaries, 4)

	assert.Equal(t, entity.PostTypeDiscussion, summaries[0].PostType)
	assert.True(t, summaries[0].LikedByViewer)
	assert.Equal(t, int64(1), summaries[0].Count)

	byID := map[int64]entity.PostLikeSummary{}
	for _, s := range summaries[1:] {
		byID[s.PostID] = s
	}
	assert.False(t, byID[21].LikedByViewer)
	assert.Equal(t, int64(0), byID[21].Count)
	assert.True(t, byID[22].LikedByViewer)
	assert.Equal(t, int64(1), byID[22].Count)
	assert.False(t, byID[23].LikedByViewer)
	assert.Equal(t, int64(1), byID[23].Count)
}

func TestThreadLikeSummary_RequiresViewOrAdd(t *testing.T) {
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), &fakePostRepo{}, stubGate{}, nopLogger{})

	_, err := uc.ThreadLikeSummary(context.Background(), likerActor("viewer"), 7)
	assert.ErrorIs(t, err, usecase.ErrPermissionDenied)
}
