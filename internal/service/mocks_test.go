package service

import (
	"context"
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock PostRepository ---

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(post *domain.Post) error {
	return m.Called(post).Error(0)
}

func (m *mockPostRepo) FindByID(id uint) (*domain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) Delete(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockPostRepo) ListFeed(since *time.Time, orderByVotes bool, offset, limit int) ([]*domain.Post, error) {
	args := m.Called(since, orderByVotes, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) CountFeed(since *time.Time) (int64, error) {
	args := m.Called(since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPostRepo) ListByUser(userID uint, offset, limit int) ([]*domain.Post, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CommentRepository ---

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(comment *domain.Comment) error {
	return m.Called(comment).Error(0)
}

func (m *mockCommentRepo) FindByID(id uint) (*domain.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) UpdateContent(id uint, content string) error {
	return m.Called(id, content).Error(0)
}

func (m *mockCommentRepo) ListByPost(postID uint) ([]*domain.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) ListByUser(userID uint, offset, limit int) ([]*domain.Comment, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock VoteRepository ---

type mockVoteRepo struct {
	mock.Mock
}

func (m *mockVoteRepo) HasPostVote(userID, postID uint) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteRepo) AddPostVote(userID, postID uint) error {
	return m.Called(userID, postID).Error(0)
}

func (m *mockVoteRepo) RemovePostVote(userID, postID uint) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteRepo) HasCommentVote(userID, commentID uint) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteRepo) AddCommentVote(userID, commentID uint) error {
	return m.Called(userID, commentID).Error(0)
}

func (m *mockVoteRepo) RemoveCommentVote(userID, commentID uint) (bool, error) {
	args := m.Called(userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockVoteRepo) UpvotedPostIDs(userID uint, ids []uint) ([]uint, error) {
	args := m.Called(userID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *mockVoteRepo) UpvotedCommentIDs(userID, postID uint) ([]uint, error) {
	args := m.Called(userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// --- Mock RateLimitRepository ---

type mockRateLimitRepo struct {
	mock.Mock
}

func (m *mockRateLimitRepo) SweepBefore(cutoff time.Time) error {
	return m.Called(cutoff).Error(0)
}

func (m *mockRateLimitRepo) CountSince(userID uint, since time.Time) (int64, error) {
	args := m.Called(userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRateLimitRepo) Record(userID uint) error {
	return m.Called(userID).Error(0)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) FindByID(id uint) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) UpdateEmail(id uint, email string) error {
	return m.Called(id, email).Error(0)
}

// --- Mock CaptchaVerifier ---

type mockCaptcha struct {
	mock.Mock
}

func (m *mockCaptcha) Verify(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
