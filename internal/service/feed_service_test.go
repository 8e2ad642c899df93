package service

import (
	"testing"
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func feedPosts(n int) []*domain.Post {
	posts := make([]*domain.Post, n)
	for i := range posts {
		posts[i] = &domain.Post{ID: uint(i + 1), Title: "post", Votes: 1}
	}
	return posts
}

func TestListFeed_DefaultsToTrendingAllTime(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	postRepo.On("CountFeed", (*time.Time)(nil)).Return(int64(2), nil)
	postRepo.On("ListFeed", (*time.Time)(nil), true, 0, domain.FeedPageSize).
		Return(feedPosts(2), nil)

	feed, err := svc.ListFeed("", "", 1, 0)

	assert.NoError(t, err)
	assert.Equal(t, domain.SortTrending, feed.SortBy)
	assert.Equal(t, domain.WindowAllTime, feed.Time)
	assert.Len(t, feed.Posts, 2)
	assert.Empty(t, feed.UpvotedPostIDs)
	postRepo.AssertExpectations(t)
}

func TestListFeed_InvalidValuesFallBackSilently(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	postRepo.On("CountFeed", (*time.Time)(nil)).Return(int64(0), nil)
	postRepo.On("ListFeed", (*time.Time)(nil), true, 0, domain.FeedPageSize).
		Return([]*domain.Post{}, nil)

	feed, err := svc.ListFeed("hot", "2_weeks", 1, 0)

	assert.NoError(t, err)
	assert.Equal(t, domain.SortTrending, feed.SortBy)
	assert.Equal(t, domain.WindowAllTime, feed.Time)
}

func TestListFeed_TrendingWindowFiltersByCreation(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	var since *time.Time
	postRepo.On("CountFeed", mock.MatchedBy(func(s *time.Time) bool {
		since = s
		return s != nil
	})).Return(int64(1), nil)
	postRepo.On("ListFeed", mock.Anything, true, 0, domain.FeedPageSize).
		Return(feedPosts(1), nil)

	_, err := svc.ListFeed(domain.SortTrending, domain.WindowOneDay, 1, 0)

	assert.NoError(t, err)
	if assert.NotNil(t, since) {
		assert.WithinDuration(t, time.Now().Add(-24*time.Hour), *since, 5*time.Second)
	}
}

func TestListFeed_NewSortIgnoresWindow(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	postRepo.On("CountFeed", (*time.Time)(nil)).Return(int64(1), nil)
	postRepo.On("ListFeed", (*time.Time)(nil), false, 0, domain.FeedPageSize).
		Return(feedPosts(1), nil)

	feed, err := svc.ListFeed(domain.SortNew, domain.WindowSevenDays, 1, 0)

	assert.NoError(t, err)
	assert.Equal(t, domain.SortNew, feed.SortBy)
	postRepo.AssertExpectations(t)
}

func TestListFeed_SecondPageOffset(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	postRepo.On("CountFeed", (*time.Time)(nil)).Return(int64(15), nil)
	postRepo.On("ListFeed", (*time.Time)(nil), true, 10, domain.FeedPageSize).
		Return(feedPosts(5), nil)

	feed, err := svc.ListFeed("", "", 2, 0)

	assert.NoError(t, err)
	assert.Equal(t, 2, feed.Page)
	assert.Equal(t, 2, feed.TotalPages)
	assert.Equal(t, int64(15), feed.Total)
	assert.Len(t, feed.Posts, 5)
}

func TestListFeed_PageOutOfRangeClampsToLast(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	postRepo.On("CountFeed", (*time.Time)(nil)).Return(int64(15), nil)
	postRepo.On("ListFeed", (*time.Time)(nil), true, 10, domain.FeedPageSize).
		Return(feedPosts(5), nil)

	feed, err := svc.ListFeed("", "", 999, 0)

	assert.NoError(t, err)
	assert.Equal(t, 2, feed.Page)
}

func TestListFeed_ViewerGetsUpvotedIDs(t *testing.T) {
	postRepo := new(mockPostRepo)
	voteRepo := new(mockVoteRepo)
	svc := NewFeedService(postRepo, voteRepo)

	postRepo.On("CountFeed", (*time.Time)(nil)).Return(int64(3), nil)
	postRepo.On("ListFeed", (*time.Time)(nil), true, 0, domain.FeedPageSize).
		Return(feedPosts(3), nil)
	voteRepo.On("UpvotedPostIDs", uint(9), []uint{1, 2, 3}).Return([]uint{2}, nil)

	feed, err := svc.ListFeed("", "", 1, 9)

	assert.NoError(t, err)
	assert.Equal(t, []uint{2}, feed.UpvotedPostIDs)
	voteRepo.AssertExpectations(t)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int64
		wantPage       int
		wantTotalPages int
	}{
		{"empty set still has one page", 1, 0, 1, 1},
		{"zero page becomes first", 0, 25, 1, 3},
		{"negative page becomes first", -3, 25, 1, 3},
		{"beyond last becomes last", 9, 25, 3, 3},
		{"exact boundary", 3, 30, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, totalPages := clampPage(tt.page, tt.total, domain.FeedPageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantTotalPages, totalPages)
		})
	}
}
