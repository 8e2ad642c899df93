package service

import (
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/repository"
)

// FeedService builds the home feed: trending (votes desc inside an optional
// creation-time window) or new (created_at desc, window ignored).
type FeedService interface {
	// ListFeed accepts raw query values; unknown sort/window fall back
	// silently to trending/all_time. viewerID 0 means anonymous.
	ListFeed(sortBy, timeWindow string, page int, viewerID uint) (*domain.FeedResponse, error)
}

type feedService struct {
	postRepo repository.PostRepository
	voteRepo repository.VoteRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repository.PostRepository, voteRepo repository.VoteRepository) FeedService {
	return &feedService{postRepo: postRepo, voteRepo: voteRepo}
}

func (s *feedService) ListFeed(sortBy, timeWindow string, page int, viewerID uint) (*domain.FeedResponse, error) {
	if sortBy != domain.SortNew && sortBy != domain.SortTrending {
		sortBy = domain.SortTrending
	}
	switch timeWindow {
	case domain.WindowOneDay, domain.WindowSevenDays, domain.WindowThirtyDays, domain.WindowAllTime:
	default:
		timeWindow = domain.WindowAllTime
	}

	orderByVotes := sortBy == domain.SortTrending

	// The window only constrains the trending sort; "new" is always unfiltered.
	var since *time.Time
	if orderByVotes {
		var d time.Duration
		switch timeWindow {
		case domain.WindowOneDay:
			d = 24 * time.Hour
		case domain.WindowSevenDays:
			d = 7 * 24 * time.Hour
		case domain.WindowThirtyDays:
			d = 30 * 24 * time.Hour
		}
		if d != 0 {
			t := time.Now().Add(-d)
			since = &t
		}
	}

	total, err := s.postRepo.CountFeed(since)
	if err != nil {
		return nil, err
	}

	page, totalPages := clampPage(page, total, domain.FeedPageSize)

	posts, err := s.postRepo.ListFeed(since, orderByVotes, (page-1)*domain.FeedPageSize, domain.FeedPageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.PostResponse, len(posts))
	ids := make([]uint, len(posts))
	for i, post := range posts {
		responses[i] = post.ToResponse()
		ids[i] = post.ID
	}

	resp := &domain.FeedResponse{
		Posts:      responses,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		SortBy:     sortBy,
		Time:       timeWindow,
	}

	if viewerID != 0 {
		voted, err := s.voteRepo.UpvotedPostIDs(viewerID, ids)
		if err != nil {
			return nil, err
		}
		resp.UpvotedPostIDs = voted
	}

	return resp, nil
}

// clampPage normalizes a 1-indexed page number: below 1 becomes 1, beyond the
// last page becomes the last page. An empty result set still has one page.
func clampPage(page int, total int64, pageSize int) (int, int) {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}
