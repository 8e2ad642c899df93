package domain

// Feed sort keys and time windows. Unknown values fall back silently to the
// defaults instead of erroring.
const (
	SortNew      = "new"
	SortTrending = "trending"

	WindowOneDay     = "1_day"
	WindowSevenDays  = "7_days"
	WindowThirtyDays = "30_days"
	WindowAllTime    = "all_time"

	FeedPageSize = 10
)

// FeedResponse is one page of the home feed.
type FeedResponse struct {
	Posts          []*PostResponse `json:"posts"`
	Page           int             `json:"page"`
	TotalPages     int             `json:"total_pages"`
	Total          int64           `json:"total"`
	SortBy         string          `json:"sort_by"`
	Time           string          `json:"time"`
	UpvotedPostIDs []uint          `json:"upvoted_post_ids,omitempty"`
}

// PostPageResponse is one page of a user's own posts.
type PostPageResponse struct {
	Posts      []*PostResponse `json:"posts"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Total      int64           `json:"total"`
}

// CommentPageResponse is one page of a user's own comments.
type CommentPageResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
	Total      int64              `json:"total"`
}
