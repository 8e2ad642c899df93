package domain

import "time"

// Post is a submitted chat share. The votes column is a denormalized counter
// kept in lockstep with the post_votes ledger: it starts at 1 together with
// the author's own ledger entry, and every ledger mutation adjusts it inside
// the same transaction.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ExtraInfo string    `gorm:"type:text" json:"extra_info"`
	Votes     int       `gorm:"not null;default:1" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostVote is the per-(user, post) upvote ledger. Row presence means the user
// currently has an active upvote; the composite unique index is the source of
// truth under concurrent toggles.
type PostVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_votes_user_post" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_votes_user_post;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostVote) TableName() string {
	return "post_votes"
}

// CreatePostRequest is the payload for POST /posts
type CreatePostRequest struct {
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content" binding:"required"`
	ExtraInfo string `json:"extra_info"`
}

// PostResponse is the list/detail view of a post.
type PostResponse struct {
	ID        uint      `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ExtraInfo string    `json:"extra_info,omitempty"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) ToResponse() *PostResponse {
	return &PostResponse{
		ID:        p.ID,
		Author:    p.User.Username,
		Title:     p.Title,
		Content:   p.Content,
		ExtraInfo: p.ExtraInfo,
		Votes:     p.Votes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PostDetailResponse is the detail view with the assembled comment thread and
// viewer-specific flags.
type PostDetailResponse struct {
	Post            *PostResponse     `json:"post"`
	ContentHTML     string            `json:"content_html"`
	RootComments    []*CommentThread  `json:"root_comments"`
	IsUpvoted       bool              `json:"is_upvoted"`
	UpvotedComments []uint            `json:"upvoted_comment_ids"`
	CanDelete       bool              `json:"can_delete"`
}
