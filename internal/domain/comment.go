package domain

import "time"

// Comment belongs to a post and optionally to a parent comment. Threads are
// two levels deep: the reply path only accepts root comments as parents, and
// the read side treats any comment with a non-nil parent as a reply no matter
// how deep the parent happens to be.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Parent    *Comment  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Votes     int       `gorm:"not null;default:1" json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsRoot reports whether this comment starts a thread.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}

// CommentVote is the per-(user, comment) upvote ledger, mirroring PostVote.
type CommentVote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_comment_votes_user_comment" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CommentID uint      `gorm:"not null;uniqueIndex:idx_comment_votes_user_comment;index" json:"comment_id"`
	Comment   Comment   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentVote) TableName() string {
	return "comment_votes"
}

// CreateCommentRequest is the payload for POST /posts/:id/comments
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ParentID uint   `json:"parent_id"`
}

// UpdateCommentRequest is the payload for PUT /comments/:id
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the flat view of a comment.
type CommentResponse struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	Author    string    `json:"author"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		Author:    c.User.Username,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Votes:     c.Votes,
		CreatedAt: c.CreatedAt,
	}
}

// CommentThread is a root comment with its replies attached, ordered as the
// detail page renders them: roots by votes descending, replies by creation
// time ascending.
type CommentThread struct {
	*CommentResponse
	Replies []*CommentResponse `json:"replies"`
}
