package domain

import "time"

// Vote toggle states as they appear on the wire.
const (
	VoteStatusUpvoted = "upvoted"
	VoteStatusUnvoted = "unvoted"
)

// VoteTimestamp records one successful vote toggle (upvote or unvote) for
// rate limiting. Rows older than the rate window are garbage: every limiter
// check sweeps them for all users before counting.
type VoteTimestamp struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (VoteTimestamp) TableName() string {
	return "vote_timestamps"
}

// VoteResult is the outcome of a toggle.
type VoteResult struct {
	Status   string `json:"status"`
	TargetID uint   `json:"-"`
	Votes    int    `json:"-"`
}
