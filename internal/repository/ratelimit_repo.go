package repository

import (
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"gorm.io/gorm"
)

// RateLimitRepository stores per-user vote timestamps for the sliding-window
// vote limiter. SweepBefore is global across users: any request that checks
// the limiter also garbage-collects everyone's expired rows.
type RateLimitRepository interface {
	SweepBefore(cutoff time.Time) error
	CountSince(userID uint, since time.Time) (int64, error)
	Record(userID uint) error
}

type rateLimitRepository struct {
	db *gorm.DB
}

// NewRateLimitRepository creates a new RateLimitRepository
func NewRateLimitRepository(db *gorm.DB) RateLimitRepository {
	return &rateLimitRepository{db: db}
}

func (r *rateLimitRepository) SweepBefore(cutoff time.Time) error {
	return r.db.Where("created_at < ?", cutoff).
		Delete(&domain.VoteTimestamp{}).Error
}

func (r *rateLimitRepository) CountSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.VoteTimestamp{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error
	return count, err
}

func (r *rateLimitRepository) Record(userID uint) error {
	return r.db.Create(&domain.VoteTimestamp{UserID: userID}).Error
}
