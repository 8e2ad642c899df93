package repository

import (
	"errors"
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository defines post persistence operations
type PostRepository interface {
	// Create inserts the post together with the author's own ledger entry,
	// so the votes counter (1) and the ledger row count (1) start in sync.
	Create(post *domain.Post) error
	FindByID(id uint) (*domain.Post, error)
	Delete(id uint) error

	// ListFeed returns one page of posts. since filters on created_at when
	// non-nil; orderByVotes selects votes desc over created_at desc.
	ListFeed(since *time.Time, orderByVotes bool, offset, limit int) ([]*domain.Post, error)
	CountFeed(since *time.Time) (int64, error)

	ListByUser(userID uint, offset, limit int) ([]*domain.Post, error)
	CountByUser(userID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *domain.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		post.Votes = 1
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		selfVote := &domain.PostVote{
			UserID: post.UserID,
			PostID: post.ID,
		}
		return tx.Create(selfVote).Error
	})
}

func (r *postRepository) FindByID(id uint) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) ListFeed(since *time.Time, orderByVotes bool, offset, limit int) ([]*domain.Post, error) {
	query := r.db.Model(&domain.Post{}).Preload("User")
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	if orderByVotes {
		query = query.Order("votes DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	var posts []*domain.Post
	err := query.Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountFeed(since *time.Time) (int64, error) {
	query := r.db.Model(&domain.Post{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (r *postRepository) ListByUser(userID uint, offset, limit int) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
