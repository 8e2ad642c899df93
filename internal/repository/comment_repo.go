package repository

import (
	"errors"

	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository defines comment persistence operations
type CommentRepository interface {
	// Create inserts the comment together with the author's own ledger entry,
	// matching the post creation path.
	Create(comment *domain.Comment) error
	FindByID(id uint) (*domain.Comment, error)
	UpdateContent(id uint, content string) error

	// ListByPost returns every comment on a post ordered by creation time
	// ascending; thread assembly happens in the service.
	ListByPost(postID uint) ([]*domain.Comment, error)

	ListByUser(userID uint, offset, limit int) ([]*domain.Comment, error)
	CountByUser(userID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *domain.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		comment.Votes = 1
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		selfVote := &domain.CommentVote{
			UserID:    comment.UserID,
			CommentID: comment.ID,
		}
		return tx.Create(selfVote).Error
	})
}

func (r *commentRepository) FindByID(id uint) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.Preload("User").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) UpdateContent(id uint, content string) error {
	return r.db.Model(&domain.Comment{}).Where("id = ?", id).Update("content", content).Error
}

func (r *commentRepository) ListByPost(postID uint) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListByUser(userID uint, offset, limit int) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
