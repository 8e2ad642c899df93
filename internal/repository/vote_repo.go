package repository

import (
	"errors"

	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"gorm.io/gorm"
)

// VoteRepository is the upvote ledger for posts and comments. Every Add
// mutates the ledger and the target's denormalized votes counter inside one
// transaction, so the two can never diverge; Remove mirrors it. The composite
// unique index decides concurrent duplicate inserts: the loser gets
// common.ErrDuplicateVote.
type VoteRepository interface {
	HasPostVote(userID, postID uint) (bool, error)
	AddPostVote(userID, postID uint) error
	RemovePostVote(userID, postID uint) (removed bool, err error)

	HasCommentVote(userID, commentID uint) (bool, error)
	AddCommentVote(userID, commentID uint) error
	RemoveCommentVote(userID, commentID uint) (removed bool, err error)

	// UpvotedPostIDs filters ids down to those the user has upvoted.
	UpvotedPostIDs(userID uint, ids []uint) ([]uint, error)
	// UpvotedCommentIDs returns the ids of comments on a post the user has upvoted.
	UpvotedCommentIDs(userID, postID uint) ([]uint, error)
}

type voteRepository struct {
	db *gorm.DB
}

// NewVoteRepository creates a new VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) HasPostVote(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.PostVote{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *voteRepository) AddPostVote(userID, postID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		vote := &domain.PostVote{UserID: userID, PostID: postID}
		if err := tx.Create(vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.ErrDuplicateVote
			}
			return err
		}
		return tx.Model(&domain.Post{}).
			Where("id = ?", postID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error
	})
}

func (r *voteRepository) RemovePostVote(userID, postID uint) (bool, error) {
	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND post_id = ?", userID, postID).
			Delete(&domain.PostVote{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&domain.Post{}).
			Where("id = ?", postID).
			UpdateColumn("votes", gorm.Expr("votes - 1")).Error
	})
	return removed, err
}

func (r *voteRepository) HasCommentVote(userID, commentID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.CommentVote{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *voteRepository) AddCommentVote(userID, commentID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		vote := &domain.CommentVote{UserID: userID, CommentID: commentID}
		if err := tx.Create(vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return common.ErrDuplicateVote
			}
			return err
		}
		return tx.Model(&domain.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("votes", gorm.Expr("votes + 1")).Error
	})
}

func (r *voteRepository) RemoveCommentVote(userID, commentID uint) (bool, error) {
	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			Delete(&domain.CommentVote{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		removed = true
		return tx.Model(&domain.Comment{}).
			Where("id = ?", commentID).
			UpdateColumn("votes", gorm.Expr("votes - 1")).Error
	})
	return removed, err
}

func (r *voteRepository) UpvotedPostIDs(userID uint, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var voted []uint
	err := r.db.Model(&domain.PostVote{}).
		Where("user_id = ? AND post_id IN ?", userID, ids).
		Pluck("post_id", &voted).Error
	return voted, err
}

func (r *voteRepository) UpvotedCommentIDs(userID, postID uint) ([]uint, error) {
	var voted []uint
	err := r.db.Model(&domain.CommentVote{}).
		Joins("JOIN comments ON comments.id = comment_votes.comment_id").
		Where("comment_votes.user_id = ? AND comments.post_id = ?", userID, postID).
		Pluck("comment_votes.comment_id", &voted).Error
	return voted, err
}
