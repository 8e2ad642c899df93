package service

import (
	"errors"
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/config"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/repository"
)

// VoteService toggles upvotes on posts and comments behind the sliding-window
// vote limiter.
type VoteService interface {
	TogglePostVote(userID, postID uint) (*domain.VoteResult, error)
	ToggleCommentVote(userID, commentID uint) (*domain.VoteResult, error)
}

type voteService struct {
	voteRepo    repository.VoteRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	limiter     repository.RateLimitRepository
	window      time.Duration
	threshold   int
}

// NewVoteService creates a new VoteService
func NewVoteService(
	voteRepo repository.VoteRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	limiter repository.RateLimitRepository,
	cfg config.VoteLimitConfig,
) VoteService {
	return &voteService{
		voteRepo:    voteRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		limiter:     limiter,
		window:      cfg.Window.Std(),
		threshold:   cfg.Threshold,
	}
}

// checkRateLimit sweeps expired timestamps for all users, then counts this
// user's remaining ones. Strictly-greater-than: a user with exactly threshold
// prior actions in the window is still allowed one more.
func (s *voteService) checkRateLimit(userID uint) error {
	cutoff := time.Now().Add(-s.window)
	if err := s.limiter.SweepBefore(cutoff); err != nil {
		return err
	}
	count, err := s.limiter.CountSince(userID, cutoff)
	if err != nil {
		return err
	}
	if count > int64(s.threshold) {
		return common.ErrVoteRateLimited
	}
	return nil
}

func (s *voteService) TogglePostVote(userID, postID uint) (*domain.VoteResult, error) {
	if err := s.checkRateLimit(userID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	has, err := s.voteRepo.HasPostVote(userID, postID)
	if err != nil {
		return nil, err
	}

	var result *domain.VoteResult
	if has {
		if _, err := s.voteRepo.RemovePostVote(userID, postID); err != nil {
			return nil, err
		}
		result = &domain.VoteResult{
			Status:   domain.VoteStatusUnvoted,
			TargetID: postID,
			Votes:    post.Votes - 1,
		}
	} else {
		switch err := s.voteRepo.AddPostVote(userID, postID); {
		case err == nil:
			result = &domain.VoteResult{
				Status:   domain.VoteStatusUpvoted,
				TargetID: postID,
				Votes:    post.Votes + 1,
			}
		case errors.Is(err, common.ErrDuplicateVote):
			// Lost a concurrent insert race: the vote already exists, so the
			// intent is satisfied without touching the counter.
			result = &domain.VoteResult{
				Status:   domain.VoteStatusUpvoted,
				TargetID: postID,
				Votes:    post.Votes,
			}
		default:
			return nil, err
		}
	}

	if err := s.limiter.Record(userID); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *voteService) ToggleCommentVote(userID, commentID uint) (*domain.VoteResult, error) {
	if err := s.checkRateLimit(userID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}

	has, err := s.voteRepo.HasCommentVote(userID, commentID)
	if err != nil {
		return nil, err
	}

	var result *domain.VoteResult
	if has {
		if _, err := s.voteRepo.RemoveCommentVote(userID, commentID); err != nil {
			return nil, err
		}
		result = &domain.VoteResult{
			Status:   domain.VoteStatusUnvoted,
			TargetID: commentID,
			Votes:    comment.Votes - 1,
		}
	} else {
		switch err := s.voteRepo.AddCommentVote(userID, commentID); {
		case err == nil:
			result = &domain.VoteResult{
				Status:   domain.VoteStatusUpvoted,
				TargetID: commentID,
				Votes:    comment.Votes + 1,
			}
		case errors.Is(err, common.ErrDuplicateVote):
			result = &domain.VoteResult{
				Status:   domain.VoteStatusUpvoted,
				TargetID: commentID,
				Votes:    comment.Votes,
			}
		default:
			return nil, err
		}
	}

	if err := s.limiter.Record(userID); err != nil {
		return nil, err
	}
	return result, nil
}
