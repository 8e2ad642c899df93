package service

import (
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/repository"
)

// CommentService covers comment creation, editing and the caller's own
// comment listing.
type CommentService interface {
	CreateComment(postID, userID uint, req *domain.CreateCommentRequest) (*domain.CommentResponse, error)
	UpdateComment(commentID, userID uint, req *domain.UpdateCommentRequest) (*domain.CommentResponse, error)
	MyComments(userID uint, page int) (*domain.CommentPageResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{commentRepo: commentRepo, postRepo: postRepo}
}

func (s *commentService) CreateComment(postID, userID uint, req *domain.CreateCommentRequest) (*domain.CommentResponse, error) {
	if _, err := s.postRepo.FindByID(postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}

	if req.ParentID != 0 {
		parent, err := s.commentRepo.FindByID(req.ParentID)
		if err != nil {
			return nil, common.ErrInvalidParent
		}
		// A parent must belong to the same post and start a thread itself;
		// replying to a reply is not offered.
		if parent.PostID != postID || !parent.IsRoot() {
			return nil, common.ErrInvalidParent
		}
		parentID := parent.ID
		comment.ParentID = &parentID
	}

	// Creation writes votes=1 and the author's ledger entry in one
	// transaction (repository contract).
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	created, err := s.commentRepo.FindByID(comment.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *commentService) UpdateComment(commentID, userID uint, req *domain.UpdateCommentRequest) (*domain.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, common.ErrForbidden
	}

	if err := s.commentRepo.UpdateContent(commentID, req.Content); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	return updated.ToResponse(), nil
}

func (s *commentService) MyComments(userID uint, page int) (*domain.CommentPageResponse, error) {
	total, err := s.commentRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	page, totalPages := clampPage(page, total, domain.FeedPageSize)

	comments, err := s.commentRepo.ListByUser(userID, (page-1)*domain.FeedPageSize, domain.FeedPageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = comment.ToResponse()
	}

	return &domain.CommentPageResponse{
		Comments:   responses,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}
