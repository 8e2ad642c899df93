package service

import (
	"sort"
	"time"

	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/repository"
	"github.com/shareaichat/shareaichat-backend/pkg/markdown"
)

// deleteWindow is how long an author can delete their own post after
// creating it.
const deleteWindow = time.Hour

// PostService covers post creation, the detail read path (including thread
// assembly), deletion, and the caller's own post listing.
type PostService interface {
	CreatePost(userID uint, req *domain.CreatePostRequest) (*domain.PostResponse, error)
	GetPostDetail(postID, viewerID uint) (*domain.PostDetailResponse, error)
	DeletePost(postID, userID uint) error
	MyPosts(userID uint, page int) (*domain.PostPageResponse, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
}

// NewPostService creates a new PostService
func NewPostService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	voteRepo repository.VoteRepository,
) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
	}
}

func (s *postService) CreatePost(userID uint, req *domain.CreatePostRequest) (*domain.PostResponse, error) {
	post := &domain.Post{
		UserID:    userID,
		Title:     markdown.SanitizeText(req.Title),
		Content:   req.Content,
		ExtraInfo: markdown.SanitizeText(req.ExtraInfo),
	}
	if post.Title == "" {
		return nil, common.ErrInvalidInput
	}

	// Creation writes votes=1 and the author's ledger entry in one
	// transaction (repository contract).
	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	created, err := s.postRepo.FindByID(post.ID)
	if err != nil {
		return nil, err
	}
	return created.ToResponse(), nil
}

func (s *postService) GetPostDetail(postID, viewerID uint) (*domain.PostDetailResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, err
	}

	detail := &domain.PostDetailResponse{
		Post:            post.ToResponse(),
		ContentHTML:     markdown.Render(post.Content),
		RootComments:    assembleThread(comments),
		UpvotedComments: []uint{},
	}

	if viewerID != 0 {
		upvoted, err := s.voteRepo.HasPostVote(viewerID, postID)
		if err != nil {
			return nil, err
		}
		detail.IsUpvoted = upvoted

		commentIDs, err := s.voteRepo.UpvotedCommentIDs(viewerID, postID)
		if err != nil {
			return nil, err
		}
		if commentIDs != nil {
			detail.UpvotedComments = commentIDs
		}

		detail.CanDelete = viewerID == post.UserID && time.Since(post.CreatedAt) < deleteWindow
	}

	return detail, nil
}

func (s *postService) DeletePost(postID, userID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return common.ErrForbidden
	}
	if time.Since(post.CreatedAt) >= deleteWindow {
		return common.ErrForbidden
	}
	return s.postRepo.Delete(postID)
}

func (s *postService) MyPosts(userID uint, page int) (*domain.PostPageResponse, error) {
	total, err := s.postRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	page, totalPages := clampPage(page, total, domain.FeedPageSize)

	posts, err := s.postRepo.ListByUser(userID, (page-1)*domain.FeedPageSize, domain.FeedPageSize)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = post.ToResponse()
	}

	return &domain.PostPageResponse{
		Posts:      responses,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// assembleThread partitions comments into roots and replies, orders roots by
// votes descending (stable) and replies by creation time ascending, and
// attaches each reply bucket to its root. Any comment with a parent counts as
// a reply, even if the parent is itself a reply; such strays simply never
// surface under a root. Recomputed per request, nothing is stored.
func assembleThread(comments []*domain.Comment) []*domain.CommentThread {
	roots := make([]*domain.CommentThread, 0)
	replies := make(map[uint][]*domain.CommentResponse)

	// Input is ordered by created_at ascending, so reply buckets inherit the
	// right order and the stable sort keeps equal-vote roots in storage order.
	for _, c := range comments {
		if c.IsRoot() {
			roots = append(roots, &domain.CommentThread{CommentResponse: c.ToResponse()})
		} else {
			replies[*c.ParentID] = append(replies[*c.ParentID], c.ToResponse())
		}
	}

	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].Votes > roots[j].Votes
	})

	for _, root := range roots {
		if bucket, ok := replies[root.ID]; ok {
			root.Replies = bucket
		} else {
			root.Replies = []*domain.CommentResponse{}
		}
	}
	return roots
}
