package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) CreateComment(postID, userID uint, req *domain.CreateCommentRequest) (*domain.CommentResponse, error) {
	args := m.Called(postID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentResponse), args.Error(1)
}

func (m *mockCommentService) UpdateComment(commentID, userID uint, req *domain.UpdateCommentRequest) (*domain.CommentResponse, error) {
	args := m.Called(commentID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentResponse), args.Error(1)
}

func (m *mockCommentService) MyComments(userID uint, page int) (*domain.CommentPageResponse, error) {
	args := m.Called(userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentPageResponse), args.Error(1)
}

func commentRouter(svc *mockCommentService, authed gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCommentHandler(svc)
	r := gin.New()
	if authed != nil {
		r.Use(authed)
	}
	r.POST("/posts/:id/comments", h.CreateComment)
	r.PUT("/comments/:id", h.UpdateComment)
	r.GET("/mycomments", h.MyComments)
	return r
}

func TestCreateComment_Created(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("CreateComment", uint(1), uint(7), mock.Anything).Return(&domain.CommentResponse{
		ID: 10, PostID: 1, Content: "hi", Votes: 1,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/1/comments",
		strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	commentRouter(svc, asUser(7)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateComment_InvalidParent(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("CreateComment", uint(1), uint(7), mock.Anything).Return(nil, common.ErrInvalidParent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/1/comments",
		strings.NewReader(`{"content":"hi","parent_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	commentRouter(svc, asUser(7)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComment_PostMissing(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("CreateComment", uint(99), uint(7), mock.Anything).Return(nil, common.ErrPostNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/99/comments",
		strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	commentRouter(svc, asUser(7)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateComment_NotOwner(t *testing.T) {
	svc := new(mockCommentService)
	svc.On("UpdateComment", uint(10), uint(8), mock.Anything).Return(nil, common.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/comments/10",
		strings.NewReader(`{"content":"edit"}`))
	req.Header.Set("Content-Type", "application/json")
	commentRouter(svc, asUser(8)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateComment_EmptyBodyRejected(t *testing.T) {
	svc := new(mockCommentService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/comments/10", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	commentRouter(svc, asUser(8)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything, mock.Anything)
}
