package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/middleware"
	"github.com/shareaichat/shareaichat-backend/internal/service"
	"github.com/shareaichat/shareaichat-backend/pkg/ginutil"
)

// PostHandler handles post HTTP requests.
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in to post")
		return
	}

	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.service.CreatePost(userID, &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "title is required")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.CreatedResponse(c, post)
}

// GetPostDetail handles GET /posts/:id
func (h *PostHandler) GetPostDetail(c *gin.Context) {
	postID, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	viewerID := middleware.GetUserID(c)

	detail, err := h.service.GetPostDetail(postID, viewerID)
	if err != nil {
		if errors.Is(err, common.ErrPostNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "post not found")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.SuccessResponse(c, detail)
}

// DeletePost handles DELETE /posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in")
		return
	}

	postID, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.service.DeletePost(postID, userID); err != nil {
		switch {
		case errors.Is(err, common.ErrPostNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "post not found")
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "you cannot delete this post")
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true, "post_id": postID})
}

// MyPosts handles GET /myposts
func (h *PostHandler) MyPosts(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in")
		return
	}

	page := ginutil.QueryInt(c, "page", 1)

	posts, err := h.service.MyPosts(userID, page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.SuccessResponse(c, posts)
}
