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

// CommentHandler handles comment HTTP requests.
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// CreateComment handles POST /posts/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in to comment")
		return
	}

	postID, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.service.CreateComment(postID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPostNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "post not found")
		case errors.Is(err, common.ErrInvalidParent):
			common.ErrorResponse(c, http.StatusBadRequest, "invalid parent comment")
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	common.CreatedResponse(c, comment)
}

// UpdateComment handles PUT /comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in")
		return
	}

	commentID, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	var req domain.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.service.UpdateComment(commentID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrCommentNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "comment not found")
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "you cannot edit this comment")
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	common.SuccessResponse(c, comment)
}

// MyComments handles GET /mycomments
func (h *CommentHandler) MyComments(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in")
		return
	}

	page := ginutil.QueryInt(c, "page", 1)

	comments, err := h.service.MyComments(userID, page)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.SuccessResponse(c, comments)
}
