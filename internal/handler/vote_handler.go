package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/middleware"
	"github.com/shareaichat/shareaichat-backend/internal/service"
	"github.com/shareaichat/shareaichat-backend/pkg/ginutil"
)

// VoteHandler handles vote toggle HTTP requests.
//
// Status codes are part of the contract: 401 unauthenticated, 429
// rate-limited, 400 for an id that does not resolve (unlike the detail view,
// which 404s), 200 on success.
type VoteHandler struct {
	service service.VoteService
}

// NewVoteHandler creates a new VoteHandler
func NewVoteHandler(service service.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// TogglePostVote handles POST /votes/posts/:id
func (h *VoteHandler) TogglePostVote(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in to upvote")
		return
	}

	postID, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid post id")
		return
	}

	result, err := h.service.TogglePostVote(userID, postID)
	if err != nil {
		handleVoteError(c, err, "invalid post id")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": result.Status, "post_id": result.TargetID})
}

// ToggleCommentVote handles POST /votes/comments/:id
func (h *VoteHandler) ToggleCommentVote(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		common.ErrorResponse(c, http.StatusUnauthorized, "you must be logged in to upvote")
		return
	}

	commentID, err := ginutil.ParamUint(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid comment id")
		return
	}

	result, err := h.service.ToggleCommentVote(userID, commentID)
	if err != nil {
		handleVoteError(c, err, "invalid comment id")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": result.Status, "comment_id": result.TargetID})
}

func handleVoteError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, common.ErrVoteRateLimited):
		common.ErrorResponse(c, http.StatusTooManyRequests, "vote limit reached, try again later")
	case errors.Is(err, common.ErrPostNotFound), errors.Is(err, common.ErrCommentNotFound):
		// Vote endpoints report unresolvable ids as client errors, not 404.
		common.ErrorResponse(c, http.StatusBadRequest, notFoundMsg)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
