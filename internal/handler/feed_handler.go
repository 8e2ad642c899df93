package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/middleware"
	"github.com/shareaichat/shareaichat-backend/internal/service"
	"github.com/shareaichat/shareaichat-backend/pkg/ginutil"
)

// FeedHandler serves the home feed.
type FeedHandler struct {
	service service.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// ListFeed handles GET /
//
// Unknown sort_by/time values fall back to the defaults rather than
// erroring, so this endpoint never rejects a request over query params.
func (h *FeedHandler) ListFeed(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "")
	timeWindow := c.DefaultQuery("time", "")
	page := ginutil.QueryInt(c, "page", 1)

	viewerID := middleware.GetUserID(c)

	feed, err := h.service.ListFeed(sortBy, timeWindow, page, viewerID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
		return
	}

	common.SuccessResponse(c, feed)
}
