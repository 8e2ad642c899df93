package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shareaichat/shareaichat-backend/internal/handler"
	"github.com/shareaichat/shareaichat-backend/internal/middleware"
	"github.com/shareaichat/shareaichat-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	feedHandler *handler.FeedHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	voteHandler *handler.VoteHandler,
	authHandler *handler.AuthHandler,
	jwtManager *jwt.Manager,
) {
	optional := middleware.OptionalAuth(jwtManager)
	required := middleware.JWTAuth(jwtManager)

	// Feed and post reads work for anonymous visitors; a token just adds
	// the viewer's upvote state to the payload.
	router.GET("/", optional, feedHandler.ListFeed)
	router.GET("/posts/:id", optional, postHandler.GetPostDetail)

	// Authentication endpoints (no auth required)
	auth := router.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", required, authHandler.Me)
	auth.PUT("/profile", required, authHandler.UpdateProfile)

	// Content writes (auth required)
	router.POST("/posts", required, postHandler.CreatePost)
	router.DELETE("/posts/:id", required, postHandler.DeletePost)
	router.POST("/posts/:id/comments", required, commentHandler.CreateComment)
	router.PUT("/comments/:id", required, commentHandler.UpdateComment)

	// Votes (auth required)
	votes := router.Group("/votes", required)
	votes.POST("/posts/:id", voteHandler.TogglePostVote)
	votes.POST("/comments/:id", voteHandler.ToggleCommentVote)

	// Own content listings (auth required)
	router.GET("/myposts", required, postHandler.MyPosts)
	router.GET("/mycomments", required, commentHandler.MyComments)
}
