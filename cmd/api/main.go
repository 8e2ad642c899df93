package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/shareaichat/shareaichat-backend/internal/config"
	"github.com/shareaichat/shareaichat-backend/internal/handler"
	"github.com/shareaichat/shareaichat-backend/internal/middleware"
	"github.com/shareaichat/shareaichat-backend/internal/migration"
	"github.com/shareaichat/shareaichat-backend/internal/repository"
	"github.com/shareaichat/shareaichat-backend/internal/routes"
	"github.com/shareaichat/shareaichat-backend/internal/service"
	"github.com/shareaichat/shareaichat-backend/pkg/jwt"
	"github.com/shareaichat/shareaichat-backend/pkg/logger"
	pkgredis "github.com/shareaichat/shareaichat-backend/pkg/redis"
	"github.com/shareaichat/shareaichat-backend/pkg/turnstile"
)

func main() {
	envFiles := config.LoadDotEnv()

	cfg, err := config.Load(config.Path())
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.Server.Env)
	log := logger.GetLogger()
	log.Info().Strs("env_files", envFiles).Str("env", cfg.Server.Env).Msg("starting shareaichat API")

	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the vote ledger relies on.
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := migration.Run(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("connected to MySQL")

	// Redis backs the per-IP request limiter only; the API stays up
	// without it.
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, request rate limiting disabled")
		redisClient = nil
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TTL.Std())
	captcha := turnstile.NewVerifier(cfg.Turnstile.SecretKey)

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	limiterRepo := repository.NewRateLimitRepository(db)

	authService := service.NewAuthService(userRepo, jwtManager, captcha)
	postService := service.NewPostService(postRepo, commentRepo, voteRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	voteService := service.NewVoteService(voteRepo, postRepo, commentRepo, limiterRepo, cfg.VoteLimit)
	feedService := service.NewFeedService(postRepo, voteRepo)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	voteHandler := handler.NewVoteHandler(voteService)
	feedHandler := handler.NewFeedHandler(feedService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))

	routes.Setup(router, feedHandler, postHandler, commentHandler, voteHandler, authHandler, jwtManager)

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("listening")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
