package main

import (
	"context"
	"os"
	"time"

	dbadapter "github.com/anonymous231985/room-for-rent/internal/adapters/database"
	"github.com/anonymous231985/room-for-rent/internal/adapters/httpapi"
	redisadapter "github.com/anonymous231985/room-for-rent/internal/adapters/redis"
	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/comment"
	"github.com/anonymous231985/room-for-rent/internal/core/like"
	"github.com/anonymous231985/room-for-rent/internal/core/post"
	postapp "github.com/anonymous231985/room-for-rent/internal/core/post/service"
	"github.com/anonymous231985/room-for-rent/internal/core/promotion"
	promotionapp "github.com/anonymous231985/room-for-rent/internal/core/promotion/service"
	"github.com/anonymous231985/room-for-rent/internal/core/user"
	userapp "github.com/anonymous231985/room-for-rent/internal/core/user/service"
	"github.com/anonymous231985/room-for-rent/internal/workers"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()
	config.InitDB()

	if err := config.DB.AutoMigrate(
		&user.User{},
		&post.Post{},
		&post.Image{},
		&comment.Comment{},
		&like.Like{},
		&promotion.AdPackage{},
		&promotion.Payment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("database migrations completed")

	config.InitRedis()
	defer closeResources(config.Logger)

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	commentRepo := dbadapter.NewCommentRepositoryDatabase()
	likeRepo := dbadapter.NewLikeRepositoryDatabase()
	packageRepo := dbadapter.NewPackageRepositoryDatabase()
	paymentRepo := dbadapter.NewPaymentRepositoryDatabase()
	commentBroadcast := redisadapter.NewCommentBroadcastRedis(config.RedisClient)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	postSvc := postapp.NewPostService(postRepo, userRepo, commentRepo, likeRepo, commentBroadcast)
	promotionSvc := promotionapp.NewPromotionService(packageRepo, paymentRepo, userRepo, config.SettleDelay())
	r := httpapi.SetupRoutes(userSvc, postSvc, promotionSvc)

	activationWorker := workers.NewActivationWorker(paymentRepo, config.BatchSize(), time.Second, config.Logger)

	// The worker's context is independent of any request: cancelling a
	// purchase request never cancels its scheduled confirmation.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go activationWorker.Run(ctx)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources closes the Redis and database connections.
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
