package httpapi

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/adapters/httpapi/middleware"
	"github.com/anonymous231985/room-for-rent/internal/core/post"
	commentPort "github.com/anonymous231985/room-for-rent/internal/ports/comment"
	"github.com/anonymous231985/room-for-rent/internal/ports/pagination"
	postPort "github.com/anonymous231985/room-for-rent/internal/ports/post"
	promotionPort "github.com/anonymous231985/room-for-rent/internal/ports/promotion"
	userPort "github.com/anonymous231985/room-for-rent/internal/ports/user"
	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the core.

type UserUseCase interface {
	Register(ctx context.Context, fullName, email, phone, password, address string) (*userPort.UserDTO, error)
	Login(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	GetProfile(ctx context.Context, id string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	Search(ctx context.Context, callerID string, page, size int) (*pagination.Page[*postPort.PostRes], error)
	ListLiked(ctx context.Context, callerID string, page, size int) (*pagination.Page[*postPort.PostRes], error)
	SearchMine(ctx context.Context, callerID string, page, size int, key string, status *post.ActiveStatus) (*pagination.Page[*postPort.PostRes], error)
	GetByID(ctx context.Context, id string) (*postPort.PostRes, error)
	Create(ctx context.Context, authorID string, req *postPort.PostCreateReq) (*postPort.PostRes, error)
	Update(ctx context.Context, callerID, postID string, req *postPort.PostCreateReq) (*postPort.PostRes, error)
	ToggleLike(ctx context.Context, callerID, postID string) (bool, error)
	CreateComment(ctx context.Context, callerID, postID, content string) (*commentPort.CommentRes, error)
	ListComments(ctx context.Context, postID string, before *time.Time) (*pagination.Page[*commentPort.CommentRes], error)
}

type PromotionUseCase interface {
	Purchase(ctx context.Context, callerID, packageID string) (*promotionPort.PaymentRes, error)
	GetPayment(ctx context.Context, id string) (*promotionPort.PaymentRes, error)
	CreatePackage(ctx context.Context, callerID string, req *promotionPort.AdPackageCreateReq) (*promotionPort.AdPackageRes, error)
	GetPackage(ctx context.Context, id string) (*promotionPort.AdPackageRes, error)
	ListPackages(ctx context.Context, page, size int, key string) (*pagination.Page[*promotionPort.AdPackageRes], error)
	UpdatePackage(ctx context.Context, req *promotionPort.AdPackageUpdateReq) (*promotionPort.AdPackageRes, error)
}

// SetupRoutes wires the controllers; use cases are injected from outside.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	promotionUC PromotionUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	ac := NewPromotionController(promotionUC)

	r.POST("/register", uc.Register)
	r.POST("/login", uc.Login)
	r.GET("/profile", middleware.JWTAuthMiddleware(), uc.GetProfile)

	// Feed reads work anonymously; the optional middleware only resolves
	// the like flags.
	r.GET("/posts", middleware.OptionalJWTMiddleware(), pc.Search)
	r.GET("/posts/liked", middleware.JWTAuthMiddleware(), pc.ListLiked)
	r.GET("/posts/mine", middleware.JWTAuthMiddleware(), pc.SearchMine)
	r.GET("/posts/:id", pc.GetByID)
	r.POST("/posts", middleware.JWTAuthMiddleware(), pc.Create)
	r.PUT("/posts/:id", middleware.JWTAuthMiddleware(), pc.Update)
	r.POST("/posts/:id/like", middleware.JWTAuthMiddleware(), pc.ToggleLike)
	r.POST("/posts/:id/comments", middleware.JWTAuthMiddleware(), pc.CreateComment)
	r.GET("/posts/:id/comments", pc.ListComments)

	r.GET("/advertising-packages", ac.ListPackages)
	r.GET("/advertising-packages/:id", ac.GetPackage)
	r.POST("/advertising-packages", middleware.JWTAuthMiddleware(), ac.CreatePackage)
	r.PUT("/advertising-packages", middleware.JWTAuthMiddleware(), ac.UpdatePackage)
	r.POST("/pay-ads", middleware.JWTAuthMiddleware(), ac.Purchase)
	r.GET("/pay-ads/:id", middleware.JWTAuthMiddleware(), ac.GetPayment)

	return r
}
