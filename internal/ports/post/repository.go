package post

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/core/post"
	"github.com/shopspring/decimal"
)

// PostRepository is the outbound port for post rows. FindByID returns
// (nil, nil) when no row matches.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	Save(ctx context.Context, p *post.Post) error
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindByIDIn(ctx context.Context, ids []string) ([]*post.Post, error)
	FindPage(ctx context.Context, offset, limit int) ([]*post.Post, int64, error)
	// FindPageByCreator filters the caller's own posts by a content substring
	// and an optional moderation status, newest-updated first.
	FindPageByCreator(ctx context.Context, email, key string, status *post.ActiveStatus, offset, limit int) ([]*post.Post, int64, error)
	CountByCreatedBy(ctx context.Context, email string) (int64, error)
	// IncrementView bumps the view counter atomically in the store; callers
	// never read-modify-write it.
	IncrementView(ctx context.Context, id string) error
	SaveImages(ctx context.Context, images []*post.Image) error
}

// AuthorRes is the enriched author block embedded in every feed item.
type AuthorRes struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar,omitempty"`
	TotalPost  int64  `json:"totalPost"`
	Uptime     string `json:"uptime"`
	DateOfJoin string `json:"dateOfJoin"`
}

// PostRes is a feed item: the post plus its author block, the caller's like
// state and human-relative timestamps.
type PostRes struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Price      decimal.Decimal   `json:"price"`
	Deposit    decimal.Decimal   `json:"deposit"`
	Address    string            `json:"address"`
	Province   string            `json:"province"`
	District   string            `json:"district"`
	Acreage    float64           `json:"acreage"`
	StatusRoom string            `json:"statusRoom"`
	Contact    string            `json:"contact"`
	Longitude  float64           `json:"longitude"`
	Latitude   float64           `json:"latitude"`
	Type       string            `json:"type"`
	Active     post.ActiveStatus `json:"active"`
	View       int64             `json:"view"`
	Images     []string          `json:"images"`
	CreatedBy  string            `json:"createdBy"`
	Uptime     string            `json:"uptime"`
	DateOfJoin string            `json:"dateOfJoin"`
	Like       bool              `json:"like"`
	Author     *AuthorRes        `json:"user"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// PostCreateReq carries the author-supplied fields for create and update.
type PostCreateReq struct {
	Title      string          `json:"title" binding:"required"`
	Content    string          `json:"content" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Deposit    decimal.Decimal `json:"deposit"`
	Address    string          `json:"address"`
	Province   string          `json:"province"`
	District   string          `json:"district"`
	Acreage    float64         `json:"acreage"`
	StatusRoom string          `json:"statusRoom"`
	Contact    string          `json:"contact"`
	Longitude  float64         `json:"longitude"`
	Latitude   float64         `json:"latitude"`
	Type       string          `json:"type"`
	Images     []string        `json:"images"`
}
