package user

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/core/user"
)

// UserRepository is the outbound port for user rows. Point lookups return
// (nil, nil) when no row matches; errors are reserved for store failures.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Save(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*user.User, error)
	FindByEmailIn(ctx context.Context, emails []string) ([]*user.User, error)
	FindByIDIn(ctx context.Context, ids []string) ([]*user.User, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Avatar      string     `json:"avatar,omitempty"`
	Address     string     `json:"address,omitempty"`
	RechargeVip *time.Time `json:"rechargeVip,omitempty"`
}
