package promotion

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/core/promotion"
	"github.com/shopspring/decimal"
)

// PackageRepository is the outbound port for advertising packages. Point
// lookups return (nil, nil) when no row matches.
type PackageRepository interface {
	Create(ctx context.Context, p *promotion.AdPackage) (*promotion.AdPackage, error)
	Save(ctx context.Context, p *promotion.AdPackage) error
	FindByID(ctx context.Context, id string) (*promotion.AdPackage, error)
	FindPage(ctx context.Context, key string, offset, limit int) ([]*promotion.AdPackage, int64, error)
}

// PaymentRepository is the outbound port for payment rows and the durable
// confirmation queue the activation worker drains.
type PaymentRepository interface {
	Create(ctx context.Context, p *promotion.Payment) (*promotion.Payment, error)
	FindByID(ctx context.Context, id string) (*promotion.Payment, error)
	// FindDuePending returns up to limit PENDING payments whose settle time
	// has passed.
	FindDuePending(ctx context.Context, now time.Time, limit int) ([]*promotion.Payment, error)
	// Activate flips the payment PENDING to ACTIVE and extends the buyer's
	// vip window by the package's day count, all in one transaction with the
	// user row locked. It is idempotent: a payment no longer PENDING is left
	// alone and reported as already done.
	Activate(ctx context.Context, paymentID string) (bool, error)
}

type AdPackageRes struct {
	ID        string          `json:"id"`
	Name      string          `json:"advertisingName"`
	Des       string          `json:"des,omitempty"`
	Price     decimal.Decimal `json:"price"`
	CountDate int             `json:"countDate"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

type AdPackageCreateReq struct {
	Name      string          `json:"advertisingName" binding:"required"`
	Des       string          `json:"des"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	CountDate int             `json:"countDate" binding:"required"`
	Active    bool            `json:"active"`
}

type AdPackageUpdateReq struct {
	ID        string          `json:"id" binding:"required"`
	Name      string          `json:"advertisingName" binding:"required"`
	Des       string          `json:"des"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	CountDate int             `json:"countDate" binding:"required"`
	Active    bool            `json:"active"`
}

type PaymentRes struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	PackageID string          `json:"advertisingPackage"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}
