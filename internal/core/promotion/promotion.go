package promotion

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Payment lifecycle: PENDING is initial, ACTIVE is terminal. There is no
// reversal or cancellation path.
const (
	StatusPending = "PENDING"
	StatusActive  = "ACTIVE"
)

// AdPackage is a purchasable promotion package granting CountDate days of
// vip posting.
type AdPackage struct {
	ID        uuid.UUID       `gorm:"primary_key;type:char(36);default:uuid()"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Des       string          `gorm:"type:text"`
	Price     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CountDate int             `gorm:"not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedBy string          `gorm:"type:varchar(255)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	DeletedAt *time.Time      `gorm:"index"`
}

// Payment is a purchase of an AdPackage. Price snapshots the package price
// at purchase time. SettleAt is when the confirmation worker may activate
// it; keeping it in the row lets a restarted process resume in-flight
// confirmations.
type Payment struct {
	ID        uuid.UUID       `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID    uuid.UUID       `gorm:"type:char(36);not null;index"`
	PackageID uuid.UUID       `gorm:"type:char(36);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null;index"`
	SettleAt  time.Time       `gorm:"not null;index"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

// ExtendVip returns the new end of a user's vip window after a package
// grants days more. An unexpired window is extended from its current end so
// concurrent purchases stack instead of replacing each other; an expired or
// absent window starts from now.
func ExtendVip(current *time.Time, days int, now time.Time) time.Time {
	if current != nil && current.After(now) {
		return current.AddDate(0, 0, days)
	}
	return now.AddDate(0, 0, days)
}
