package user

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	FullName string    `gorm:"not null"`
	Email    string    `gorm:"unique;not null"`
	Phone    string    `gorm:"unique;not null"`
	Password string    `gorm:"not null"`
	Avatar   string    `gorm:"type:varchar(512)"`
	Address  string
	// RechargeVip marks the end of the paid posting window; nil means the
	// user never recharged. It only ever moves forward in time.
	RechargeVip *time.Time `gorm:"index"`
	// Uptime is the last time the user was active on the site.
	Uptime    time.Time
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}

// VipActive reports whether the user may create or update posts at the given
// instant.
func (u *User) VipActive(now time.Time) bool {
	return u.RechargeVip != nil && !now.After(*u.RechargeVip)
}
