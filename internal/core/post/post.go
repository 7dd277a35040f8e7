package post

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// ActiveStatus is the moderation state of a post.
type ActiveStatus string

const (
	StatusPending  ActiveStatus = "PENDING"
	StatusActive   ActiveStatus = "ACTIVE"
	StatusRejected ActiveStatus = "REJECTED"
)

type Post struct {
	ID         uuid.UUID       `gorm:"primary_key;type:char(36);default:uuid()"`
	Title      string          `gorm:"type:varchar(255);not null"`
	Content    string          `gorm:"type:text;not null"`
	Price      decimal.Decimal `gorm:"type:decimal(14,2)"`
	Deposit    decimal.Decimal `gorm:"type:decimal(14,2)"`
	Address    string          `gorm:"type:varchar(512)"`
	Province   string          `gorm:"type:varchar(128);index"`
	District   string          `gorm:"type:varchar(128)"`
	Acreage    float64
	StatusRoom string `gorm:"type:varchar(32)"`
	Contact    string `gorm:"type:varchar(64)"`
	Longitude  float64
	Latitude   float64
	Type       string       `gorm:"type:varchar(32);index"`
	Active     ActiveStatus `gorm:"type:varchar(20);not null;index"`
	View       int64        `gorm:"not null;default:0"`
	// CreatedBy / UpdatedBy hold the author's email.
	CreatedBy string     `gorm:"type:varchar(255);not null;index"`
	UpdatedBy string     `gorm:"type:varchar(255)"`
	Images    []Image    `gorm:"foreignkey:PostID"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}

// Image is a dependent row; a post always exists before its images.
type Image struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	URL       string    `gorm:"type:varchar(512);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
