package comment

import (
	"time"

	"github.com/gofrs/uuid"
)

// Comment is append-only; rows are never mutated after creation.
type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `gorm:"type:char(36);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}
