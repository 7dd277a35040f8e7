package like

import (
	"time"

	"github.com/gofrs/uuid"
)

// Like is a toggle relation: row present means liked. The unique index is
// what makes concurrent toggles safe; the service treats a duplicate-key
// rejection on insert as a no-op.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36);default:uuid()"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_post_user"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_post_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
