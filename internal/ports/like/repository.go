package like

import (
	"context"
	"errors"

	"github.com/anonymous231985/room-for-rent/internal/core/like"
)

// ErrDuplicate is returned by Create when the (post, user) pair already
// exists. The store's unique index enforces the invariant; callers treat
// this as "already liked", not a failure.
var ErrDuplicate = errors.New("like already exists")

// LikeRepository is the outbound port for like rows.
type LikeRepository interface {
	Create(ctx context.Context, l *like.Like) error
	// Delete removes the pair and reports how many rows went away, so a
	// concurrent un-like shows up as zero instead of an error.
	Delete(ctx context.Context, postID, userID string) (int64, error)
	FindByUser(ctx context.Context, userID string) ([]*like.Like, error)
	FindPageByUser(ctx context.Context, userID string, offset, limit int) ([]*like.Like, int64, error)
}
