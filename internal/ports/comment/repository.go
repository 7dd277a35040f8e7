package comment

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/core/comment"
)

// CommentRepository is the outbound port for comment rows.
type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// FindByPost returns up to limit comments of a post ordered newest-first,
	// strictly older than before when it is non-nil, together with the total
	// count matching the cursor.
	FindByPost(ctx context.Context, postID string, before *time.Time, limit int) ([]*comment.Comment, int64, error)
}

// CommentRes is a comment enriched with its author's profile.
type CommentRes struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
