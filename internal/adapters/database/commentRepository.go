package database

import (
	"context"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/comment"
)

// CommentRepositoryDatabase implements the comment outbound port on MySQL.
type CommentRepositoryDatabase struct{}

func NewCommentRepositoryDatabase() *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := config.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) FindByPost(ctx context.Context, postID string, before *time.Time, limit int) ([]*comment.Comment, int64, error) {
	q := config.DB.WithContext(ctx).Model(&comment.Comment{}).
		Where("post_id = ?", postID)
	if before != nil {
		q = q.Where("created_at < ?", *before)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var comments []*comment.Comment
	if err := q.Order("created_at DESC").Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
