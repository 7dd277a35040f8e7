package database

import (
	"context"
	"errors"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/like"
	likePort "github.com/anonymous231985/room-for-rent/internal/ports/like"
	"gorm.io/gorm"
)

// LikeRepositoryDatabase implements the like outbound port on MySQL. The
// uniq_post_user index is the source of truth for "at most one like per
// (post, user)"; Create surfaces its rejection as likePort.ErrDuplicate.
type LikeRepositoryDatabase struct{}

func NewLikeRepositoryDatabase() *LikeRepositoryDatabase {
	return &LikeRepositoryDatabase{}
}

func (repo *LikeRepositoryDatabase) Create(ctx context.Context, l *like.Like) error {
	if err := config.DB.WithContext(ctx).Create(l).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return likePort.ErrDuplicate
		}
		return err
	}
	return nil
}

func (repo *LikeRepositoryDatabase) Delete(ctx context.Context, postID, userID string) (int64, error) {
	res := config.DB.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&like.Like{})
	return res.RowsAffected, res.Error
}

func (repo *LikeRepositoryDatabase) FindByUser(ctx context.Context, userID string) ([]*like.Like, error) {
	var likes []*like.Like
	if err := config.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (repo *LikeRepositoryDatabase) FindPageByUser(ctx context.Context, userID string, offset, limit int) ([]*like.Like, int64, error) {
	var total int64
	if err := config.DB.WithContext(ctx).Model(&like.Like{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var likes []*like.Like
	if err := config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&likes).Error; err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}
