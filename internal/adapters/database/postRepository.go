package database

import (
	"context"
	"errors"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/post"
	"gorm.io/gorm"
)

// PostRepositoryDatabase implements the post outbound port on MySQL.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Omit("Images").Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Save(ctx context.Context, p *post.Post) error {
	return config.DB.WithContext(ctx).Omit("Images").Save(p).Error
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).Preload("Images").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) FindByIDIn(ctx context.Context, ids []string) ([]*post.Post, error) {
	var posts []*post.Post
	if len(ids) == 0 {
		return posts, nil
	}
	if err := config.DB.WithContext(ctx).Preload("Images").Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) FindPage(ctx context.Context, offset, limit int) ([]*post.Post, int64, error) {
	var total int64
	if err := config.DB.WithContext(ctx).Model(&post.Post{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []*post.Post
	if err := config.DB.WithContext(ctx).Preload("Images").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) FindPageByCreator(ctx context.Context, email, key string, status *post.ActiveStatus, offset, limit int) ([]*post.Post, int64, error) {
	q := config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("created_by = ?", email)
	if key != "" {
		q = q.Where("content LIKE ?", "%"+key+"%")
	}
	if status != nil {
		q = q.Where("active = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var posts []*post.Post
	if err := q.Preload("Images").
		Order("updated_at DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) CountByCreatedBy(ctx context.Context, email string) (int64, error) {
	var count int64
	if err := config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("created_by = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IncrementView bumps the counter in SQL so concurrent reads never lose an
// increment.
func (repo *PostRepositoryDatabase) IncrementView(ctx context.Context, id string) error {
	return config.DB.WithContext(ctx).Model(&post.Post{}).
		Where("id = ?", id).
		UpdateColumn("view", gorm.Expr("view + ?", 1)).Error
}

func (repo *PostRepositoryDatabase) SaveImages(ctx context.Context, images []*post.Image) error {
	if len(images) == 0 {
		return nil
	}
	return config.DB.WithContext(ctx).Create(&images).Error
}
