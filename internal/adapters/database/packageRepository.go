package database

import (
	"context"
	"errors"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/promotion"
	"gorm.io/gorm"
)

// PackageRepositoryDatabase implements the advertising package outbound port
// on MySQL.
type PackageRepositoryDatabase struct{}

func NewPackageRepositoryDatabase() *PackageRepositoryDatabase {
	return &PackageRepositoryDatabase{}
}

func (repo *PackageRepositoryDatabase) Create(ctx context.Context, p *promotion.AdPackage) (*promotion.AdPackage, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PackageRepositoryDatabase) Save(ctx context.Context, p *promotion.AdPackage) error {
	return config.DB.WithContext(ctx).Save(p).Error
}

func (repo *PackageRepositoryDatabase) FindByID(ctx context.Context, id string) (*promotion.AdPackage, error) {
	var p promotion.AdPackage
	if err := config.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PackageRepositoryDatabase) FindPage(ctx context.Context, key string, offset, limit int) ([]*promotion.AdPackage, int64, error) {
	q := config.DB.WithContext(ctx).Model(&promotion.AdPackage{})
	if key != "" {
		q = q.Where("name LIKE ?", "%"+key+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var packages []*promotion.AdPackage
	if err := q.Order("created_at ASC").Offset(offset).Limit(limit).Find(&packages).Error; err != nil {
		return nil, 0, err
	}
	return packages, total, nil
}
