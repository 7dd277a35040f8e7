package database

import (
	"context"
	"errors"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/apperr"
	"github.com/anonymous231985/room-for-rent/internal/core/promotion"
	"github.com/anonymous231985/room-for-rent/internal/core/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepositoryDatabase implements the payment outbound port on MySQL.
// Pending payments double as the durable confirmation queue.
type PaymentRepositoryDatabase struct{}

func NewPaymentRepositoryDatabase() *PaymentRepositoryDatabase {
	return &PaymentRepositoryDatabase{}
}

func (repo *PaymentRepositoryDatabase) Create(ctx context.Context, p *promotion.Payment) (*promotion.Payment, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PaymentRepositoryDatabase) FindByID(ctx context.Context, id string) (*promotion.Payment, error) {
	var p promotion.Payment
	if err := config.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PaymentRepositoryDatabase) FindDuePending(ctx context.Context, now time.Time, limit int) ([]*promotion.Payment, error) {
	var payments []*promotion.Payment
	if err := config.DB.WithContext(ctx).
		Where("status = ? AND settle_at <= ?", promotion.StatusPending, now).
		Limit(limit).
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Activate runs the whole confirmation in one transaction. The user row is
// locked FOR UPDATE so concurrent purchases by the same user serialize their
// vip extensions, and the status-qualified payment update makes a second
// worker pass a no-op.
func (repo *PaymentRepositoryDatabase) Activate(ctx context.Context, paymentID string) (bool, error) {
	activated := false
	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pay promotion.Payment
		if err := tx.First(&pay, "id = ?", paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrPaymentNotExist
			}
			return err
		}
		if pay.Status != promotion.StatusPending {
			return nil
		}

		var u user.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&u, "id = ?", pay.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrUserNotExist
			}
			return err
		}

		var pkg promotion.AdPackage
		if err := tx.First(&pkg, "id = ?", pay.PackageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrPackageNotExist
			}
			return err
		}

		res := tx.Model(&promotion.Payment{}).
			Where("id = ? AND status = ?", pay.ID, promotion.StatusPending).
			Update("status", promotion.StatusActive)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		newVip := promotion.ExtendVip(u.RechargeVip, pkg.CountDate, time.Now())
		if err := tx.Model(&user.User{}).
			Where("id = ?", u.ID).
			Update("recharge_vip", newVip).Error; err != nil {
			return err
		}

		activated = true
		return nil
	})
	return activated, err
}
