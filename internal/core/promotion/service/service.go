package promotionapp

import (
	"context"
	"fmt"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/core/apperr"
	promotionEntity "github.com/anonymous231985/room-for-rent/internal/core/promotion"
	"github.com/anonymous231985/room-for-rent/internal/ports/pagination"
	promotionPort "github.com/anonymous231985/room-for-rent/internal/ports/promotion"
	userPort "github.com/anonymous231985/room-for-rent/internal/ports/user"
	"github.com/gofrs/uuid"
)

// PromotionService sells advertising packages. Purchase only writes the
// PENDING payment row; the activation worker confirms it after the
// settlement delay, independent of the request's lifetime.
type PromotionService struct {
	PackageRepository promotionPort.PackageRepository
	PaymentRepository promotionPort.PaymentRepository
	UserRepository    userPort.UserRepository
	SettleDelay       time.Duration
}

func NewPromotionService(
	packageRepo promotionPort.PackageRepository,
	paymentRepo promotionPort.PaymentRepository,
	userRepo userPort.UserRepository,
	settleDelay time.Duration,
) *PromotionService {
	return &PromotionService{
		PackageRepository: packageRepo,
		PaymentRepository: paymentRepo,
		UserRepository:    userRepo,
		SettleDelay:       settleDelay,
	}
}

// Purchase creates a PENDING payment snapshotting the package price. The
// caller gets the PENDING record back immediately; confirmation happens
// out-of-band once SettleAt passes.
func (s *PromotionService) Purchase(ctx context.Context, callerID, packageID string) (*promotionPort.PaymentRes, error) {
	pkg, err := s.PackageRepository.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package: %w", err)
	}
	if pkg == nil {
		return nil, apperr.ErrPackageNotExist
	}

	u, err := s.UserRepository.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, apperr.ErrUserNotExist
	}

	pay := &promotionEntity.Payment{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    u.ID,
		PackageID: pkg.ID,
		Price:     pkg.Price,
		Status:    promotionEntity.StatusPending,
		SettleAt:  time.Now().Add(s.SettleDelay),
	}
	created, err := s.PaymentRepository.Create(ctx, pay)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return toPaymentRes(created), nil
}

// GetPayment returns one payment record.
func (s *PromotionService) GetPayment(ctx context.Context, id string) (*promotionPort.PaymentRes, error) {
	p, err := s.PaymentRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if p == nil {
		return nil, apperr.ErrPaymentNotExist
	}
	return toPaymentRes(p), nil
}

// CreatePackage adds a purchasable package, stamped with the creator.
func (s *PromotionService) CreatePackage(ctx context.Context, callerID string, req *promotionPort.AdPackageCreateReq) (*promotionPort.AdPackageRes, error) {
	u, err := s.UserRepository.FindByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, apperr.ErrUserNotExist
	}

	pkg := &promotionEntity.AdPackage{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      req.Name,
		Des:       req.Des,
		Price:     req.Price,
		CountDate: req.CountDate,
		Active:    req.Active,
		CreatedBy: u.Email,
	}
	created, err := s.PackageRepository.Create(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return toPackageRes(created), nil
}

// GetPackage returns one advertising package.
func (s *PromotionService) GetPackage(ctx context.Context, id string) (*promotionPort.AdPackageRes, error) {
	pkg, err := s.PackageRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package: %w", err)
	}
	if pkg == nil {
		return nil, apperr.ErrPackageNotExist
	}
	return toPackageRes(pkg), nil
}

// ListPackages pages through packages, oldest-first, optionally filtered by
// a name substring.
func (s *PromotionService) ListPackages(ctx context.Context, page, size int, key string) (*pagination.Page[*promotionPort.AdPackageRes], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}

	packages, total, err := s.PackageRepository.FindPage(ctx, key, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	res := make([]*promotionPort.AdPackageRes, 0, len(packages))
	for _, pkg := range packages {
		res = append(res, toPackageRes(pkg))
	}
	return pagination.New(res, page, size, total), nil
}

// UpdatePackage replaces a package's fields.
func (s *PromotionService) UpdatePackage(ctx context.Context, req *promotionPort.AdPackageUpdateReq) (*promotionPort.AdPackageRes, error) {
	pkg, err := s.PackageRepository.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package: %w", err)
	}
	if pkg == nil {
		return nil, apperr.ErrPackageNotExist
	}

	pkg.Name = req.Name
	pkg.Des = req.Des
	pkg.Price = req.Price
	pkg.CountDate = req.CountDate
	pkg.Active = req.Active
	if err := s.PackageRepository.Save(ctx, pkg); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	return toPackageRes(pkg), nil
}

func toPackageRes(p *promotionEntity.AdPackage) *promotionPort.AdPackageRes {
	return &promotionPort.AdPackageRes{
		ID:        p.ID.String(),
		Name:      p.Name,
		Des:       p.Des,
		Price:     p.Price,
		CountDate: p.CountDate,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func toPaymentRes(p *promotionEntity.Payment) *promotionPort.PaymentRes {
	return &promotionPort.PaymentRes{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		PackageID: p.PackageID.String(),
		Price:     p.Price,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}
