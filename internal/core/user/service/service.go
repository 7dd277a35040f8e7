package userapp

import (
	"context"
	"fmt"
	"time"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/apperr"
	userEntity "github.com/anonymous231985/room-for-rent/internal/core/user"
	userPort "github.com/anonymous231985/room-for-rent/internal/ports/user"
	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserService handles registration, login and profile reads.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
	}
}

// Register creates a new account with a bcrypt-hashed password. Email and
// phone must both be unused.
func (s *UserService) Register(ctx context.Context, fullName, email, phone, password, address string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		if existing.Email == email {
			return nil, apperr.ErrEmailExist
		}
		return nil, apperr.ErrPhoneExist
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		FullName: fullName,
		Email:    email,
		Phone:    phone,
		Password: string(hashed),
		Address:  address,
		Uptime:   time.Now(),
	}
	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserDTO(created), nil
}

// Login verifies credentials and issues a signed token. The user's uptime
// is refreshed best-effort; a failed write never fails the login.
func (s *UserService) Login(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, apperr.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	token, err := s.generateJWT(u, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	u.Uptime = time.Now()
	if err := s.UserRepository.Save(ctx, u); err != nil {
		config.Logger.Warn("could not refresh user uptime",
			zap.String("userID", u.ID.String()), zap.Error(err))
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// GetProfile returns the caller's own profile.
func (s *UserService) GetProfile(ctx context.Context, id string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return nil, apperr.ErrUserNotExist
	}
	return toUserDTO(u), nil
}

func (s *UserService) generateJWT(u *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "room-for-rent",
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:          u.ID.String(),
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		Avatar:      u.Avatar,
		Address:     u.Address,
		RechargeVip: u.RechargeVip,
	}
}
