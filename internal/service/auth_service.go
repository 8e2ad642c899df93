package service

import (
	"context"
	"errors"

	"github.com/shareaichat/shareaichat-backend/internal/common"
	"github.com/shareaichat/shareaichat-backend/internal/domain"
	"github.com/shareaichat/shareaichat-backend/internal/repository"
	"github.com/shareaichat/shareaichat-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// CaptchaVerifier checks a client captcha token against the external
// verification service.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// AuthService handles signup, login and profile maintenance.
type AuthService interface {
	Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	CurrentUser(userID uint) (*domain.UserResponse, error)
	UpdateEmail(userID uint, email string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
	captcha    CaptchaVerifier
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager, captcha CaptchaVerifier) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		captcha:    captcha,
	}
}

func (s *authService) verifyCaptcha(ctx context.Context, token string) error {
	ok, err := s.captcha.Verify(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrCaptchaFailed
	}
	return nil
}

func (s *authService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	if err := s.verifyCaptcha(ctx, req.CaptchaToken); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := s.verifyCaptcha(ctx, req.CaptchaToken); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.IssueToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) CurrentUser(userID uint) (*domain.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *authService) UpdateEmail(userID uint, email string) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}
	return s.userRepo.UpdateEmail(userID, email)
}
