package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/data/repository"
	"admin-panel/internal/dto/request"
	"admin-panel/internal/dto/response"
	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	// EnsureAdmin creates the configured admin account if it does not exist yet.
	EnsureAdmin(ctx context.Context, cfg utils.AdminConfig) error
}

type authService struct {
	adminRepo repository.AdminRepository
	jwt       utils.JWTConfig
	log       *zap.Logger
}

func NewAuthService(adminRepo repository.AdminRepository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwt:       jwt,
		log:       log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if err := validateRequest(req, "Email and password are required"); err != nil {
		s.log.Warn("Login validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Find admin
	admin, err := s.adminRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		s.log.Warn("Admin not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("admin_id", admin.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Issue token
	identity := utils.Identity{
		ID:    admin.ID.String(),
		Email: admin.Email,
		Name:  admin.Name,
	}
	ttl := time.Duration(s.jwt.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.GenerateToken(s.jwt.Secret, identity, ttl)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("Admin logged in", zap.String("admin_id", identity.ID))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     identity,
	}, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, cfg utils.AdminConfig) error {
	if !cfg.Enabled() {
		return nil
	}

	hashedPassword, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.Admin{
		Base:         entity.NewBase(),
		Email:        cfg.Email,
		PasswordHash: hashedPassword,
		Name:         cfg.Name,
	}

	if err := s.adminRepo.Upsert(ctx, admin); err != nil {
		return fmt.Errorf("ensure admin %s: %w", cfg.Email, err)
	}
	return nil
}
