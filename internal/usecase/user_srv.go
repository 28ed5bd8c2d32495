package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/data/repository"
	"admin-panel/internal/dto/request"
	"admin-panel/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	ToggleStatus(ctx context.Context, userID string) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.UserResponse], error) {
	filter := repository.ListFilter{
		Search: req.Search,
		Status: req.Status,
		Limit:  req.PageSize(),
		Offset: req.Offset(),
	}

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.userRepo.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	s.log.Debug("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.PageNumber()),
		zap.Int("limit", req.PageSize()),
	)

	return response.NewListResponse(userResponses, req.PageNumber(), req.PageSize(), total), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	if err := validateRequest(req, "Email and name are required"); err != nil {
		s.log.Warn("Create user validation failed", zap.Error(err))
		return nil, err
	}

	email := strings.TrimSpace(req.Email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
	}

	status := entity.UserStatusActive
	if req.Status != "" {
		status = entity.UserStatus(req.Status)
	}

	user := &entity.User{
		Base:   entity.NewBase(),
		Email:  email,
		Name:   req.Name,
		Phone:  nilIfEmpty(req.Phone),
		Status: status,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if err := validateRequest(req, "Invalid user fields"); err != nil {
		s.log.Warn("Update user validation failed", zap.Error(err))
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if !strings.EqualFold(email, user.Email) {
			existing, err := s.userRepo.FindByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if existing != nil {
				return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
			}
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	request.ApplyNullable(req.Phone, &user.Phone)
	user.Phone = nilIfEmpty(user.Phone)
	if req.Status != nil {
		user.Status = entity.UserStatus(*req.Status)
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, s.mapWriteError(err, userID, "update user")
	}

	s.log.Info("User updated", zap.String("user_id", userID))

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := parseID("user", userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return s.mapWriteError(err, userID, "delete user")
	}

	s.log.Info("User deleted", zap.String("user_id", userID))
	return nil
}

// ToggleStatus flips active and blocked. Two calls restore the original status.
func (s *userService) ToggleStatus(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	newStatus := user.Status.Toggled()
	updated, err := s.userRepo.UpdateStatus(ctx, user.ID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("toggle user status %s: %w", userID, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	s.log.Info("User status toggled",
		zap.String("user_id", userID),
		zap.String("from", string(user.Status)),
		zap.String("to", string(updated.Status)),
	)

	userResp := response.UserToResponse(updated)
	return &userResp, nil
}

func (s *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	return user, nil
}

func (s *userService) mapWriteError(err error, userID, operation string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("user %s email: %w", userID, ErrConflict)
	default:
		return fmt.Errorf("%s %s: %w", operation, userID, err)
	}
}
