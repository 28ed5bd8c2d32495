package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"admin-panel/internal/data/entity"
	"admin-panel/internal/data/repository"
	"admin-panel/internal/dto/request"
	"admin-panel/internal/dto/response"
	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

type ShopService interface {
	GetShops(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.ShopResponse], error)
	GetShopByID(ctx context.Context, shopID string) (*response.ShopResponse, error)
	CreateShop(ctx context.Context, req *request.ShopRequest) (*response.ShopResponse, error)
	UpdateShop(ctx context.Context, shopID string, req *request.ShopUpdateRequest) (*response.ShopResponse, error)
	DeleteShop(ctx context.Context, shopID string) error
}

type shopService struct {
	shopRepo repository.ShopRepository
	log      *zap.Logger
}

func NewShopService(shopRepo repository.ShopRepository, log *zap.Logger) ShopService {
	return &shopService{
		shopRepo: shopRepo,
		log:      log.With(zap.String("service", "shop")),
	}
}

func (s *shopService) GetShops(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.ShopResponse], error) {
	filter := repository.ListFilter{
		Search: req.Search,
		Status: req.Status,
		Limit:  req.PageSize(),
		Offset: req.Offset(),
	}

	shops, err := s.shopRepo.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to get shops from repository",
			zap.Error(err),
			zap.Int("page", req.PageNumber()),
			zap.Int("limit", req.PageSize()),
		)
		return nil, fmt.Errorf("get shops: %w", err)
	}

	total, err := s.shopRepo.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count shops: %w", err)
	}

	shopResponses := make([]response.ShopResponse, len(shops))
	for i, shop := range shops {
		shopResponses[i] = response.ShopToResponse(shop)
	}

	return response.NewListResponse(shopResponses, req.PageNumber(), req.PageSize(), total), nil
}

func (s *shopService) GetShopByID(ctx context.Context, shopID string) (*response.ShopResponse, error) {
	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	shopResp := response.ShopToResponse(shop)
	return &shopResp, nil
}

func (s *shopService) CreateShop(ctx context.Context, req *request.ShopRequest) (*response.ShopResponse, error) {
	if err := validateRequest(req, "Name, address, and phone are required"); err != nil {
		s.log.Warn("Create shop validation failed", zap.Error(err))
		return nil, err
	}

	status := entity.ShopStatusActive
	if req.Status != "" {
		status = entity.ShopStatus(req.Status)
	}

	shop := &entity.Shop{
		Base:        entity.NewBase(),
		Name:        req.Name,
		Description: nilIfEmpty(req.Description),
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       nilIfEmpty(req.Email),
		Status:      status,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}

	s.log.Info("Shop created",
		zap.String("shop_id", shop.ID.String()),
		zap.String("name", shop.Name),
	)

	shopResp := response.ShopToResponse(shop)
	return &shopResp, nil
}

func (s *shopService) UpdateShop(ctx context.Context, shopID string, req *request.ShopUpdateRequest) (*response.ShopResponse, error) {
	if err := validateRequest(req, "Invalid shop fields"); err != nil {
		s.log.Warn("Update shop validation failed", zap.Error(err))
		return nil, err
	}
	if email, err := req.Email.Get(); err == nil && email != "" {
		if errs := utils.ValidateValue("email", email, "email"); len(errs) > 0 {
			return nil, newValidationError("Invalid shop fields", errs)
		}
	}

	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	request.ApplyNullable(req.Description, &shop.Description)
	shop.Description = nilIfEmpty(shop.Description)
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	request.ApplyNullable(req.Email, &shop.Email)
	shop.Email = nilIfEmpty(shop.Email)
	if req.Status != nil {
		shop.Status = entity.ShopStatus(*req.Status)
	}

	shop.UpdatedAt = time.Now().UTC()
	if err := s.shopRepo.Update(ctx, shop); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("shop %s: %w", shopID, ErrNotFound)
		}
		return nil, fmt.Errorf("update shop %s: %w", shopID, err)
	}

	s.log.Info("Shop updated", zap.String("shop_id", shopID))

	shopResp := response.ShopToResponse(shop)
	return &shopResp, nil
}

func (s *shopService) DeleteShop(ctx context.Context, shopID string) error {
	id, err := parseID("shop", shopID)
	if err != nil {
		return err
	}

	if err := s.shopRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("shop %s: %w", shopID, ErrNotFound)
		}
		return fmt.Errorf("delete shop %s: %w", shopID, err)
	}

	s.log.Info("Shop deleted", zap.String("shop_id", shopID))
	return nil
}

func (s *shopService) findShop(ctx context.Context, shopID string) (*entity.Shop, error) {
	id, err := parseID("shop", shopID)
	if err != nil {
		return nil, err
	}

	shop, err := s.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shop %s: %w", shopID, err)
	}
	if shop == nil {
		return nil, fmt.Errorf("shop %s: %w", shopID, ErrNotFound)
	}

	return shop, nil
}
