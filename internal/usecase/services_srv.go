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

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ServicesService manages the offerings listed under /services.
type ServicesService interface {
	GetServices(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.ServiceResponse], error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	CreateService(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.ServiceUpdateRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error
}

type servicesService struct {
	serviceRepo repository.ServiceRepository
	log         *zap.Logger
}

func NewServicesService(serviceRepo repository.ServiceRepository, log *zap.Logger) ServicesService {
	return &servicesService{
		serviceRepo: serviceRepo,
		log:         log.With(zap.String("service", "services")),
	}
}

func (s *servicesService) GetServices(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.ServiceResponse], error) {
	filter := repository.ListFilter{
		Search: req.Search,
		Status: req.Status,
		Equals: map[string]string{"category": req.Category},
		Limit:  req.PageSize(),
		Offset: req.Offset(),
	}

	services, err := s.serviceRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}

	total, err := s.serviceRepo.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count services: %w", err)
	}

	serviceResponses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		serviceResponses[i] = response.ServiceToResponse(service)
	}

	return response.NewListResponse(serviceResponses, req.PageNumber(), req.PageSize(), total), nil
}

func (s *servicesService) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	service, err := s.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	serviceResp := response.ServiceToResponse(service)
	return &serviceResp, nil
}

func (s *servicesService) CreateService(ctx context.Context, req *request.ServiceRequest) (*response.ServiceResponse, error) {
	if err := validateRequest(req, "Name, category, and price are required"); err != nil {
		s.log.Warn("Create service validation failed", zap.Error(err))
		return nil, err
	}
	if err := checkPrice(*req.Price); err != nil {
		return nil, err
	}

	status := entity.ServiceStatusAvailable
	if req.Status != "" {
		status = entity.ServiceStatus(req.Status)
	}

	service := &entity.Service{
		Base:        entity.NewBase(),
		Name:        req.Name,
		Description: nilIfEmpty(req.Description),
		Category:    req.Category,
		Price:       *req.Price,
		Status:      status,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID.String()),
		zap.String("name", service.Name),
		zap.Stringer("price", service.Price),
	)

	serviceResp := response.ServiceToResponse(service)
	return &serviceResp, nil
}

func (s *servicesService) UpdateService(ctx context.Context, serviceID string, req *request.ServiceUpdateRequest) (*response.ServiceResponse, error) {
	if err := validateRequest(req, "Invalid service fields"); err != nil {
		s.log.Warn("Update service validation failed", zap.Error(err))
		return nil, err
	}
	if req.Price != nil {
		if err := checkPrice(*req.Price); err != nil {
			return nil, err
		}
	}

	service, err := s.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	request.ApplyNullable(req.Description, &service.Description)
	service.Description = nilIfEmpty(service.Description)
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Status != nil {
		service.Status = entity.ServiceStatus(*req.Status)
	}

	service.UpdatedAt = time.Now().UTC()
	if err := s.serviceRepo.Update(ctx, service); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("update service %s: %w", serviceID, err)
	}

	s.log.Info("Service updated", zap.String("service_id", serviceID))

	serviceResp := response.ServiceToResponse(service)
	return &serviceResp, nil
}

func (s *servicesService) DeleteService(ctx context.Context, serviceID string) error {
	id, err := parseID("service", serviceID)
	if err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
		}
		return fmt.Errorf("delete service %s: %w", serviceID, err)
	}

	s.log.Info("Service deleted", zap.String("service_id", serviceID))
	return nil
}

func (s *servicesService) findService(ctx context.Context, serviceID string) (*entity.Service, error) {
	id, err := parseID("service", serviceID)
	if err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}
	if service == nil {
		return nil, fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
	}

	return service, nil
}

func checkPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return newValidationError("Price must not be negative",
			map[string]string{"price": "Must not be negative"})
	}
	return nil
}
