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

	"go.uber.org/zap"
)

type EventService interface {
	GetEvents(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.EventResponse], error)
	GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error)
	CreateEvent(ctx context.Context, req *request.EventRequest) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID string, req *request.EventUpdateRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type eventService struct {
	eventRepo repository.EventRepository
	log       *zap.Logger
}

func NewEventService(eventRepo repository.EventRepository, log *zap.Logger) EventService {
	return &eventService{
		eventRepo: eventRepo,
		log:       log.With(zap.String("service", "event")),
	}
}

func (s *eventService) GetEvents(ctx context.Context, req request.ListRequest) (*response.ListResponse[response.EventResponse], error) {
	filter := repository.ListFilter{
		Search: req.Search,
		Status: req.Status,
		Limit:  req.PageSize(),
		Offset: req.Offset(),
	}

	events, err := s.eventRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}

	total, err := s.eventRepo.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	eventResponses := make([]response.EventResponse, len(events))
	for i, event := range events {
		eventResponses[i] = response.EventToResponse(event)
	}

	return response.NewListResponse(eventResponses, req.PageNumber(), req.PageSize(), total), nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*response.EventResponse, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	eventResp := response.EventToResponse(event)
	return &eventResp, nil
}

func (s *eventService) CreateEvent(ctx context.Context, req *request.EventRequest) (*response.EventResponse, error) {
	if err := validateRequest(req, "Title, location, start date, and end date are required"); err != nil {
		s.log.Warn("Create event validation failed", zap.Error(err))
		return nil, err
	}
	if err := checkEventDates(*req.StartDate, *req.EndDate); err != nil {
		return nil, err
	}

	status := entity.EventStatusUpcoming
	if req.Status != "" {
		status = entity.EventStatus(req.Status)
	}

	event := &entity.Event{
		Base:        entity.NewBase(),
		Title:       req.Title,
		Description: nilIfEmpty(req.Description),
		Location:    req.Location,
		StartDate:   req.StartDate.UTC(),
		EndDate:     req.EndDate.UTC(),
		Status:      status,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("title", event.Title),
		zap.Time("start_date", event.StartDate),
	)

	eventResp := response.EventToResponse(event)
	return &eventResp, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req *request.EventUpdateRequest) (*response.EventResponse, error) {
	if err := validateRequest(req, "Invalid event fields"); err != nil {
		s.log.Warn("Update event validation failed", zap.Error(err))
		return nil, err
	}

	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	request.ApplyNullable(req.Description, &event.Description)
	event.Description = nilIfEmpty(event.Description)
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartDate != nil {
		event.StartDate = req.StartDate.UTC()
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate.UTC()
	}
	if req.Status != nil {
		event.Status = entity.EventStatus(*req.Status)
	}

	// the merged row must still be consistent
	if err := checkEventDates(event.StartDate, event.EndDate); err != nil {
		return nil, err
	}

	event.UpdatedAt = time.Now().UTC()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("update event %s: %w", eventID, err)
	}

	s.log.Info("Event updated", zap.String("event_id", eventID))

	eventResp := response.EventToResponse(event)
	return &eventResp, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	id, err := parseID("event", eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("event %s: %w", eventID, ErrNotFound)
		}
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}

	s.log.Info("Event deleted", zap.String("event_id", eventID))
	return nil
}

func (s *eventService) findEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	id, err := parseID("event", eventID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventID, err)
	}
	if event == nil {
		return nil, fmt.Errorf("event %s: %w", eventID, ErrNotFound)
	}

	return event, nil
}

func checkEventDates(start, end time.Time) error {
	if end.Before(start) {
		return newValidationError("End date must not be before start date",
			map[string]string{"endDate": "Must not be before startDate"})
	}
	return nil
}
