package services

import (
	"context"
	"errors"
	"fmt"

	"framework4future/portal/internal/db"
	"framework4future/portal/internal/db/repositories"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"
	"framework4future/portal/internal/models/dtos/requests"
	gormModels "framework4future/portal/internal/models/gorm"
)

const entityEvents = "events"

// EventService swallows live store errors and answers from the fallback store.
type EventService struct {
	storeDeps
	repo *repositories.EventRepository
}

func NewEventService(live *db.Live, fb *fallback.Store, m *metrics.MetricsRegistry) *EventService {
	return &EventService{
		storeDeps: newStoreDeps(live, fb, m),
		repo:      repositories.NewEventRepository(live),
	}
}

// List returns every event, newest first.
func (s *EventService) List(ctx context.Context) []gormModels.Event {
	if s.useLive(entityEvents, "list") {
		events, err := s.repo.List(ctx)
		if err == nil {
			s.liveOK(entityEvents, "list")
			return events
		}
		s.liveFailed(entityEvents, "list", err)
	}
	return s.fallback.Events.All()
}

func (s *EventService) Get(ctx context.Context, id string) (gormModels.Event, error) {
	if s.useLive(entityEvents, "get") {
		event, err := s.repo.Get(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityEvents, "get")
			return *event, nil
		case errors.Is(err, repositories.ErrNotFound):
			return gormModels.Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityEvents, "get", err)
	}

	event, ok := s.fallback.Events.Get(id)
	if !ok {
		return gormModels.Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return event, nil
}

func (s *EventService) Create(ctx context.Context, req requests.EventRequest) (gormModels.Event, error) {
	if req.Name == "" {
		return gormModels.Event{}, fmt.Errorf("event name is required: %w", ErrInvalidInput)
	}

	event := gormModels.Event{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Date:        req.Date,
		SignupURL:   req.SignupURL,
	}

	if s.useLive(entityEvents, "create") {
		err := s.repo.Create(ctx, &event)
		if err == nil {
			s.liveOK(entityEvents, "create")
			return event, nil
		}
		s.liveFailed(entityEvents, "create", err)
	}

	if event.ID == "" {
		event.ID = gormModels.NewID()
	}
	event.CreatedAt = now()
	event.UpdatedAt = event.CreatedAt
	s.fallback.Events.Prepend(event)
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, patch requests.EventPatch) (gormModels.Event, error) {
	if s.useLive(entityEvents, "update") {
		event, err := s.repo.Update(ctx, id, eventUpdates(patch))
		switch {
		case err == nil:
			s.liveOK(entityEvents, "update")
			return *event, nil
		case errors.Is(err, repositories.ErrNotFound):
			return gormModels.Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityEvents, "update", err)
	}

	event, ok := s.fallback.Events.Update(id, func(e *gormModels.Event) {
		applyEventPatch(e, patch)
		e.UpdatedAt = now()
	})
	if !ok {
		return gormModels.Event{}, fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if s.useLive(entityEvents, "delete") {
		err := s.repo.Delete(ctx, id)
		switch {
		case err == nil:
			s.liveOK(entityEvents, "delete")
			return nil
		case errors.Is(err, repositories.ErrNotFound):
			return fmt.Errorf("event %s: %w", id, ErrNotFound)
		}
		s.liveFailed(entityEvents, "delete", err)
	}

	if !s.fallback.Events.Remove(id) {
		return fmt.Errorf("event %s: %w", id, ErrNotFound)
	}
	return nil
}

func eventUpdates(p requests.EventPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Image != nil {
		updates["image"] = *p.Image
	}
	if p.Date != nil {
		updates["date"] = *p.Date
	}
	if p.SignupURL != nil {
		updates["signup_url"] = *p.SignupURL
	}
	return updates
}

func applyEventPatch(e *gormModels.Event, p requests.EventPatch) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.SignupURL != nil {
		e.SignupURL = *p.SignupURL
	}
}
