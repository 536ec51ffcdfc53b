package service

import (
	"errors"
	"time"

	"challenge_hub_backend/internal/model"
	"challenge_hub_backend/internal/repository"
	"challenge_hub_backend/internal/util"

	"gorm.io/gorm"
)

type EventService struct {
	Events             *repository.EventRepository
	DefaultMaxTeamSize int
}

func NewEventService(events *repository.EventRepository, defaultMaxTeamSize int) *EventService {
	return &EventService{Events: events, DefaultMaxTeamSize: defaultMaxTeamSize}
}

// Create 时间窗口必须满足 end > start。challenge_ids 不校验是否在目录中。
func (s *EventService) Create(req *model.EventCreateRequest) (*model.Event, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, util.ErrInvalidEventWindow
	}

	maxTeamSize := req.MaxTeamSize
	if maxTeamSize == 0 {
		maxTeamSize = s.DefaultMaxTeamSize
	}

	challengeIDs := req.ChallengeIDs
	if challengeIDs == nil {
		challengeIDs = []string{}
	}

	event := &model.Event{
		Name:         req.Name,
		Description:  req.Description,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxTeamSize:  maxTeamSize,
		ChallengeIDs: challengeIDs,
	}
	if err := s.Events.Create(event); err != nil {
		return nil, err
	}
	event.Status = event.StatusAt(time.Now().UTC())
	return event, nil
}

func (s *EventService) List() ([]*model.Event, error) {
	events, err := s.Events.List()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, e := range events {
		e.Status = e.StatusAt(now)
	}
	return events, nil
}

func (s *EventService) Get(id string) (*model.Event, error) {
	event, err := s.Events.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	event.Status = event.StatusAt(time.Now().UTC())
	return event, nil
}

// Update 部分更新，合并后的时间窗口重新校验
func (s *EventService) Update(id string, req *model.EventUpdateRequest) (*model.Event, error) {
	event, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.MaxTeamSize != nil {
		event.MaxTeamSize = *req.MaxTeamSize
	}
	if req.ChallengeIDs != nil {
		event.ChallengeIDs = *req.ChallengeIDs
	}

	if !event.EndTime.After(event.StartTime) {
		return nil, util.ErrInvalidEventWindow
	}

	if err := s.Events.Update(event); err != nil {
		return nil, err
	}
	event.Status = event.StatusAt(time.Now().UTC())
	return event, nil
}

func (s *EventService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Events.Delete(id)
}
