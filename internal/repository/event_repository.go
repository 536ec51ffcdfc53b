package repository

import (
	"challenge_hub_backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Create(event *model.Event) error {
	return r.DB.Create(event).Error
}

func (r *EventRepository) GetByID(id string) (*model.Event, error) {
	var event model.Event
	err := r.DB.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) List() ([]*model.Event, error) {
	var events []*model.Event
	err := r.DB.Order("start_time DESC").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *model.Event) error {
	return r.DB.Save(event).Error
}

func (r *EventRepository) Delete(id string) error {
	return r.DB.Delete(&model.Event{}, "id = ?", id).Error
}
