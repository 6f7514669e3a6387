package repository

import (
	"errors"
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *model.Event) error
	// GetByID dan GetByNama mengembalikan (nil, nil) jika tidak ada.
	GetByID(id uint) (*model.Event, error)
	GetByNama(nama string) (*model.Event, error)
	GetAll() ([]model.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db}
}

func (r *eventRepository) Create(event *model.Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetByID(id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetByNama(nama string) (*model.Event, error) {
	var event model.Event
	err := r.db.Where("nama = ?", nama).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetAll() ([]model.Event, error) {
	var list []model.Event
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}
