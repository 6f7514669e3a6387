package repository

import (
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type CheckpointLogRepository interface {
	Create(log *model.CheckpointLog) error
	GetByEvent(eventID uint) ([]model.CheckpointLog, error)
}

type checkpointLogRepository struct {
	db *gorm.DB
}

func NewCheckpointLogRepository(db *gorm.DB) CheckpointLogRepository {
	return &checkpointLogRepository{db}
}

func (r *checkpointLogRepository) Create(log *model.CheckpointLog) error {
	return r.db.Create(log).Error
}

func (r *checkpointLogRepository) GetByEvent(eventID uint) ([]model.CheckpointLog, error) {
	var list []model.CheckpointLog
	err := r.db.Where("event_id = ?", eventID).Order("waktu asc").Find(&list).Error
	return list, err
}
