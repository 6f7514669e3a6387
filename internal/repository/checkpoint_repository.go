package repository

import (
	"errors"
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type CheckpointRepository interface {
	Create(checkpoint *model.Checkpoint) error
	Save(checkpoint *model.Checkpoint) error
	// GetByEventDanNama mencari termasuk yang nonaktif (untuk reaktivasi),
	// mengembalikan (nil, nil) jika tidak ada.
	GetByEventDanNama(eventID uint, nama string) (*model.Checkpoint, error)
	GetAktifByEvent(eventID uint) ([]model.Checkpoint, error)
	GetAllByEvent(eventID uint) ([]model.Checkpoint, error)
}

type checkpointRepository struct {
	db *gorm.DB
}

func NewCheckpointRepository(db *gorm.DB) CheckpointRepository {
	return &checkpointRepository{db}
}

func (r *checkpointRepository) Create(checkpoint *model.Checkpoint) error {
	return r.db.Create(checkpoint).Error
}

func (r *checkpointRepository) Save(checkpoint *model.Checkpoint) error {
	return r.db.Save(checkpoint).Error
}

func (r *checkpointRepository) GetByEventDanNama(eventID uint, nama string) (*model.Checkpoint, error) {
	var checkpoint model.Checkpoint
	err := r.db.Where("event_id = ? AND nama = ?", eventID, nama).First(&checkpoint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkpoint, nil
}

func (r *checkpointRepository) GetAktifByEvent(eventID uint) ([]model.Checkpoint, error) {
	var list []model.Checkpoint
	err := r.db.Where("event_id = ? AND aktif = ?", eventID, true).
		Order("urutan asc").Order("id asc").Find(&list).Error
	return list, err
}

func (r *checkpointRepository) GetAllByEvent(eventID uint) ([]model.Checkpoint, error) {
	var list []model.Checkpoint
	err := r.db.Where("event_id = ?", eventID).
		Order("urutan asc").Order("id asc").Find(&list).Error
	return list, err
}
