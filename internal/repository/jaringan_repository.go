package repository

import (
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type JaringanRepository interface {
	Create(jaringan *model.Jaringan) error
	Save(jaringan *model.Jaringan) error
	GetByID(id uint) (*model.Jaringan, error)
	GetAktif() ([]model.Jaringan, error)
	GetAll() ([]model.Jaringan, error)
}

type jaringanRepository struct {
	db *gorm.DB
}

func NewJaringanRepository(db *gorm.DB) JaringanRepository {
	return &jaringanRepository{db}
}

func (r *jaringanRepository) Create(jaringan *model.Jaringan) error {
	return r.db.Create(jaringan).Error
}

func (r *jaringanRepository) Save(jaringan *model.Jaringan) error {
	return r.db.Save(jaringan).Error
}

func (r *jaringanRepository) GetByID(id uint) (*model.Jaringan, error) {
	var jaringan model.Jaringan
	err := r.db.First(&jaringan, id).Error
	if err != nil {
		return nil, err
	}
	return &jaringan, nil
}

func (r *jaringanRepository) GetAktif() ([]model.Jaringan, error) {
	var list []model.Jaringan
	err := r.db.Where("aktif = ?", true).Find(&list).Error
	return list, err
}

func (r *jaringanRepository) GetAll() ([]model.Jaringan, error) {
	var list []model.Jaringan
	err := r.db.Order("created_at desc").Find(&list).Error
	return list, err
}
