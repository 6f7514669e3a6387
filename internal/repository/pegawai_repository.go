package repository

import (
	"errors"
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type PegawaiRepository interface {
	Create(pegawai *model.Pegawai) error
	GetByID(id uint) (*model.Pegawai, error)
	// GetByKartuID mengembalikan (nil, nil) jika kartu tidak terdaftar.
	GetByKartuID(kartuID string) (*model.Pegawai, error)
	GetAll() ([]model.Pegawai, error)
}

type pegawaiRepository struct {
	db *gorm.DB
}

func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db}
}

func (r *pegawaiRepository) Create(pegawai *model.Pegawai) error {
	return r.db.Create(pegawai).Error
}

func (r *pegawaiRepository) GetByID(id uint) (*model.Pegawai, error) {
	var pegawai model.Pegawai
	err := r.db.First(&pegawai, id).Error
	if err != nil {
		return nil, err
	}
	return &pegawai, nil
}

func (r *pegawaiRepository) GetByKartuID(kartuID string) (*model.Pegawai, error) {
	var pegawai model.Pegawai
	err := r.db.Where("kartu_id = ? AND aktif = ?", kartuID, true).First(&pegawai).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pegawai, nil
}

func (r *pegawaiRepository) GetAll() ([]model.Pegawai, error) {
	var list []model.Pegawai
	err := r.db.Order("nama asc").Find(&list).Error
	return list, err
}
