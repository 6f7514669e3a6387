package repository

import (
	"errors"
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type PesertaRepository interface {
	Create(peserta *model.Peserta) error
	// GetByEventDanPegawai mengembalikan (nil, nil) jika belum terdaftar.
	GetByEventDanPegawai(eventID, pegawaiID uint) (*model.Peserta, error)
	GetByEvent(eventID uint) ([]model.Peserta, error)
}

type pesertaRepository struct {
	db *gorm.DB
}

func NewPesertaRepository(db *gorm.DB) PesertaRepository {
	return &pesertaRepository{db}
}

func (r *pesertaRepository) Create(peserta *model.Peserta) error {
	return r.db.Create(peserta).Error
}

func (r *pesertaRepository) GetByEventDanPegawai(eventID, pegawaiID uint) (*model.Peserta, error) {
	var peserta model.Peserta
	err := r.db.Where("event_id = ? AND pegawai_id = ?", eventID, pegawaiID).First(&peserta).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &peserta, nil
}

func (r *pesertaRepository) GetByEvent(eventID uint) ([]model.Peserta, error) {
	var list []model.Peserta
	err := r.db.Where("event_id = ?", eventID).Order("daftar_pada asc").Find(&list).Error
	return list, err
}
