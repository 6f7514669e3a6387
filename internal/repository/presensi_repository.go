package repository

import (
	"errors"
	"presensi-backend/internal/model"

	"gorm.io/gorm"
)

type RekapHarian struct {
	Tanggal        string `json:"tanggal"`
	TotalMasuk     int64  `json:"total_masuk"`
	TotalPulang    int64  `json:"total_pulang"`
	MasukPertama   string `json:"masuk_pertama"`
	PulangTerakhir string `json:"pulang_terakhir"`
}

type PresensiRepository interface {
	Create(presensi *model.Presensi) error
	// GetTerakhirHarian mengambil record valid terakhir untuk (pegawai, tanggal).
	// Mengembalikan (nil, nil) jika belum ada.
	GetTerakhirHarian(pegawaiID uint, tanggal string) (*model.Presensi, error)
	// GetTerakhirEvent sama seperti di atas tapi scope-nya event, lintas tanggal.
	GetTerakhirEvent(pegawaiID uint, eventID uint) (*model.Presensi, error)
	GetRiwayat(dari, sampai string, pegawaiID uint) ([]model.Presensi, error)
	GetByTanggal(tanggal string) ([]model.Presensi, error)
	GetRekapHarian(tanggal string) (*RekapHarian, error)
	Batalkan(id uint) error
	CountMasukByTanggal(tanggal string) (int64, error)
	CountByTanggal(tanggal string) (int64, error)
}

type presensiRepository struct {
	db *gorm.DB
}

func NewPresensiRepository(db *gorm.DB) PresensiRepository {
	return &presensiRepository{db}
}

func (r *presensiRepository) Create(presensi *model.Presensi) error {
	return r.db.Create(presensi).Error
}

func (r *presensiRepository) GetTerakhirHarian(pegawaiID uint, tanggal string) (*model.Presensi, error) {
	var presensi model.Presensi
	err := r.db.Where("pegawai_id = ? AND tanggal = ? AND event_id IS NULL AND status = ?",
		pegawaiID, tanggal, model.StatusValid).
		Order("waktu desc").Order("id desc").
		First(&presensi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &presensi, nil
}

func (r *presensiRepository) GetTerakhirEvent(pegawaiID uint, eventID uint) (*model.Presensi, error) {
	var presensi model.Presensi
	err := r.db.Where("pegawai_id = ? AND event_id = ? AND status = ?",
		pegawaiID, eventID, model.StatusValid).
		Order("waktu desc").Order("id desc").
		First(&presensi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &presensi, nil
}

func (r *presensiRepository) GetRiwayat(dari, sampai string, pegawaiID uint) ([]model.Presensi, error) {
	var list []model.Presensi
	q := r.db.Where("tanggal BETWEEN ? AND ? AND status = ?", dari, sampai, model.StatusValid)
	if pegawaiID != 0 {
		q = q.Where("pegawai_id = ?", pegawaiID)
	}
	err := q.Order("waktu asc").Find(&list).Error
	return list, err
}

func (r *presensiRepository) GetByTanggal(tanggal string) ([]model.Presensi, error) {
	var list []model.Presensi
	err := r.db.Where("tanggal = ? AND status = ?", tanggal, model.StatusValid).
		Order("waktu asc").Find(&list).Error
	return list, err
}

func (r *presensiRepository) GetRekapHarian(tanggal string) (*RekapHarian, error) {
	rekap := &RekapHarian{Tanggal: tanggal}

	err := r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND aksi = ? AND status = ?", tanggal, model.AksiMasuk, model.StatusValid).
		Count(&rekap.TotalMasuk).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND aksi = ? AND status = ?", tanggal, model.AksiPulang, model.StatusValid).
		Count(&rekap.TotalPulang).Error
	if err != nil {
		return nil, err
	}

	var pertama, terakhir model.Presensi
	err = r.db.Where("tanggal = ? AND aksi = ? AND status = ?", tanggal, model.AksiMasuk, model.StatusValid).
		Order("waktu asc").First(&pertama).Error
	if err == nil {
		rekap.MasukPertama = pertama.Waktu.Format("15:04:05")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	err = r.db.Where("tanggal = ? AND aksi = ? AND status = ?", tanggal, model.AksiPulang, model.StatusValid).
		Order("waktu desc").First(&terakhir).Error
	if err == nil {
		rekap.PulangTerakhir = terakhir.Waktu.Format("15:04:05")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return rekap, nil
}

// Batalkan menandai record sebagai BATAL. Record tidak pernah dihapus;
// record BATAL tidak ikut dihitung di resolusi aksi maupun laporan.
func (r *presensiRepository) Batalkan(id uint) error {
	res := r.db.Model(&model.Presensi{}).Where("id = ?", id).
		Update("status", model.StatusBatal)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *presensiRepository) CountMasukByTanggal(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND aksi = ? AND status = ?", tanggal, model.AksiMasuk, model.StatusValid).
		Count(&count).Error
	return count, err
}

func (r *presensiRepository) CountByTanggal(tanggal string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Presensi{}).
		Where("tanggal = ? AND status = ?", tanggal, model.StatusValid).
		Count(&count).Error
	return count, err
}
