package model

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Nama       string `json:"nama" gorm:"unique;not null"`
	Keterangan string `json:"keterangan"`
	Tanggal    string `json:"tanggal"`
	Aktif      bool   `json:"aktif" gorm:"default:true"`
}

// Checkpoint adalah titik kehadiran bernama di dalam satu event
// (registrasi, pintu masuk, sesi 1, dst). Tipe hanya penanda tampilan,
// tidak memaksa selang-seling MASUK/PULANG.
type Checkpoint struct {
	gorm.Model
	EventID uint   `json:"event_id" gorm:"index:idx_event_nama,unique"`
	Nama    string `json:"nama" gorm:"index:idx_event_nama,unique"` // Sudah dinormalisasi
	Tipe    string `json:"tipe"`                                    // MASUK / PULANG
	Urutan  int    `json:"urutan"`                                  // Hanya untuk urutan tampilan
	Aktif   bool   `json:"aktif" gorm:"default:true"`
}

// CheckpointLog hanya mencatat kehadiran di sebuah titik, append-only.
// Boleh berulang untuk pasangan yang sama; pembacaan matriks mengambil
// timestamp terakhir (last-write-wins).
type CheckpointLog struct {
	gorm.Model
	EventID    uint      `json:"event_id" gorm:"index"`
	PegawaiID  uint      `json:"pegawai_id" gorm:"index"`
	Checkpoint string    `json:"checkpoint"`
	Waktu      time.Time `json:"waktu"`
}

type Peserta struct {
	gorm.Model
	EventID    uint      `json:"event_id" gorm:"index:idx_event_pegawai,unique"`
	PegawaiID  uint      `json:"pegawai_id" gorm:"index:idx_event_pegawai,unique"`
	Nama       string    `json:"nama"`
	Telepon    string    `json:"telepon"`
	DaftarPada time.Time `json:"daftar_pada"`
}
