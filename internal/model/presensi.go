package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AksiMasuk  = "MASUK"
	AksiPulang = "PULANG"

	StatusValid = "VALID"
	StatusBatal = "BATAL"
)

type Presensi struct {
	gorm.Model
	PegawaiID uint   `json:"pegawai_id" gorm:"index"`
	KartuID   string `json:"kartu_id"`

	Waktu   time.Time `json:"waktu"`
	Tanggal string    `json:"tanggal" gorm:"index"` // Turunan dari Waktu, format 2006-01-02
	Aksi    string    `json:"aksi"`                 // MASUK / PULANG

	// Untuk presensi event (bukan presensi harian biasa)
	EventID    *uint  `json:"event_id" gorm:"index"`
	Checkpoint string `json:"checkpoint"`

	// Jejak jaringan asal scan (audit)
	IPKlien      string `json:"ip_klien"`
	IPGateway    string `json:"ip_gateway"`
	NamaJaringan string `json:"nama_jaringan"`

	Keterangan string `json:"keterangan"`
	Status     string `json:"status"` // VALID / BATAL
}
