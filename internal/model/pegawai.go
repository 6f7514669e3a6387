package model

import "gorm.io/gorm"

type Pegawai struct {
	gorm.Model
	Nama    string `json:"nama"`
	NIP     string `json:"nip" gorm:"column:nip;unique"`
	KartuID string `json:"kartu_id" gorm:"unique;not null"` // Nomor kartu hasil normalisasi
	Telepon string `json:"telepon"`
	Aktif   bool   `json:"aktif" gorm:"default:true"`
}
