package model

import "gorm.io/gorm"

// Jaringan adalah satu entri allow-list jaringan kantor.
// Gateway boleh berupa CIDR ("192.168.10.0/24") atau IP tunggal.
type Jaringan struct {
	gorm.Model
	Gateway    string `json:"gateway"`
	NamaWifi   string `json:"nama_wifi"`
	Keterangan string `json:"keterangan"`
	Aktif      bool   `json:"aktif" gorm:"default:true"`
}
