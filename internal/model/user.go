package model

import "gorm.io/gorm"

// User adalah akun operator/admin untuk halaman pengelolaan.
// Pegawai yang hanya scan kartu tidak butuh akun.
type User struct {
	gorm.Model
	Nama     string `json:"nama"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role"` // admin / petugas
}
