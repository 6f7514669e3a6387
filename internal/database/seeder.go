package database

import (
	"log"
	"presensi-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed Akun Admin Pertama
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := model.User{
		Nama:     "Administrator Utama",
		Username: "admin",
		Password: string(hashedPassword),
		Role:     "admin",
	}
	db.FirstOrCreate(&admin, model.User{Username: admin.Username})

	// 2. Seed Jaringan Kantor (allow-list)
	jaringans := []model.Jaringan{
		{Gateway: "192.168.10.0/24", NamaWifi: "KANTOR-WIFI", Keterangan: "WiFi lantai 1", Aktif: true},
		{Gateway: "10.10.0.1", NamaWifi: "KANTOR-WIFI-5G", Keterangan: "WiFi lantai 2", Aktif: true},
	}
	for _, j := range jaringans {
		db.FirstOrCreate(&j, model.Jaringan{Gateway: j.Gateway})
	}

	// 3. Seed Pegawai Contoh (kartu 10 digit)
	pegawais := []model.Pegawai{
		{Nama: "Budi Santoso", NIP: "198501012010011001", KartuID: "0001234567", Aktif: true},
		{Nama: "Siti Aminah", NIP: "199003152015032002", KartuID: "0001234568", Aktif: true},
	}
	for _, p := range pegawais {
		db.FirstOrCreate(&p, model.Pegawai{KartuID: p.KartuID})
	}

	// 4. Seed Event Demo + Checkpoint
	event := model.Event{Nama: "Rapat Koordinasi Tahunan", Tanggal: "2026-09-15", Aktif: true}
	db.FirstOrCreate(&event, model.Event{Nama: event.Nama})

	checkpoints := []model.Checkpoint{
		{EventID: event.ID, Nama: "REGISTRASI", Tipe: model.AksiMasuk, Urutan: 1, Aktif: true},
		{EventID: event.ID, Nama: "SESI_1", Tipe: model.AksiMasuk, Urutan: 2, Aktif: true},
		{EventID: event.ID, Nama: "PULANG", Tipe: model.AksiPulang, Urutan: 3, Aktif: true},
	}
	for _, cp := range checkpoints {
		db.FirstOrCreate(&cp, model.Checkpoint{EventID: cp.EventID, Nama: cp.Nama})
	}

	log.Println("Seeding selesai: admin, jaringan, pegawai contoh, event demo")
}
