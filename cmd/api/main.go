package main

import (
	"fmt"
	"time"

	"presensi-backend/config"
	"presensi-backend/internal/hub"
	"presensi-backend/internal/repository"
	"presensi-backend/internal/routes"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan komponen inti...")

	loc := config.Timezone()
	db := config.DB

	presensiRepo := repository.NewPresensiRepository(db)
	pegawaiRepo := repository.NewPegawaiRepository(db)
	eventRepo := repository.NewEventRepository(db)
	jaringanRepo := repository.NewJaringanRepository(db)

	// Hub realtime: satu goroutine penyalur, jalur tulis tidak pernah menunggu
	h := hub.NewHub()
	go h.Jalankan()

	gate := usecase.NewNetworkGate(jaringanRepo, config.GetEnvAsBool("NETWORK_CHECK", true))
	guard := usecase.NewDuplicateGuard(time.Duration(config.GetEnvAsInt("DUPLICATE_WINDOW_DETIK", 5)) * time.Second)
	stopPembersih := guard.MulaiPembersih(1*time.Hour, 24*time.Hour)
	defer stopPembersih()

	scan := usecase.NewScanUsecase(presensiRepo, pegawaiRepo, eventRepo, gate, guard, h, loc)

	checkpoint := usecase.NewCheckpointUsecase(
		eventRepo,
		repository.NewCheckpointRepository(db),
		repository.NewCheckpointLogRepository(db),
		repository.NewPesertaRepository(db),
		pegawaiRepo,
		h,
		loc,
	)

	// Siaran status berkala ke semua dashboard
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for now := range ticker.C {
			tanggal := now.In(loc).Format("2006-01-02")
			hadir, _ := presensiRepo.CountMasukByTanggal(tanggal)
			total, _ := presensiRepo.CountByTanggal(tanggal)
			h.PublikasiStatus(hub.StatusSnapshot{
				Waktu:        now.In(loc),
				Koneksi:      h.JumlahKoneksi(),
				HadirHariIni: hadir,
				ScanHariIni:  total,
			})
		}
	}()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())   // Agar API bisa diakses dari domain/port lain
	app.Use(logger.New()) // Agar log request muncul di terminal (Debugging)

	routes.SetupUserRoutes(app, db)
	routes.SetupPegawaiRoutes(app, db)
	routes.SetupPresensiRoutes(app, db, scan)
	routes.SetupEventRoutes(app, db, checkpoint)
	routes.SetupJaringanRoutes(app, db)
	routes.SetupWSRoutes(app, h, scan)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
