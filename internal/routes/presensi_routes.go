package routes

import (
	"presensi-backend/internal/handler"
	"presensi-backend/internal/middleware"
	"presensi-backend/internal/repository"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPresensiRoutes(app *fiber.App, db *gorm.DB, scan *usecase.ScanUsecase) {
	presensiRepo := repository.NewPresensiRepository(db)
	hdl := handler.NewPresensiHandler(scan, presensiRepo)

	// Endpoint scan dipakai bridge hardware, tidak pakai token;
	// penjaganya adalah gate jaringan + penahan scan ganda.
	api := app.Group("/api/presensi")

	api.Post("/scan", hdl.Scan)
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)

	api.Get("/riwayat", middleware.Auth, hdl.Riwayat)
	api.Get("/rekap", middleware.Auth, hdl.Rekap)
	api.Post("/:id/batal", middleware.Auth, middleware.Role("admin"), hdl.Batalkan)
}
