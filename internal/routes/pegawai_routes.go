package routes

import (
	"presensi-backend/internal/handler"
	"presensi-backend/internal/middleware"
	"presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPegawaiRoutes(app *fiber.App, db *gorm.DB) {
	pegawaiRepo := repository.NewPegawaiRepository(db)
	hdl := handler.NewPegawaiHandler(pegawaiRepo)

	api := app.Group("/api/pegawai", middleware.Auth)

	api.Get("/", hdl.List)
	api.Post("/", middleware.Role("admin"), hdl.Create)
}
