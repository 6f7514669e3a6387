package routes

import (
	"presensi-backend/internal/handler"
	"presensi-backend/internal/middleware"
	"presensi-backend/internal/repository"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEventRoutes(app *fiber.App, db *gorm.DB, checkpoint *usecase.CheckpointUsecase) {
	eventRepo := repository.NewEventRepository(db)
	hdl := handler.NewEventHandler(checkpoint, eventRepo)

	api := app.Group("/api/event")

	// Scan checkpoint dan matriks boleh diakses petugas meja tanpa token
	api.Post("/:id/scan", hdl.ScanCheckpoint)
	api.Get("/:id/matrix", hdl.Matrix)

	// Pengelolaan event hanya untuk operator
	api.Get("/", middleware.Auth, hdl.List)
	api.Post("/", middleware.Auth, middleware.Role("admin", "petugas"), hdl.Create)
	api.Post("/:id/checkpoint", middleware.Auth, middleware.Role("admin", "petugas"), hdl.CreateCheckpoint)
	api.Post("/:id/checkpoint/:nama/nonaktif", middleware.Auth, middleware.Role("admin", "petugas"), hdl.NonaktifkanCheckpoint)
	api.Post("/:id/checkpoint/:nama/aktif", middleware.Auth, middleware.Role("admin", "petugas"), hdl.AktifkanCheckpoint)
	api.Post("/:id/peserta", middleware.Auth, middleware.Role("admin", "petugas"), hdl.DaftarPeserta)
}
