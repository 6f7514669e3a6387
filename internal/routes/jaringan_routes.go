package routes

import (
	"presensi-backend/internal/handler"
	"presensi-backend/internal/middleware"
	"presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJaringanRoutes(app *fiber.App, db *gorm.DB) {
	jaringanRepo := repository.NewJaringanRepository(db)
	hdl := handler.NewJaringanHandler(jaringanRepo)

	api := app.Group("/api/jaringan", middleware.Auth, middleware.Role("admin"))

	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Post("/:id/aktif", hdl.AturAktif)
}
