package routes

import (
	"presensi-backend/internal/handler"
	"presensi-backend/internal/middleware"
	"presensi-backend/internal/repository"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	userUsecase := usecase.NewUserUsecase(userRepo)
	hdl := handler.NewUserHandler(userUsecase)

	api := app.Group("/api/user")

	api.Post("/login", hdl.Login)
	api.Post("/register", middleware.Auth, middleware.Role("admin"), hdl.Register)
}
