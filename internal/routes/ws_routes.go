package routes

import (
	"presensi-backend/internal/handler"
	"presensi-backend/internal/hub"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupWSRoutes(app *fiber.App, h *hub.Hub, scan *usecase.ScanUsecase) {
	hdl := handler.NewWSHandler(h, scan)

	app.Use("/ws", hdl.Upgrade)
	app.Get("/ws", hdl.Serve())
}
