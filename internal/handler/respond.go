package handler

import (
	"errors"

	"presensi-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// balasError memetakan error bisnis ke respons JSON dengan kode mesin yang
// stabil. Error lain dianggap kegagalan internal tanpa membocorkan detail.
func balasError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(fiber.Map{
			"error":  ae.Message,
			"code":   ae.Code,
			"detail": ae.Detail,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan internal"})
}
