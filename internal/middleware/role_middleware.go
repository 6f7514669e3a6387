package middleware

import "github.com/gofiber/fiber/v2"

// Role membatasi handler ke role tertentu. Dipasang setelah Auth, membaca
// role dari Locals yang diisi di sana; token tanpa role jatuh ke jalur
// ditolak yang sama.
func Role(diizinkan ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range diizinkan {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak punya hak akses"})
	}
}
