package handler

import (
	"strconv"

	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type JaringanHandler struct {
	repo repository.JaringanRepository
}

func NewJaringanHandler(repo repository.JaringanRepository) *JaringanHandler {
	return &JaringanHandler{repo: repo}
}

func (h *JaringanHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Gateway    string `json:"gateway"`
		NamaWifi   string `json:"nama_wifi"`
		Keterangan string `json:"keterangan"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if req.Gateway == "" && req.NamaWifi == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Gateway atau nama wifi wajib diisi"})
	}

	jaringan := model.Jaringan{
		Gateway:    req.Gateway,
		NamaWifi:   req.NamaWifi,
		Keterangan: req.Keterangan,
		Aktif:      true,
	}
	if err := h.repo.Create(&jaringan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jaringan"})
	}

	return c.JSON(fiber.Map{"message": "Jaringan berhasil ditambahkan", "data": jaringan})
}

func (h *JaringanHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jaringan"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data jaringan", "data": list})
}

// AturAktif menyalakan/mematikan satu entri allow-list tanpa menghapusnya.
func (h *JaringanHandler) AturAktif(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req struct {
		Aktif bool `json:"aktif"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	jaringan, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jaringan tidak ditemukan"})
	}

	jaringan.Aktif = req.Aktif
	if err := h.repo.Save(jaringan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jaringan"})
	}

	return c.JSON(fiber.Map{"message": "Jaringan berhasil diperbarui", "data": jaringan})
}
