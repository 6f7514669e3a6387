package handler

import (
	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PegawaiHandler struct {
	repo repository.PegawaiRepository
}

func NewPegawaiHandler(repo repository.PegawaiRepository) *PegawaiHandler {
	return &PegawaiHandler{repo: repo}
}

// Create mendaftarkan pegawai beserta kartunya. Nomor kartu dinormalisasi
// dengan aturan yang sama seperti jalur scan supaya pasti ketemu lagi.
func (h *PegawaiHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Nama    string `json:"nama"`
		NIP     string `json:"nip"`
		KartuID string `json:"kartu_id"`
		Telepon string `json:"telepon"`
	}
	if err := c.BodyParser(&req); err != nil || req.Nama == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama pegawai wajib diisi"})
	}

	kartuID, err := usecase.NormalizeKartuID(req.KartuID)
	if err != nil {
		return balasError(c, err)
	}

	pegawai := model.Pegawai{
		Nama:    req.Nama,
		NIP:     req.NIP,
		KartuID: kartuID,
		Telepon: req.Telepon,
		Aktif:   true,
	}
	if err := h.repo.Create(&pegawai); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pegawai (kartu mungkin sudah terpakai)"})
	}

	return c.JSON(fiber.Map{"message": "Pegawai berhasil didaftarkan", "data": pegawai})
}

func (h *PegawaiHandler) List(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pegawai"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data pegawai", "data": list})
}
