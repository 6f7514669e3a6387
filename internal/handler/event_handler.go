package handler

import (
	"strconv"
	"time"

	"presensi-backend/config"
	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"
	"presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type EventHandler struct {
	checkpoint *usecase.CheckpointUsecase
	eventRepo  repository.EventRepository
}

func NewEventHandler(checkpoint *usecase.CheckpointUsecase, eventRepo repository.EventRepository) *EventHandler {
	return &EventHandler{checkpoint: checkpoint, eventRepo: eventRepo}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Nama       string `json:"nama"`
		Keterangan string `json:"keterangan"`
		Tanggal    string `json:"tanggal"`
	}
	if err := c.BodyParser(&req); err != nil || req.Nama == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nama event wajib diisi"})
	}

	if req.Tanggal == "" {
		req.Tanggal = time.Now().In(config.Timezone()).Format("2006-01-02")
	}

	event := model.Event{
		Nama:       req.Nama,
		Keterangan: req.Keterangan,
		Tanggal:    req.Tanggal,
		Aktif:      true,
	}
	if err := h.eventRepo.Create(&event); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan event"})
	}

	return c.JSON(fiber.Map{"message": "Event berhasil dibuat", "data": event})
}

func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.eventRepo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data event"})
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil event", "data": events})
}

// CreateCheckpoint menambah pos kehadiran baru di sebuah event (atau
// mengaktifkan lagi pos lama dengan nama sama), tanpa migrasi skema.
func (h *EventHandler) CreateCheckpoint(c *fiber.Ctx) error {
	eventID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID event tidak valid"})
	}

	var req struct {
		Nama   string `json:"nama"`
		Tipe   string `json:"tipe"`
		Urutan int    `json:"urutan"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	checkpoint, err := h.checkpoint.Buat(uint(eventID), req.Nama, req.Tipe, req.Urutan)
	if err != nil {
		return balasError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Checkpoint berhasil disimpan", "data": checkpoint})
}

func (h *EventHandler) NonaktifkanCheckpoint(c *fiber.Ctx) error {
	return h.aturCheckpoint(c, false)
}

func (h *EventHandler) AktifkanCheckpoint(c *fiber.Ctx) error {
	return h.aturCheckpoint(c, true)
}

func (h *EventHandler) aturCheckpoint(c *fiber.Ctx, aktif bool) error {
	eventID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID event tidak valid"})
	}

	checkpoint, err := h.checkpoint.AturAktif(uint(eventID), c.Params("nama"), aktif)
	if err != nil {
		return balasError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Checkpoint berhasil diperbarui", "data": checkpoint})
}

// DaftarPeserta mendaftarkan pegawai ke event lebih dulu (pra-registrasi).
func (h *EventHandler) DaftarPeserta(c *fiber.Ctx) error {
	eventID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID event tidak valid"})
	}

	var req struct {
		PegawaiID uint   `json:"pegawai_id"`
		Nama      string `json:"nama"`
		Telepon   string `json:"telepon"`
	}
	if err := c.BodyParser(&req); err != nil || req.PegawaiID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pegawai_id wajib diisi"})
	}

	peserta, err := h.checkpoint.DaftarPeserta(uint(eventID), req.PegawaiID, req.Nama, req.Telepon)
	if err != nil {
		return balasError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Peserta berhasil didaftarkan", "data": peserta})
}

// ScanCheckpoint mencatat kehadiran peserta di satu pos. Identitas boleh dari
// kartu, payload QR, atau nomor yang diketik petugas.
func (h *EventHandler) ScanCheckpoint(c *fiber.Ctx) error {
	eventID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID event tidak valid"})
	}

	var req struct {
		Checkpoint string `json:"checkpoint"`
		KartuID    string `json:"kartu_id"`
		QR         string `json:"qr"`
		Nomor      string `json:"nomor"`
		Nama       string `json:"nama"`
		Telepon    string `json:"telepon"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}

	// Tiga jalur identitas menuju nomor kartu yang sama
	kartuID := req.KartuID
	if kartuID == "" {
		kartuID = req.QR
	}
	if kartuID == "" {
		kartuID = req.Nomor
	}

	hasil, err := h.checkpoint.Scan(usecase.CheckpointScanInput{
		EventID:    uint(eventID),
		Checkpoint: req.Checkpoint,
		KartuID:    kartuID,
		Nama:       req.Nama,
		Telepon:    req.Telepon,
	})
	if err != nil {
		return balasError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Kehadiran di " + hasil.Checkpoint + " tercatat",
		"peserta_id": hasil.Peserta.ID,
		"checkpoint": hasil.Checkpoint,
		"waktu":      hasil.Log.Waktu.Format("15:04:05"),
		"data":       hasil.Log,
	})
}

// Matrix mengembalikan tabel kehadiran: kolom checkpoint aktif terurut,
// satu baris per peserta dengan timestamp terakhir per pos.
func (h *EventHandler) Matrix(c *fiber.Ctx) error {
	eventID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID event tidak valid"})
	}

	matrix, err := h.checkpoint.Matrix(uint(eventID))
	if err != nil {
		return balasError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Berhasil mengambil matriks kehadiran", "data": matrix})
}
