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

type PresensiHandler struct {
	scan *usecase.ScanUsecase
	repo repository.PresensiRepository
}

func NewPresensiHandler(scan *usecase.ScanUsecase, repo repository.PresensiRepository) *PresensiHandler {
	return &PresensiHandler{scan: scan, repo: repo}
}

type ScanRequest struct {
	KartuID    string `json:"kartu_id"`
	EventID    *uint  `json:"event_id"`
	Checkpoint string `json:"checkpoint"`
	Gateway    string `json:"gateway"`
	NamaWifi   string `json:"nama_wifi"`
	Keterangan string `json:"keterangan"`
}

// Scan menerima tap kartu dari bridge hardware maupun input manual.
// Aksi (MASUK/PULANG) ditentukan dari record terakhir di scope.
func (h *PresensiHandler) Scan(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	return h.proses(c, req, "")
}

// CheckIn memaksa aksi MASUK (dipakai halaman khusus check-in).
func (h *PresensiHandler) CheckIn(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	return h.proses(c, req, model.AksiMasuk)
}

// CheckOut memaksa aksi PULANG; tetap ditolak kalau belum pernah masuk.
func (h *PresensiHandler) CheckOut(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	return h.proses(c, req, model.AksiPulang)
}

func (h *PresensiHandler) proses(c *fiber.Ctx, req ScanRequest, paksa string) error {
	hasil, err := h.scan.Proses(usecase.ScanInput{
		KartuID:    req.KartuID,
		EventID:    req.EventID,
		Checkpoint: req.Checkpoint,
		Sinyal: usecase.SinyalJaringan{
			Gateway:  req.Gateway,
			IPKlien:  c.IP(), // alamat klien yang teramati, bukan yang diklaim
			NamaWifi: req.NamaWifi,
		},
		Keterangan: req.Keterangan,
		PaksaAksi:  paksa,
	})
	if err != nil {
		return balasError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Presensi " + hasil.Presensi.Aksi + " berhasil",
		"aksi":    hasil.Presensi.Aksi,
		"waktu":   hasil.Presensi.Waktu.Format("15:04:05"),
		"sinyal":  hasil.Sinyal,
		"data":    hasil.Presensi,
		"pegawai": hasil.Pegawai,
	})
}

func (h *PresensiHandler) Riwayat(c *fiber.Ctx) error {
	today := time.Now().In(config.Timezone()).Format("2006-01-02")
	dari := c.Query("dari", today)
	sampai := c.Query("sampai", dari)

	var pegawaiID uint
	if v := c.Query("pegawai_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pegawai_id tidak valid"})
		}
		pegawaiID = uint(id)
	}

	riwayat, err := h.repo.GetRiwayat(dari, sampai, pegawaiID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data riwayat"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat",
		"data":    riwayat,
	})
}

func (h *PresensiHandler) Rekap(c *fiber.Ctx) error {
	tanggal := c.Query("tanggal", time.Now().In(config.Timezone()).Format("2006-01-02"))

	rekap, err := h.repo.GetRekapHarian(tanggal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data rekap"})
	}

	return c.JSON(fiber.Map{
		"message": "Rekap berhasil",
		"data":    rekap,
	})
}

// Batalkan menandai satu record presensi sebagai BATAL (hanya admin).
// Record tidak dihapus, hanya dikecualikan dari resolusi dan laporan.
func (h *PresensiHandler) Batalkan(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.Batalkan(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record presensi tidak ditemukan"})
	}

	return c.JSON(fiber.Map{"message": "Presensi berhasil dibatalkan"})
}
