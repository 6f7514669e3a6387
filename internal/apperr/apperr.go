// Package apperr berisi daftar error bisnis dengan kode mesin yang stabil.
// Pesan ditampilkan apa adanya ke klien, kode dipakai aplikasi/bridge hardware.
package apperr

import "github.com/gofiber/fiber/v2"

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Status  int         `json:"-"`
	Detail  interface{} `json:"detail,omitempty"`
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Is menyamakan error berdasarkan kode, supaya salinan hasil WithDetail
// tetap cocok dengan errors.Is terhadap nilai aslinya.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithDetail mengembalikan salinan error dengan data diagnostik tambahan,
// value aslinya tidak pernah diubah.
func (e *Error) WithDetail(detail interface{}) *Error {
	clone := *e
	clone.Detail = detail
	return &clone
}

var (
	ErrKartuTidakValid = &Error{
		Code:    "KARTU_TIDAK_VALID",
		Message: "Nomor kartu tidak valid",
		Status:  fiber.StatusBadRequest,
	}
	ErrKartuBelumTerdaftar = &Error{
		Code:    "KARTU_BELUM_TERDAFTAR",
		Message: "Kartu belum terdaftar atas nama pegawai manapun",
		Status:  fiber.StatusNotFound,
	}
	ErrAksesJaringanDitolak = &Error{
		Code:    "AKSES_JARINGAN_DITOLAK",
		Message: "Presensi hanya bisa dilakukan dari jaringan kantor",
		Status:  fiber.StatusForbidden,
	}
	ErrScanGanda = &Error{
		Code:    "SCAN_GANDA",
		Message: "Scan ganda terdeteksi, coba lagi beberapa detik kemudian",
		Status:  fiber.StatusTooManyRequests,
	}
	ErrBelumMasuk = &Error{
		Code:    "BELUM_MASUK",
		Message: "Anda belum melakukan presensi masuk",
		Status:  fiber.StatusBadRequest,
	}
	ErrSudahPulang = &Error{
		Code:    "SUDAH_PULANG",
		Message: "Anda sudah melakukan presensi pulang",
		Status:  fiber.StatusBadRequest,
	}
	ErrEventTidakDitemukan = &Error{
		Code:    "EVENT_TIDAK_DITEMUKAN",
		Message: "Event tidak ditemukan",
		Status:  fiber.StatusNotFound,
	}
	ErrCheckpointTidakDitemukan = &Error{
		Code:    "CHECKPOINT_TIDAK_DITEMUKAN",
		Message: "Checkpoint tidak ditemukan atau sudah nonaktif",
		Status:  fiber.StatusNotFound,
	}
	ErrNamaCheckpointTidakValid = &Error{
		Code:    "NAMA_CHECKPOINT_TIDAK_VALID",
		Message: "Nama checkpoint hanya boleh huruf, angka, dan underscore",
		Status:  fiber.StatusBadRequest,
	}
	ErrTipeCheckpointTidakValid = &Error{
		Code:    "TIPE_CHECKPOINT_TIDAK_VALID",
		Message: "Tipe checkpoint harus MASUK atau PULANG",
		Status:  fiber.StatusBadRequest,
	}
	ErrPesertaTidakLengkap = &Error{
		Code:    "PESERTA_TIDAK_LENGKAP",
		Message: "Peserta belum terdaftar, nama wajib diisi untuk pendaftaran di tempat",
		Status:  fiber.StatusBadRequest,
	}
	ErrGagalSimpan = &Error{
		Code:    "GAGAL_SIMPAN",
		Message: "Gagal menyimpan data, coba beberapa saat lagi",
		Status:  fiber.StatusInternalServerError,
	}
)
