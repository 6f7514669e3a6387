package usecase

import (
	"strings"

	"presensi-backend/internal/apperr"
)

const (
	kartuLebarMin = 8
	kartuLebarMax = 12
)

// NormalizeKartuID membakukan input mentah dari reader maupun ketikan manual
// menjadi nomor kartu kanonik: buang semua non-digit, lalu pad kiri dengan nol
// sampai 8 digit. Input kosong atau hasil di luar 8-12 digit ditolak.
func NormalizeKartuID(raw string) (string, error) {
	var b strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	digits := b.String()
	if digits == "" {
		return "", apperr.ErrKartuTidakValid
	}
	if len(digits) < kartuLebarMin {
		digits = strings.Repeat("0", kartuLebarMin-len(digits)) + digits
	}
	if len(digits) > kartuLebarMax {
		return "", apperr.ErrKartuTidakValid
	}
	return digits, nil
}
