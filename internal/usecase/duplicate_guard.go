package usecase

import (
	"fmt"
	"sync"
	"time"

	"presensi-backend/internal/apperr"
)

// DuplicateGuard menahan scan beruntun dari pasangan (pegawai, kartu) yang
// sama. Reader fisik sering mengirim beberapa pulsa untuk satu tap, jadi
// pengecekan ini jalan murni di memori sebelum ada round-trip ke database.
type DuplicateGuard interface {
	// Periksa menolak dengan ErrScanGanda jika scan terakhir yang DITERIMA
	// masih di dalam jendela. Scan yang ditolak tidak menggeser jendela.
	Periksa(pegawaiID uint, kartuID string) error
}

type memoryGuard struct {
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	terakhir map[string]time.Time
}

func NewDuplicateGuard(window time.Duration) *memoryGuard {
	if window <= 0 {
		window = 5 * time.Second
	}
	return &memoryGuard{
		window:   window,
		now:      time.Now,
		terakhir: make(map[string]time.Time),
	}
}

func (g *memoryGuard) Periksa(pegawaiID uint, kartuID string) error {
	key := fmt.Sprintf("%d:%s", pegawaiID, kartuID)
	now := g.now()

	g.mu.Lock()
	defer g.mu.Unlock()

	if last, ok := g.terakhir[key]; ok && now.Sub(last) < g.window {
		return apperr.ErrScanGanda
	}
	g.terakhir[key] = now
	return nil
}

// Bersihkan membuang entri yang lebih tua dari maxUmur agar map tidak
// tumbuh tanpa batas. Dipanggil periodik lewat MulaiPembersih.
func (g *memoryGuard) Bersihkan(maxUmur time.Duration) {
	batas := g.now().Add(-maxUmur)

	g.mu.Lock()
	defer g.mu.Unlock()

	for key, last := range g.terakhir {
		if last.Before(batas) {
			delete(g.terakhir, key)
		}
	}
}

// MulaiPembersih menjalankan pembersihan tiap interval di goroutine sendiri.
// Fungsi yang dikembalikan menghentikannya.
func (g *memoryGuard) MulaiPembersih(interval, maxUmur time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				g.Bersihkan(maxUmur)
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}
