package usecase

import (
	"log"
	"net"
	"sync"
	"time"

	"presensi-backend/internal/apperr"
	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"
)

// SinyalJaringan adalah tiga sinyal asal scan yang dilaporkan klien.
// Semuanya opsional; satu saja yang cocok dengan allow-list sudah cukup.
type SinyalJaringan struct {
	Gateway  string `json:"gateway"`
	IPKlien  string `json:"ip_klien"`
	NamaWifi string `json:"nama_wifi"`
}

type HasilGate struct {
	Lolos  bool   `json:"lolos"`
	Sinyal string `json:"sinyal"` // gateway / ip_klien / nama_wifi / nonaktif
}

type NetworkGate struct {
	repo    repository.JaringanRepository
	enabled bool
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	cache    []model.Jaringan
	cachedAt time.Time
}

func NewNetworkGate(repo repository.JaringanRepository, enabled bool) *NetworkGate {
	return &NetworkGate{
		repo:    repo,
		enabled: enabled,
		ttl:     5 * time.Second,
		now:     time.Now,
	}
}

// Periksa mengevaluasi sinyal terhadap allow-list. Kontrak:
//   - satu sinyal cocok = lolos (OR, bukan AND)
//   - tidak ada sinyal sama sekali = ditolak (selama pengecekan aktif)
//   - gagal baca allow-list dari store = LOLOS, hanya dicatat di log,
//     supaya gangguan infrastruktur tidak memblokir presensi
func (g *NetworkGate) Periksa(sinyal SinyalJaringan) (*HasilGate, error) {
	if !g.enabled {
		return &HasilGate{Lolos: true, Sinyal: "nonaktif"}, nil
	}

	daftar, err := g.ambilDaftar()
	if err != nil {
		log.Printf("NetworkGate: gagal baca allow-list, scan diloloskan: %v", err)
		return &HasilGate{Lolos: true, Sinyal: "fail-open"}, nil
	}

	for _, j := range daftar {
		if sinyal.Gateway != "" && cocokAlamat(sinyal.Gateway, j.Gateway) {
			return &HasilGate{Lolos: true, Sinyal: "gateway"}, nil
		}
		if sinyal.IPKlien != "" && cocokAlamat(sinyal.IPKlien, j.Gateway) {
			return &HasilGate{Lolos: true, Sinyal: "ip_klien"}, nil
		}
		if sinyal.NamaWifi != "" && j.NamaWifi != "" && sinyal.NamaWifi == j.NamaWifi {
			return &HasilGate{Lolos: true, Sinyal: "nama_wifi"}, nil
		}
	}

	return nil, apperr.ErrAksesJaringanDitolak.WithDetail(sinyal)
}

// ambilDaftar membaca allow-list lewat cache ber-TTL pendek; basi beberapa
// detik masih dapat diterima untuk daftar jaringan kantor.
func (g *NetworkGate) ambilDaftar() ([]model.Jaringan, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cache != nil && g.now().Sub(g.cachedAt) < g.ttl {
		return g.cache, nil
	}
	daftar, err := g.repo.GetAktif()
	if err != nil {
		return nil, err
	}
	g.cache = daftar
	g.cachedAt = g.now()
	return daftar, nil
}

// cocokAlamat membandingkan alamat klien dengan satu entri allow-list.
// Entri boleh CIDR ("10.10.0.0/16") atau IP tunggal.
func cocokAlamat(alamat, entri string) bool {
	if entri == "" {
		return false
	}
	ip := net.ParseIP(alamat)
	if ip == nil {
		return false
	}
	if _, jaring, err := net.ParseCIDR(entri); err == nil {
		return jaring.Contains(ip)
	}
	if entriIP := net.ParseIP(entri); entriIP != nil {
		return entriIP.Equal(ip)
	}
	return false
}
