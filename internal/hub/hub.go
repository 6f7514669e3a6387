// Package hub menangani registrasi koneksi realtime dan fan-out event
// presensi ke semua dashboard yang sedang terhubung.
package hub

import (
	"fmt"
	"log"
	"sync"
	"time"

	"presensi-backend/internal/model"
)

const (
	GrupUmum    = "umum"
	GrupPetugas = "petugas"

	TipePresensi   = "presensi"
	TipeCheckpoint = "checkpoint"
	TipeRingkasan  = "ringkasan"
	TipeStatus     = "status"
)

// Pesan adalah satu frame yang dikirim ke koneksi.
type Pesan struct {
	Tipe string      `json:"tipe"`
	Data interface{} `json:"data,omitempty"`
}

// Conn adalah sisi kirim sebuah koneksi realtime. Kirim harus non-blocking:
// kembalikan false kalau buffer koneksi penuh, hub tidak akan menunggu.
type Conn interface {
	ID() string
	Kirim(pesan Pesan) bool
}

type anggota struct {
	conn   Conn
	userID uint
	role   string
	grup   map[string]bool
}

// Hub menyimpan daftar koneksi dan menyalurkan pesan lewat antrian internal,
// sehingga jalur tulis presensi tidak pernah menunggu koneksi yang lambat.
type Hub struct {
	mu      sync.Mutex
	anggota map[string]*anggota
	antrian chan tugas
}

type tugas struct {
	pesan Pesan
	grup  string // kosong = semua koneksi
}

func NewHub() *Hub {
	return &Hub{
		anggota: make(map[string]*anggota),
		antrian: make(chan tugas, 256),
	}
}

// Jalankan memproses antrian siaran. Biasanya dipanggil sebagai goroutine.
func (h *Hub) Jalankan() {
	for t := range h.antrian {
		h.kirimKe(t)
	}
}

func (h *Hub) kirimKe(t tugas) {
	h.mu.Lock()
	tujuan := make([]*anggota, 0, len(h.anggota))
	for _, a := range h.anggota {
		if t.grup == "" || a.grup[t.grup] {
			tujuan = append(tujuan, a)
		}
	}
	h.mu.Unlock()

	for _, a := range tujuan {
		if !a.conn.Kirim(t.pesan) {
			log.Printf("hub: buffer koneksi %s penuh, pesan %s dilewati", a.conn.ID(), t.pesan.Tipe)
		}
	}
}

// Daftar mendaftarkan koneksi baru. Koneksi anonim hanya menerima siaran umum.
func (h *Hub) Daftar(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.anggota[c.ID()] = &anggota{conn: c, grup: map[string]bool{GrupUmum: true}}
}

func (h *Hub) Keluar(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.anggota, id)
}

// Identifikasi melekatkan identitas user/role ke koneksi. Identitas menentukan
// apakah koneksi boleh bergabung ke grup petugas.
func (h *Hub) Identifikasi(id string, userID uint, role string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if a, ok := h.anggota[id]; ok {
		a.userID = userID
		a.role = role
	}
}

// Gabung memasukkan koneksi ke sebuah grup siaran. Grup petugas hanya untuk
// koneksi yang sudah teridentifikasi sebagai admin/petugas.
func (h *Hub) Gabung(id string, grup string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	a, ok := h.anggota[id]
	if !ok {
		return false
	}
	if grup == GrupPetugas && a.role != "admin" && a.role != "petugas" {
		return false
	}
	a.grup[grup] = true
	return true
}

func (h *Hub) JumlahKoneksi() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.anggota)
}

// antri memasukkan tugas siaran tanpa menunggu; kalau antrian penuh pesan
// dibuang dan hanya dicatat, jalur tulis tidak boleh ikut melambat.
func (h *Hub) antri(t tugas) {
	select {
	case h.antrian <- t:
	default:
		log.Printf("hub: antrian siaran penuh, pesan %s dibuang", t.pesan.Tipe)
	}
}

// PublikasiPresensi menyiarkan record presensi ke semua koneksi, plus
// ringkasan terbaca-manusia khusus grup petugas.
func (h *Hub) PublikasiPresensi(p *model.Presensi, pegawai *model.Pegawai) {
	h.antri(tugas{pesan: Pesan{Tipe: TipePresensi, Data: p}})

	nama := p.KartuID
	if pegawai != nil {
		nama = pegawai.Nama
	}
	aksi := "masuk"
	if p.Aksi == model.AksiPulang {
		aksi = "pulang"
	}
	h.antri(tugas{
		grup: GrupPetugas,
		pesan: Pesan{
			Tipe: TipeRingkasan,
			Data: fmt.Sprintf("%s presensi %s pukul %s", nama, aksi, p.Waktu.Format("15:04:05")),
		},
	})
}

// PublikasiCheckpoint menyiarkan log checkpoint event.
func (h *Hub) PublikasiCheckpoint(logRow *model.CheckpointLog, peserta *model.Peserta) {
	h.antri(tugas{pesan: Pesan{Tipe: TipeCheckpoint, Data: logRow}})

	nama := fmt.Sprintf("Peserta #%d", logRow.PegawaiID)
	if peserta != nil && peserta.Nama != "" {
		nama = peserta.Nama
	}
	h.antri(tugas{
		grup: GrupPetugas,
		pesan: Pesan{
			Tipe: TipeRingkasan,
			Data: fmt.Sprintf("%s hadir di %s pukul %s", nama, logRow.Checkpoint, logRow.Waktu.Format("15:04:05")),
		},
	})
}

// PublikasiStatus menyiarkan snapshot status sistem (dipanggil periodik).
func (h *Hub) PublikasiStatus(data interface{}) {
	h.antri(tugas{pesan: Pesan{Tipe: TipeStatus, Data: data}})
}

// StatusSnapshot adalah payload siaran status periodik.
type StatusSnapshot struct {
	Waktu        time.Time `json:"waktu"`
	Koneksi      int       `json:"koneksi"`
	HadirHariIni int64     `json:"hadir_hari_ini"`
	ScanHariIni  int64     `json:"scan_hari_ini"`
}
