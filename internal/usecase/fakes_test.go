package usecase

import (
	"errors"
	"sort"
	"sync"
	"time"

	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"
)

// Repositori palsu di memori untuk menguji usecase tanpa database.

type fakePresensiRepo struct {
	mu      sync.Mutex
	rows    []model.Presensi
	nextID  uint
	failing bool
}

func newFakePresensiRepo() *fakePresensiRepo {
	return &fakePresensiRepo{nextID: 1}
}

func (r *fakePresensiRepo) Create(p *model.Presensi) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("db down")
	}
	p.ID = r.nextID
	r.nextID++
	r.rows = append(r.rows, *p)
	return nil
}

func (r *fakePresensiRepo) GetTerakhirHarian(pegawaiID uint, tanggal string) (*model.Presensi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.rows) - 1; i >= 0; i-- {
		row := r.rows[i]
		if row.PegawaiID == pegawaiID && row.Tanggal == tanggal &&
			row.EventID == nil && row.Status == model.StatusValid {
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakePresensiRepo) GetTerakhirEvent(pegawaiID uint, eventID uint) (*model.Presensi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.rows) - 1; i >= 0; i-- {
		row := r.rows[i]
		if row.PegawaiID == pegawaiID && row.EventID != nil &&
			*row.EventID == eventID && row.Status == model.StatusValid {
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakePresensiRepo) GetRiwayat(dari, sampai string, pegawaiID uint) ([]model.Presensi, error) {
	return nil, nil
}
func (r *fakePresensiRepo) GetByTanggal(tanggal string) ([]model.Presensi, error) { return nil, nil }
func (r *fakePresensiRepo) GetRekapHarian(tanggal string) (*repository.RekapHarian, error) {
	return &repository.RekapHarian{Tanggal: tanggal}, nil
}
func (r *fakePresensiRepo) Batalkan(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Status = model.StatusBatal
			return nil
		}
	}
	return errors.New("tidak ditemukan")
}
func (r *fakePresensiRepo) CountMasukByTanggal(tanggal string) (int64, error) { return 0, nil }
func (r *fakePresensiRepo) CountByTanggal(tanggal string) (int64, error)      { return 0, nil }

func (r *fakePresensiRepo) semua() []model.Presensi {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Presensi, len(r.rows))
	copy(out, r.rows)
	return out
}

type fakePegawaiRepo struct {
	byKartu map[string]*model.Pegawai
}

func newFakePegawaiRepo(pegawais ...*model.Pegawai) *fakePegawaiRepo {
	r := &fakePegawaiRepo{byKartu: make(map[string]*model.Pegawai)}
	for _, p := range pegawais {
		r.byKartu[p.KartuID] = p
	}
	return r
}

func (r *fakePegawaiRepo) Create(p *model.Pegawai) error {
	r.byKartu[p.KartuID] = p
	return nil
}
func (r *fakePegawaiRepo) GetByID(id uint) (*model.Pegawai, error) {
	for _, p := range r.byKartu {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, errors.New("tidak ditemukan")
}
func (r *fakePegawaiRepo) GetByKartuID(kartuID string) (*model.Pegawai, error) {
	return r.byKartu[kartuID], nil
}
func (r *fakePegawaiRepo) GetAll() ([]model.Pegawai, error) { return nil, nil }

type fakeEventRepo struct {
	byID map[uint]*model.Event
}

func newFakeEventRepo(events ...*model.Event) *fakeEventRepo {
	r := &fakeEventRepo{byID: make(map[uint]*model.Event)}
	for _, e := range events {
		r.byID[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(e *model.Event) error { r.byID[e.ID] = e; return nil }
func (r *fakeEventRepo) GetByID(id uint) (*model.Event, error) {
	return r.byID[id], nil
}
func (r *fakeEventRepo) GetByNama(nama string) (*model.Event, error) {
	for _, e := range r.byID {
		if e.Nama == nama {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEventRepo) GetAll() ([]model.Event, error) { return nil, nil }

type fakeJaringanRepo struct {
	rows []model.Jaringan
	err  error
}

func (r *fakeJaringanRepo) Create(j *model.Jaringan) error          { return nil }
func (r *fakeJaringanRepo) Save(j *model.Jaringan) error            { return nil }
func (r *fakeJaringanRepo) GetByID(id uint) (*model.Jaringan, error) { return nil, nil }
func (r *fakeJaringanRepo) GetAktif() ([]model.Jaringan, error)     { return r.rows, r.err }
func (r *fakeJaringanRepo) GetAll() ([]model.Jaringan, error)       { return r.rows, r.err }

type fakeCheckpointRepo struct {
	rows []*model.Checkpoint
	next uint
}

func (r *fakeCheckpointRepo) Create(cp *model.Checkpoint) error {
	r.next++
	cp.ID = r.next
	r.rows = append(r.rows, cp)
	return nil
}
func (r *fakeCheckpointRepo) Save(cp *model.Checkpoint) error { return nil }
func (r *fakeCheckpointRepo) GetByEventDanNama(eventID uint, nama string) (*model.Checkpoint, error) {
	for _, cp := range r.rows {
		if cp.EventID == eventID && cp.Nama == nama {
			return cp, nil
		}
	}
	return nil, nil
}
func (r *fakeCheckpointRepo) GetAktifByEvent(eventID uint) ([]model.Checkpoint, error) {
	var out []model.Checkpoint
	for _, cp := range r.rows {
		if cp.EventID == eventID && cp.Aktif {
			out = append(out, *cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Urutan != out[j].Urutan {
			return out[i].Urutan < out[j].Urutan
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
func (r *fakeCheckpointRepo) GetAllByEvent(eventID uint) ([]model.Checkpoint, error) {
	var out []model.Checkpoint
	for _, cp := range r.rows {
		if cp.EventID == eventID {
			out = append(out, *cp)
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	rows []model.CheckpointLog
}

func (r *fakeLogRepo) Create(l *model.CheckpointLog) error {
	l.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *l)
	return nil
}
func (r *fakeLogRepo) GetByEvent(eventID uint) ([]model.CheckpointLog, error) {
	var out []model.CheckpointLog
	for _, l := range r.rows {
		if l.EventID == eventID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakePesertaRepo struct {
	rows []*model.Peserta
}

func (r *fakePesertaRepo) Create(p *model.Peserta) error {
	p.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, p)
	return nil
}
func (r *fakePesertaRepo) GetByEventDanPegawai(eventID, pegawaiID uint) (*model.Peserta, error) {
	for _, p := range r.rows {
		if p.EventID == eventID && p.PegawaiID == pegawaiID {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePesertaRepo) GetByEvent(eventID uint) ([]model.Peserta, error) {
	var out []model.Peserta
	for _, p := range r.rows {
		if p.EventID == eventID {
			out = append(out, *p)
		}
	}
	return out, nil
}

// izinkanSemua adalah DuplicateGuard yang selalu meloloskan.
type izinkanSemua struct{}

func (izinkanSemua) Periksa(pegawaiID uint, kartuID string) error { return nil }

// siaranDiam mencatat publikasi tanpa melakukan apa-apa.
type siaranDiam struct {
	mu       sync.Mutex
	presensi int
	log      int
}

func (s *siaranDiam) PublikasiPresensi(p *model.Presensi, pegawai *model.Pegawai) {
	s.mu.Lock()
	s.presensi++
	s.mu.Unlock()
}
func (s *siaranDiam) PublikasiCheckpoint(l *model.CheckpointLog, peserta *model.Peserta) {
	s.mu.Lock()
	s.log++
	s.mu.Unlock()
}

// jamPalsu membuat clock sintetis yang bisa dimajukan manual.
type jamPalsu struct {
	mu  sync.Mutex
	now time.Time
}

func newJamPalsu(start time.Time) *jamPalsu { return &jamPalsu{now: start} }

func (j *jamPalsu) Now() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.now
}

func (j *jamPalsu) Maju(d time.Duration) {
	j.mu.Lock()
	j.now = j.now.Add(d)
	j.mu.Unlock()
}
