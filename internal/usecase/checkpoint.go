package usecase

import (
	"strings"
	"time"

	"presensi-backend/internal/apperr"
	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"
)

// NormalisasiNamaCheckpoint membakukan nama checkpoint: huruf besar, spasi
// dan strip jadi underscore. Karakter lain di luar [A-Z0-9_] menandakan
// nama yang tidak valid.
func NormalisasiNamaCheckpoint(nama string) (string, error) {
	nama = strings.ToUpper(strings.TrimSpace(nama))
	nama = strings.NewReplacer(" ", "_", "-", "_").Replace(nama)
	if nama == "" {
		return "", apperr.ErrNamaCheckpointTidakValid
	}
	for _, ch := range nama {
		if (ch < 'A' || ch > 'Z') && (ch < '0' || ch > '9') && ch != '_' {
			return "", apperr.ErrNamaCheckpointTidakValid.WithDetail(nama)
		}
	}
	return nama, nil
}

// CheckpointScanInput: identitas boleh lewat kartu, payload QR, atau nomor
// yang diketik; ketiganya dinormalisasi ke nomor kartu yang sama.
type CheckpointScanInput struct {
	EventID    uint
	EventNama  string // alternatif EventID
	Checkpoint string
	KartuID    string
	// Untuk pendaftaran peserta dadakan di meja checkpoint
	Nama    string
	Telepon string
}

type CheckpointScanHasil struct {
	Peserta    *model.Peserta       `json:"peserta"`
	Log        *model.CheckpointLog `json:"log"`
	Checkpoint string               `json:"checkpoint"`
}

// MatrixBaris: satu peserta dengan timestamp terakhirnya per checkpoint
// (string kosong = belum pernah hadir di pos itu).
type MatrixBaris struct {
	PegawaiID uint              `json:"pegawai_id"`
	Nama      string            `json:"nama"`
	Telepon   string            `json:"telepon"`
	Kehadiran map[string]string `json:"kehadiran"`
}

type MatrixHasil struct {
	Event       *model.Event  `json:"event"`
	Checkpoints []string      `json:"checkpoints"`
	Baris       []MatrixBaris `json:"baris"`
}

type CheckpointUsecase struct {
	eventRepo      repository.EventRepository
	checkpointRepo repository.CheckpointRepository
	logRepo        repository.CheckpointLogRepository
	pesertaRepo    repository.PesertaRepository
	pegawaiRepo    repository.PegawaiRepository
	publisher      Publisher

	now func() time.Time
	loc *time.Location
}

func NewCheckpointUsecase(
	eventRepo repository.EventRepository,
	checkpointRepo repository.CheckpointRepository,
	logRepo repository.CheckpointLogRepository,
	pesertaRepo repository.PesertaRepository,
	pegawaiRepo repository.PegawaiRepository,
	publisher Publisher,
	loc *time.Location,
) *CheckpointUsecase {
	return &CheckpointUsecase{
		eventRepo:      eventRepo,
		checkpointRepo: checkpointRepo,
		logRepo:        logRepo,
		pesertaRepo:    pesertaRepo,
		pegawaiRepo:    pegawaiRepo,
		publisher:      publisher,
		now:            time.Now,
		loc:            loc,
	}
}

// Buat membuat checkpoint baru atau mengaktifkan lagi checkpoint lama dengan
// nama yang sama. Checkpoint tidak pernah dihapus keras selama masih dirujuk
// log, jadi "buat ulang" berarti flip flag aktif.
func (u *CheckpointUsecase) Buat(eventID uint, nama, tipe string, urutan int) (*model.Checkpoint, error) {
	event, err := u.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if event == nil {
		return nil, apperr.ErrEventTidakDitemukan
	}

	nama, err = NormalisasiNamaCheckpoint(nama)
	if err != nil {
		return nil, err
	}

	if tipe == "" {
		tipe = model.AksiMasuk
	}
	if tipe != model.AksiMasuk && tipe != model.AksiPulang {
		return nil, apperr.ErrTipeCheckpointTidakValid.WithDetail(tipe)
	}

	lama, err := u.checkpointRepo.GetByEventDanNama(eventID, nama)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if lama != nil {
		lama.Aktif = true
		lama.Tipe = tipe
		if urutan != 0 {
			lama.Urutan = urutan
		}
		if err := u.checkpointRepo.Save(lama); err != nil {
			return nil, apperr.ErrGagalSimpan
		}
		return lama, nil
	}

	baru := &model.Checkpoint{
		EventID: eventID,
		Nama:    nama,
		Tipe:    tipe,
		Urutan:  urutan,
		Aktif:   true,
	}
	if err := u.checkpointRepo.Create(baru); err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	return baru, nil
}

// AturAktif menonaktifkan/mengaktifkan checkpoint tanpa menghapus riwayat.
func (u *CheckpointUsecase) AturAktif(eventID uint, nama string, aktif bool) (*model.Checkpoint, error) {
	nama, err := NormalisasiNamaCheckpoint(nama)
	if err != nil {
		return nil, err
	}
	checkpoint, err := u.checkpointRepo.GetByEventDanNama(eventID, nama)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if checkpoint == nil {
		return nil, apperr.ErrCheckpointTidakDitemukan
	}
	checkpoint.Aktif = aktif
	if err := u.checkpointRepo.Save(checkpoint); err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	return checkpoint, nil
}

// DaftarPeserta mendaftarkan pegawai ke sebuah event. Idempoten: kalau sudah
// terdaftar, record lama yang dikembalikan.
func (u *CheckpointUsecase) DaftarPeserta(eventID, pegawaiID uint, nama, telepon string) (*model.Peserta, error) {
	event, err := u.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if event == nil {
		return nil, apperr.ErrEventTidakDitemukan
	}

	lama, err := u.pesertaRepo.GetByEventDanPegawai(eventID, pegawaiID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if lama != nil {
		return lama, nil
	}

	peserta := &model.Peserta{
		EventID:    eventID,
		PegawaiID:  pegawaiID,
		Nama:       nama,
		Telepon:    telepon,
		DaftarPada: u.now().In(u.loc),
	}
	if err := u.pesertaRepo.Create(peserta); err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	return peserta, nil
}

// Scan mencatat kehadiran di satu checkpoint. Jalur ini TIDAK memakai logika
// selang-seling MASUK/PULANG: berapa kali pun peserta scan di pos yang sama,
// log tetap ditambahkan dan pembacaan matriks mengambil yang terakhir.
func (u *CheckpointUsecase) Scan(in CheckpointScanInput) (*CheckpointScanHasil, error) {
	event, err := u.resolveEvent(in.EventID, in.EventNama)
	if err != nil {
		return nil, err
	}

	namaCheckpoint, err := NormalisasiNamaCheckpoint(in.Checkpoint)
	if err != nil {
		return nil, err
	}
	checkpoint, err := u.checkpointRepo.GetByEventDanNama(event.ID, namaCheckpoint)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if checkpoint == nil || !checkpoint.Aktif {
		return nil, apperr.ErrCheckpointTidakDitemukan.WithDetail(namaCheckpoint)
	}

	kartuID, err := NormalizeKartuID(in.KartuID)
	if err != nil {
		return nil, err
	}
	pegawai, err := u.pegawaiRepo.GetByKartuID(kartuID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if pegawai == nil {
		return nil, apperr.ErrKartuBelumTerdaftar.WithDetail(kartuID)
	}

	peserta, err := u.pesertaRepo.GetByEventDanPegawai(event.ID, pegawai.ID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if peserta == nil {
		// Pendaftaran dadakan: boleh, asal petugas menyertakan nama.
		nama := in.Nama
		if nama == "" {
			nama = pegawai.Nama
		}
		if nama == "" {
			return nil, apperr.ErrPesertaTidakLengkap
		}
		peserta = &model.Peserta{
			EventID:    event.ID,
			PegawaiID:  pegawai.ID,
			Nama:       nama,
			Telepon:    in.Telepon,
			DaftarPada: u.now().In(u.loc),
		}
		if err := u.pesertaRepo.Create(peserta); err != nil {
			return nil, apperr.ErrGagalSimpan
		}
	}

	logRow := &model.CheckpointLog{
		EventID:    event.ID,
		PegawaiID:  pegawai.ID,
		Checkpoint: namaCheckpoint,
		Waktu:      u.now().In(u.loc).Truncate(time.Second),
	}
	if err := u.logRepo.Create(logRow); err != nil {
		return nil, apperr.ErrGagalSimpan
	}

	u.publisher.PublikasiCheckpoint(logRow, peserta)

	return &CheckpointScanHasil{Peserta: peserta, Log: logRow, Checkpoint: namaCheckpoint}, nil
}

// Matrix memproyeksikan kehadiran: baris per peserta, kolom per checkpoint
// aktif (urut tampilan), isi sel = timestamp TERAKHIR peserta di pos itu.
func (u *CheckpointUsecase) Matrix(eventID uint) (*MatrixHasil, error) {
	event, err := u.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if event == nil {
		return nil, apperr.ErrEventTidakDitemukan
	}

	checkpoints, err := u.checkpointRepo.GetAktifByEvent(eventID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	pesertas, err := u.pesertaRepo.GetByEvent(eventID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	logs, err := u.logRepo.GetByEvent(eventID)
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}

	// Map[pegawai][checkpoint] = waktu terakhir (last-write-wins)
	terakhir := make(map[uint]map[string]time.Time)
	for _, l := range logs {
		baris, ok := terakhir[l.PegawaiID]
		if !ok {
			baris = make(map[string]time.Time)
			terakhir[l.PegawaiID] = baris
		}
		if l.Waktu.After(baris[l.Checkpoint]) {
			baris[l.Checkpoint] = l.Waktu
		}
	}

	namaCheckpoints := make([]string, 0, len(checkpoints))
	for _, cp := range checkpoints {
		namaCheckpoints = append(namaCheckpoints, cp.Nama)
	}

	hasil := &MatrixHasil{Event: event, Checkpoints: namaCheckpoints, Baris: []MatrixBaris{}}
	for _, p := range pesertas {
		baris := MatrixBaris{
			PegawaiID: p.PegawaiID,
			Nama:      p.Nama,
			Telepon:   p.Telepon,
			Kehadiran: make(map[string]string, len(namaCheckpoints)),
		}
		for _, nama := range namaCheckpoints {
			if w, ok := terakhir[p.PegawaiID][nama]; ok {
				baris.Kehadiran[nama] = w.Format("2006-01-02 15:04:05")
			} else {
				baris.Kehadiran[nama] = ""
			}
		}
		hasil.Baris = append(hasil.Baris, baris)
	}
	return hasil, nil
}

func (u *CheckpointUsecase) resolveEvent(id uint, nama string) (*model.Event, error) {
	var event *model.Event
	var err error
	if id != 0 {
		event, err = u.eventRepo.GetByID(id)
	} else if nama != "" {
		event, err = u.eventRepo.GetByNama(nama)
	} else {
		return nil, apperr.ErrEventTidakDitemukan
	}
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}
	if event == nil || !event.Aktif {
		return nil, apperr.ErrEventTidakDitemukan
	}
	return event, nil
}
