package usecase

import (
	"fmt"
	"time"

	"presensi-backend/internal/apperr"
	"presensi-backend/internal/model"
	"presensi-backend/internal/repository"
)

// Publisher menyalurkan event yang sudah tersimpan ke koneksi realtime.
// Implementasinya wajib non-blocking; kegagalan siaran tidak boleh
// membatalkan atau memperlambat penulisan.
type Publisher interface {
	PublikasiPresensi(p *model.Presensi, pegawai *model.Pegawai)
	PublikasiCheckpoint(logRow *model.CheckpointLog, peserta *model.Peserta)
}

type ScanInput struct {
	KartuID    string
	EventID    *uint  // nil = presensi harian biasa
	Checkpoint string // catatan pos asal scan event, opsional
	Sinyal     SinyalJaringan
	Keterangan string
	// PaksaAksi melewati logika selang-seling. Dipakai endpoint
	// checkin/checkout yang memang menjanjikan aksi tertentu.
	PaksaAksi string
}

type ScanHasil struct {
	Presensi *model.Presensi `json:"presensi"`
	Pegawai  *model.Pegawai  `json:"pegawai"`
	Sinyal   string          `json:"sinyal"`
}

type ScanUsecase struct {
	presensiRepo repository.PresensiRepository
	pegawaiRepo  repository.PegawaiRepository
	eventRepo    repository.EventRepository
	gate         *NetworkGate
	guard        DuplicateGuard
	publisher    Publisher

	locks *keyMutex
	now   func() time.Time
	loc   *time.Location
}

func NewScanUsecase(
	presensiRepo repository.PresensiRepository,
	pegawaiRepo repository.PegawaiRepository,
	eventRepo repository.EventRepository,
	gate *NetworkGate,
	guard DuplicateGuard,
	publisher Publisher,
	loc *time.Location,
) *ScanUsecase {
	return &ScanUsecase{
		presensiRepo: presensiRepo,
		pegawaiRepo:  pegawaiRepo,
		eventRepo:    eventRepo,
		gate:         gate,
		guard:        guard,
		publisher:    publisher,
		locks:        newKeyMutex(),
		now:          time.Now,
		loc:          loc,
	}
}

// Proses menjalankan satu scan dari awal sampai tersimpan:
// normalisasi -> gate jaringan -> penahan scan ganda -> kunci per scope ->
// resolusi aksi -> simpan -> siarkan. Begitu lolos penahan scan ganda,
// hasilnya pasti satu record tersimpan atau satu error bisnis yang jelas.
func (u *ScanUsecase) Proses(in ScanInput) (*ScanHasil, error) {
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

	hasilGate, err := u.gate.Periksa(in.Sinyal)
	if err != nil {
		return nil, err
	}

	if err := u.guard.Periksa(pegawai.ID, kartuID); err != nil {
		return nil, err
	}

	if in.EventID != nil {
		event, err := u.eventRepo.GetByID(*in.EventID)
		if err != nil {
			return nil, apperr.ErrGagalSimpan
		}
		if event == nil || !event.Aktif {
			return nil, apperr.ErrEventTidakDitemukan
		}
	}

	// Kunci per scope: dua scan beruntun untuk pegawai+scope yang sama tidak
	// boleh sama-sama membaca "record terakhir" yang sama lalu sama-sama
	// memutuskan MASUK. Scope lain tetap paralel.
	var kunci string
	if in.EventID != nil {
		kunci = fmt.Sprintf("e:%d:%d", *in.EventID, pegawai.ID)
	} else {
		kunci = fmt.Sprintf("h:%d:%s", pegawai.ID, u.now().In(u.loc).Format("2006-01-02"))
	}
	unlock := u.locks.Lock(kunci)
	defer unlock()

	// Waktu dan tanggal diturunkan dari satu pembacaan jam di dalam kunci:
	// urutan timestamp di ledger sama dengan urutan tulis untuk satu scope,
	// dan Tanggal selalu tanggal kalender dari Waktu walaupun scan
	// menyeberang tengah malam.
	waktu := u.now().In(u.loc).Truncate(time.Second)
	tanggal := waktu.Format("2006-01-02")

	var terakhir *model.Presensi
	if in.EventID != nil {
		terakhir, err = u.presensiRepo.GetTerakhirEvent(pegawai.ID, *in.EventID)
	} else {
		terakhir, err = u.presensiRepo.GetTerakhirHarian(pegawai.ID, tanggal)
	}
	if err != nil {
		return nil, apperr.ErrGagalSimpan
	}

	aksi, err := tentukanAksi(terakhir, in.PaksaAksi)
	if err != nil {
		return nil, err
	}

	presensi := &model.Presensi{
		PegawaiID:    pegawai.ID,
		KartuID:      kartuID,
		Waktu:        waktu,
		Tanggal:      tanggal,
		Aksi:         aksi,
		EventID:      in.EventID,
		Checkpoint:   in.Checkpoint,
		IPKlien:      in.Sinyal.IPKlien,
		IPGateway:    in.Sinyal.Gateway,
		NamaJaringan: in.Sinyal.NamaWifi,
		Keterangan:   in.Keterangan,
		Status:       model.StatusValid,
	}
	if err := u.presensiRepo.Create(presensi); err != nil {
		return nil, apperr.ErrGagalSimpan
	}

	// Siaran best-effort, tidak pernah menggagalkan scan yang sudah tersimpan.
	u.publisher.PublikasiPresensi(presensi, pegawai)

	return &ScanHasil{Presensi: presensi, Pegawai: pegawai, Sinyal: hasilGate.Sinyal}, nil
}

// tentukanAksi memutuskan aksi berikutnya dari record valid terakhir di scope.
//
// Mode selang-seling (paksa kosong): belum ada record = MASUK, selain itu
// kebalikan dari aksi terakhir. Mode paksa melewati toggle itu, tapi paksa
// PULANG tetap menjaga aturan "harus masuk dulu sebelum pulang".
func tentukanAksi(terakhir *model.Presensi, paksa string) (string, error) {
	switch paksa {
	case "":
		if terakhir == nil || terakhir.Aksi == model.AksiPulang {
			return model.AksiMasuk, nil
		}
		return model.AksiPulang, nil
	case model.AksiMasuk:
		return model.AksiMasuk, nil
	case model.AksiPulang:
		if terakhir == nil {
			return "", apperr.ErrBelumMasuk
		}
		if terakhir.Aksi == model.AksiPulang {
			return "", apperr.ErrSudahPulang
		}
		return model.AksiPulang, nil
	default:
		return "", fmt.Errorf("aksi paksa tidak dikenal: %q", paksa)
	}
}
