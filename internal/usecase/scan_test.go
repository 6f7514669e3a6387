package usecase

import (
	"sync"
	"testing"
	"time"

	"presensi-backend/internal/apperr"
	"presensi-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func pegawaiBudi() *model.Pegawai {
	return &model.Pegawai{Model: gorm.Model{ID: 1}, Nama: "Budi Santoso", KartuID: "0001234567", Aktif: true}
}

// buatScanUC merakit ScanUsecase dengan repositori palsu. Gate jaringan
// nonaktif kecuali tes menggantinya sendiri.
func buatScanUC(repo *fakePresensiRepo, guard DuplicateGuard, jam *jamPalsu) (*ScanUsecase, *siaranDiam) {
	siaran := &siaranDiam{}
	event := &model.Event{Model: gorm.Model{ID: 9}, Nama: "Rapat Tahunan", Aktif: true}
	uc := NewScanUsecase(
		repo,
		newFakePegawaiRepo(pegawaiBudi()),
		newFakeEventRepo(event),
		NewNetworkGate(&fakeJaringanRepo{}, false),
		guard,
		siaran,
		time.UTC,
	)
	if jam != nil {
		uc.now = jam.Now
	}
	return uc, siaran
}

func TestScanSelangSeling(t *testing.T) {
	repo := newFakePresensiRepo()
	jam := newJamPalsu(time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC))
	uc, siaran := buatScanUC(repo, izinkanSemua{}, jam)

	urutan := []string{model.AksiMasuk, model.AksiPulang, model.AksiMasuk, model.AksiPulang}
	for i, mau := range urutan {
		hasil, err := uc.Proses(ScanInput{KartuID: "0001234567"})
		require.NoError(t, err, "scan ke-%d", i+1)
		assert.Equal(t, mau, hasil.Presensi.Aksi, "scan ke-%d", i+1)
		jam.Maju(time.Minute)
	}

	assert.Equal(t, len(urutan), siaran.presensi, "tiap scan tersimpan harus disiarkan")
}

// Skenario dari lapangan: masuk, pulang 10 detik kemudian, lalu tap lagi
// 2 detik setelahnya kena penahan scan ganda.
func TestScanSkenarioGanda(t *testing.T) {
	repo := newFakePresensiRepo()
	jam := newJamPalsu(time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC))
	guard := NewDuplicateGuard(5 * time.Second)
	guard.now = jam.Now
	uc, _ := buatScanUC(repo, guard, jam)

	hasil, err := uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, hasil.Presensi.Aksi)

	jam.Maju(10 * time.Second)
	hasil, err = uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, model.AksiPulang, hasil.Presensi.Aksi)

	jam.Maju(2 * time.Second)
	_, err = uc.Proses(ScanInput{KartuID: "0001234567"})
	assert.ErrorIs(t, err, apperr.ErrScanGanda)

	// Scan yang ditolak tidak menambah record
	assert.Len(t, repo.semua(), 2)
}

func TestScanPaksaAksi(t *testing.T) {
	repo := newFakePresensiRepo()
	jam := newJamPalsu(time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC))
	uc, _ := buatScanUC(repo, izinkanSemua{}, jam)

	// Paksa PULANG tanpa pernah masuk: ditolak
	_, err := uc.Proses(ScanInput{KartuID: "0001234567", PaksaAksi: model.AksiPulang})
	assert.ErrorIs(t, err, apperr.ErrBelumMasuk)

	// Paksa MASUK selalu boleh
	hasil, err := uc.Proses(ScanInput{KartuID: "0001234567", PaksaAksi: model.AksiMasuk})
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, hasil.Presensi.Aksi)

	jam.Maju(time.Minute)
	hasil, err = uc.Proses(ScanInput{KartuID: "0001234567", PaksaAksi: model.AksiPulang})
	require.NoError(t, err)
	assert.Equal(t, model.AksiPulang, hasil.Presensi.Aksi)

	// Pasangan masuk/pulang sudah lengkap: paksa PULANG lagi ditolak
	jam.Maju(time.Minute)
	_, err = uc.Proses(ScanInput{KartuID: "0001234567", PaksaAksi: model.AksiPulang})
	assert.ErrorIs(t, err, apperr.ErrSudahPulang)
}

func TestScanKartuBelumTerdaftar(t *testing.T) {
	repo := newFakePresensiRepo()
	uc, _ := buatScanUC(repo, izinkanSemua{}, nil)

	_, err := uc.Proses(ScanInput{KartuID: "0009999999"})
	assert.ErrorIs(t, err, apperr.ErrKartuBelumTerdaftar)
	assert.Empty(t, repo.semua())
}

func TestScanKartuTidakValid(t *testing.T) {
	repo := newFakePresensiRepo()
	uc, _ := buatScanUC(repo, izinkanSemua{}, nil)

	_, err := uc.Proses(ScanInput{KartuID: "abc"})
	assert.ErrorIs(t, err, apperr.ErrKartuTidakValid)
}

// Scope event terpisah dari scope harian: sudah MASUK harian tidak membuat
// scan event pertama jadi PULANG.
func TestScanScopeEventTerpisah(t *testing.T) {
	repo := newFakePresensiRepo()
	jam := newJamPalsu(time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC))
	uc, _ := buatScanUC(repo, izinkanSemua{}, jam)

	hasil, err := uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, hasil.Presensi.Aksi)

	eventID := uint(9)
	jam.Maju(time.Minute)
	hasil, err = uc.Proses(ScanInput{KartuID: "0001234567", EventID: &eventID})
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, hasil.Presensi.Aksi, "scan event pertama tetap MASUK")

	jam.Maju(time.Minute)
	hasil, err = uc.Proses(ScanInput{KartuID: "0001234567", EventID: &eventID})
	require.NoError(t, err)
	assert.Equal(t, model.AksiPulang, hasil.Presensi.Aksi)

	// Scope harian juga jalan sendiri
	jam.Maju(time.Minute)
	hasil, err = uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, model.AksiPulang, hasil.Presensi.Aksi)
}

func TestScanEventTidakDitemukan(t *testing.T) {
	repo := newFakePresensiRepo()
	uc, _ := buatScanUC(repo, izinkanSemua{}, nil)

	eventID := uint(404)
	_, err := uc.Proses(ScanInput{KartuID: "0001234567", EventID: &eventID})
	assert.ErrorIs(t, err, apperr.ErrEventTidakDitemukan)
}

func TestScanJaringanDitolak(t *testing.T) {
	repo := newFakePresensiRepo()
	siaran := &siaranDiam{}
	uc := NewScanUsecase(
		repo,
		newFakePegawaiRepo(pegawaiBudi()),
		newFakeEventRepo(),
		NewNetworkGate(&fakeJaringanRepo{rows: []model.Jaringan{{Gateway: "192.168.10.0/24"}}}, true),
		izinkanSemua{},
		siaran,
		time.UTC,
	)

	_, err := uc.Proses(ScanInput{
		KartuID: "0001234567",
		Sinyal:  SinyalJaringan{Gateway: "8.8.8.8", NamaWifi: "WARUNG-KOPI"},
	})
	assert.ErrorIs(t, err, apperr.ErrAksesJaringanDitolak)
	assert.Empty(t, repo.semua())
	assert.Zero(t, siaran.presensi)
}

// Record BATAL tidak ikut dihitung di resolusi aksi: setelah MASUK
// dibatalkan, scan berikutnya kembali MASUK, bukan PULANG.
func TestScanSetelahBatal(t *testing.T) {
	repo := newFakePresensiRepo()
	jam := newJamPalsu(time.Date(2026, 8, 31, 7, 30, 0, 0, time.UTC))
	uc, _ := buatScanUC(repo, izinkanSemua{}, jam)

	hasil, err := uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, hasil.Presensi.Aksi)

	require.NoError(t, repo.Batalkan(hasil.Presensi.ID))

	jam.Maju(time.Minute)
	hasil, err = uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, hasil.Presensi.Aksi)
}

// Tanggal diturunkan dari Waktu yang sama, termasuk ketika jam menyeberang
// tengah malam di antara pembentukan kunci dan penulisan record.
func TestScanTanggalIkutWaktu(t *testing.T) {
	repo := newFakePresensiRepo()
	uc, _ := buatScanUC(repo, izinkanSemua{}, nil)

	urutanJam := []time.Time{
		time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC),
	}
	bacaan := 0
	uc.now = func() time.Time {
		w := urutanJam[bacaan]
		if bacaan < len(urutanJam)-1 {
			bacaan++
		}
		return w
	}

	hasil, err := uc.Proses(ScanInput{KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", hasil.Presensi.Tanggal)
	assert.Equal(t, hasil.Presensi.Waktu.Format("2006-01-02"), hasil.Presensi.Tanggal)
}

func TestScanGagalSimpan(t *testing.T) {
	repo := newFakePresensiRepo()
	repo.failing = true
	uc, _ := buatScanUC(repo, izinkanSemua{}, nil)

	_, err := uc.Proses(ScanInput{KartuID: "0001234567"})
	assert.ErrorIs(t, err, apperr.ErrGagalSimpan)
}

// 50 scan serentak untuk scope yang sama harus menghasilkan 50 record yang
// selang-seling ketat, diulang 20 kali.
func TestScanKonkurenSelangSeling(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		repo := newFakePresensiRepo()
		uc, _ := buatScanUC(repo, izinkanSemua{}, nil)

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := uc.Proses(ScanInput{KartuID: "0001234567"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		rows := repo.semua()
		require.Len(t, rows, 50, "trial %d", trial)
		for i, row := range rows {
			mau := model.AksiMasuk
			if i%2 == 1 {
				mau = model.AksiPulang
			}
			require.Equal(t, mau, row.Aksi, "trial %d record ke-%d", trial, i+1)
		}
	}
}

func TestTentukanAksi(t *testing.T) {
	masuk := &model.Presensi{Aksi: model.AksiMasuk}
	pulang := &model.Presensi{Aksi: model.AksiPulang}

	aksi, err := tentukanAksi(nil, "")
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, aksi)

	aksi, err = tentukanAksi(masuk, "")
	require.NoError(t, err)
	assert.Equal(t, model.AksiPulang, aksi)

	aksi, err = tentukanAksi(pulang, "")
	require.NoError(t, err)
	assert.Equal(t, model.AksiMasuk, aksi)

	_, err = tentukanAksi(nil, model.AksiPulang)
	assert.ErrorIs(t, err, apperr.ErrBelumMasuk)

	_, err = tentukanAksi(pulang, model.AksiPulang)
	assert.ErrorIs(t, err, apperr.ErrSudahPulang)

	_, err = tentukanAksi(masuk, "NGOPI")
	assert.Error(t, err)
}
