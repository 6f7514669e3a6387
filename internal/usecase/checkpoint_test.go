package usecase

import (
	"testing"
	"time"

	"presensi-backend/internal/apperr"
	"presensi-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func buatCheckpointUC(jam *jamPalsu) (*CheckpointUsecase, *fakeLogRepo, *fakePesertaRepo, *siaranDiam) {
	event := &model.Event{Model: gorm.Model{ID: 9}, Nama: "Rapat Tahunan", Aktif: true}
	logRepo := &fakeLogRepo{}
	pesertaRepo := &fakePesertaRepo{}
	siaran := &siaranDiam{}
	uc := NewCheckpointUsecase(
		newFakeEventRepo(event),
		&fakeCheckpointRepo{},
		logRepo,
		pesertaRepo,
		newFakePegawaiRepo(pegawaiBudi()),
		siaran,
		time.UTC,
	)
	if jam != nil {
		uc.now = jam.Now
	}
	return uc, logRepo, pesertaRepo, siaran
}

func TestNormalisasiNamaCheckpoint(t *testing.T) {
	kasus := []struct {
		input string
		hasil string
	}{
		{"registrasi", "REGISTRASI"},
		{"sesi 1", "SESI_1"},
		{"meja-depan", "MEJA_DEPAN"},
		{"  Pintu Utama  ", "PINTU_UTAMA"},
	}
	for _, k := range kasus {
		hasil, err := NormalisasiNamaCheckpoint(k.input)
		require.NoError(t, err)
		assert.Equal(t, k.hasil, hasil)
	}

	_, err := NormalisasiNamaCheckpoint("pos #1!")
	assert.ErrorIs(t, err, apperr.ErrNamaCheckpointTidakValid)
	_, err = NormalisasiNamaCheckpoint("")
	assert.ErrorIs(t, err, apperr.ErrNamaCheckpointTidakValid)
}

func TestBuatCheckpoint(t *testing.T) {
	uc, _, _, _ := buatCheckpointUC(nil)

	cp, err := uc.Buat(9, "sesi 1", "", 2)
	require.NoError(t, err)
	assert.Equal(t, "SESI_1", cp.Nama)
	assert.Equal(t, model.AksiMasuk, cp.Tipe, "tipe default MASUK")
	assert.True(t, cp.Aktif)

	// Tipe di luar MASUK/PULANG ditolak
	_, err = uc.Buat(9, "pulang", "NGOPI", 3)
	assert.ErrorIs(t, err, apperr.ErrTipeCheckpointTidakValid)

	// Event tidak dikenal
	_, err = uc.Buat(404, "registrasi", "", 1)
	assert.ErrorIs(t, err, apperr.ErrEventTidakDitemukan)
}

func TestCheckpointNonaktifLaluBuatUlang(t *testing.T) {
	uc, _, _, _ := buatCheckpointUC(nil)

	cp, err := uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)

	nonaktif, err := uc.AturAktif(9, "registrasi", false)
	require.NoError(t, err)
	assert.False(t, nonaktif.Aktif)

	// Buat dengan nama sama = reaktivasi record lama, bukan duplikat
	ulang, err := uc.Buat(9, "REGISTRASI", model.AksiPulang, 0)
	require.NoError(t, err)
	assert.Equal(t, cp.ID, ulang.ID)
	assert.True(t, ulang.Aktif)
	assert.Equal(t, model.AksiPulang, ulang.Tipe)
}

func TestCheckpointScanTanpaSelangSeling(t *testing.T) {
	jam := newJamPalsu(time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC))
	uc, logRepo, _, siaran := buatCheckpointUC(jam)

	_, err := uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)

	// Scan berkali-kali di pos yang sama: semua dicatat, tidak ada toggle
	for i := 0; i < 3; i++ {
		hasil, err := uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "registrasi", KartuID: "0001234567"})
		require.NoError(t, err)
		assert.Equal(t, "REGISTRASI", hasil.Checkpoint)
		jam.Maju(time.Minute)
	}
	assert.Len(t, logRepo.rows, 3)
	assert.Equal(t, 3, siaran.log)
}

func TestCheckpointScanPendaftaranDadakan(t *testing.T) {
	uc, _, pesertaRepo, _ := buatCheckpointUC(nil)
	_, err := uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)

	// Pegawai dikenal tapi belum jadi peserta: otomatis didaftarkan
	hasil, err := uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "registrasi", KartuID: "0001234567"})
	require.NoError(t, err)
	require.NotNil(t, hasil.Peserta)
	assert.Equal(t, "Budi Santoso", hasil.Peserta.Nama)
	assert.Len(t, pesertaRepo.rows, 1)

	// Scan kedua memakai peserta yang sudah ada
	_, err = uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "registrasi", KartuID: "0001234567"})
	require.NoError(t, err)
	assert.Len(t, pesertaRepo.rows, 1)
}

func TestCheckpointScanPosNonaktif(t *testing.T) {
	uc, _, _, _ := buatCheckpointUC(nil)
	_, err := uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)
	_, err = uc.AturAktif(9, "registrasi", false)
	require.NoError(t, err)

	_, err = uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "registrasi", KartuID: "0001234567"})
	assert.ErrorIs(t, err, apperr.ErrCheckpointTidakDitemukan)

	_, err = uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "tidak_ada", KartuID: "0001234567"})
	assert.ErrorIs(t, err, apperr.ErrCheckpointTidakDitemukan)
}

func TestCheckpointScanLewatNamaEvent(t *testing.T) {
	uc, _, _, _ := buatCheckpointUC(nil)
	_, err := uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)

	_, err = uc.Scan(CheckpointScanInput{EventNama: "Rapat Tahunan", Checkpoint: "registrasi", KartuID: "0001234567"})
	assert.NoError(t, err)

	_, err = uc.Scan(CheckpointScanInput{EventNama: "Tidak Ada", Checkpoint: "registrasi", KartuID: "0001234567"})
	assert.ErrorIs(t, err, apperr.ErrEventTidakDitemukan)
}

// Matriks memakai timestamp TERAKHIR per (peserta, pos), bukan toggle.
func TestMatrixLastWriteWins(t *testing.T) {
	jam := newJamPalsu(time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC))
	uc, _, _, _ := buatCheckpointUC(jam)

	_, err := uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)
	_, err = uc.Buat(9, "sesi 1", "", 2)
	require.NoError(t, err)

	_, err = uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "registrasi", KartuID: "0001234567"})
	require.NoError(t, err)

	jam.Maju(2 * time.Hour)
	_, err = uc.Scan(CheckpointScanInput{EventID: 9, Checkpoint: "registrasi", KartuID: "0001234567"})
	require.NoError(t, err)

	matrix, err := uc.Matrix(9)
	require.NoError(t, err)
	assert.Equal(t, []string{"REGISTRASI", "SESI_1"}, matrix.Checkpoints)
	require.Len(t, matrix.Baris, 1)

	baris := matrix.Baris[0]
	assert.Equal(t, "2026-09-15 10:00:00", baris.Kehadiran["REGISTRASI"], "yang terbaru yang menang")
	assert.Equal(t, "", baris.Kehadiran["SESI_1"], "belum hadir = kosong")
}

func TestMatrixUrutanCheckpoint(t *testing.T) {
	uc, _, _, _ := buatCheckpointUC(nil)

	_, err := uc.Buat(9, "pulang", model.AksiPulang, 3)
	require.NoError(t, err)
	_, err = uc.Buat(9, "registrasi", "", 1)
	require.NoError(t, err)
	_, err = uc.Buat(9, "sesi 1", "", 2)
	require.NoError(t, err)

	// Pos nonaktif tidak muncul sebagai kolom
	_, err = uc.AturAktif(9, "sesi 1", false)
	require.NoError(t, err)

	matrix, err := uc.Matrix(9)
	require.NoError(t, err)
	assert.Equal(t, []string{"REGISTRASI", "PULANG"}, matrix.Checkpoints)
}
