package usecase

import "sync"

// keyMutex menyediakan mutual exclusion per key scope (pegawai+tanggal atau
// pegawai+event). Urutan baca-putuskan-tulis untuk satu scope harus serial,
// sementara scope lain tetap jalan paralel. Entri dihapus lagi saat tidak
// ada yang menunggu supaya map tidak tumbuh seiring hari berganti.
type keyMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu  sync.Mutex
	ref int
}

func newKeyMutex() *keyMutex {
	return &keyMutex{locks: make(map[string]*keyLock)}
}

// Lock mengunci key dan mengembalikan fungsi unlock-nya.
func (k *keyMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.ref++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.ref--
		if l.ref == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
