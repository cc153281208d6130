package service

import (
	"employee-task-manager/internal/store"
)

// Service adalah lapisan validasi & konsistensi di atas store. Semua operasi
// memegang lock store selama operasi berjalan, sehingga operasi lintas koleksi
// (misalnya cascade delete employee -> task) terlihat atomik oleh pembaca.
// Operasi yang gagal tidak mengubah koleksi sama sekali.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}
