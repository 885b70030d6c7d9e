// Package repository provides the typed accessors over the persistence
// adapter. Uniqueness rules (user email, vehicle plate, patient name+phone)
// are enforced here rather than in the form layer, so every caller gets the
// same guarantees.
package repository

import (
	"github.com/fgabrielqr/sistema-viagens/internal/store"
)

type Repository struct {
	store store.Store
}

func New(s store.Store) *Repository {
	return &Repository{store: s}
}

// Store exposes the underlying adapter for the session slot.
func (r *Repository) Store() store.Store {
	return r.store
}
