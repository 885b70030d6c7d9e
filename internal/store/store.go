package store

import "context"

// Collection names are part of the storage contract and kept exactly as the
// original system persisted them.
const (
	CollectionUsers    = "usuarios"
	CollectionVehicles = "veiculos"
	CollectionPatients = "pacientes"
	CollectionTrips    = "viagens"

	sessionCollection = "usuarioLogado"
)

// Sort describes a single-field sort order for Find.
type Sort struct {
	Field string
	Desc  bool
}

// Store is the persistence adapter over the four named collections plus the
// logged-in-user slot. A collection observed empty on first read is seeded
// with the fixed default dataset before results are returned.
//
// There is no transactional guarantee across calls: a multi-step operation
// (add a trip, then re-read the list) can interleave with a concurrent
// writer. The system runs with effectively one admin writing at a time, so
// this is an accepted limitation rather than a hidden assumption.
type Store interface {
	// GetAll decodes every document of the collection into out, which must
	// be a pointer to a slice.
	GetAll(ctx context.Context, collection string, out any) error

	// SetAll replaces the collection contents with docs.
	SetAll(ctx context.Context, collection string, docs any) error

	// Add inserts doc and returns the id assigned by the backend.
	Add(ctx context.Context, collection string, doc any) (string, error)

	// Update applies the given fields to the document with the id.
	// A missing id fails with models.ErrNotFound.
	Update(ctx context.Context, collection string, id string, fields map[string]any) error

	// Delete removes the document with the id. A missing id fails with
	// models.ErrNotFound.
	Delete(ctx context.Context, collection string, id string) error

	// Find decodes the documents matching the equality filter into out.
	// The returned bool reports whether the backend ordered the results
	// according to sort; callers must sort client-side when it is false.
	Find(ctx context.Context, collection string, filter map[string]any, sort *Sort, out any) (bool, error)

	// GetSession reads the logged-in-user slot into out. The bool reports
	// whether a session is present.
	GetSession(ctx context.Context, out any) (bool, error)

	// SetSession writes the logged-in-user slot.
	SetSession(ctx context.Context, user any) error

	// ClearSession empties the logged-in-user slot. Clearing an already
	// empty slot is not an error.
	ClearSession(ctx context.Context) error
}
