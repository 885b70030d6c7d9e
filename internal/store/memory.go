package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fgabrielqr/sistema-viagens/internal/models"
)

// MemoryStore keeps every collection as JSON-encoded documents, the same
// shape the original system persisted into browser local storage. It backs
// the API when no MongoDB is configured or reachable; data lives only as
// long as the process.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]json.RawMessage
	session     json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]json.RawMessage)}
}

// ensureSeeded writes the default dataset on the first observation of a
// collection. Callers must hold mu.
func (s *MemoryStore) ensureSeeded(collection string) []json.RawMessage {
	docs, ok := s.collections[collection]
	if ok {
		return docs
	}
	for _, seed := range seedDocuments(collection) {
		raw, _ := json.Marshal(seed)
		docs = append(docs, raw)
	}
	s.collections[collection] = docs
	return docs
}

func decodeDocs(docs []json.RawMessage, out any) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, d := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(d)
	}
	buf.WriteByte(']')
	return json.Unmarshal(buf.Bytes(), out)
}

// GetAll decodes while holding the lock: Update rewrites raw documents in
// place, so a decode outside the lock could observe a torn document.
func (s *MemoryStore) GetAll(ctx context.Context, collection string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decodeDocs(s.ensureSeeded(collection), out)
}

func (s *MemoryStore) SetAll(ctx context.Context, collection string, docs any) error {
	encoded, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(encoded, &raw); err != nil {
		return err
	}
	s.mu.Lock()
	s.collections[collection] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	var m map[string]any
	if err := json.Unmarshal(encoded, &m); err != nil {
		return "", err
	}
	id, _ := m["id"].(string)
	if id == "" {
		id = uuid.NewString()
		m["id"] = id
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	docs := s.ensureSeeded(collection)
	s.collections[collection] = append(docs, raw)
	s.mu.Unlock()
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection string, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.ensureSeeded(collection)
	for i, d := range docs {
		var m map[string]any
		if err := json.Unmarshal(d, &m); err != nil {
			return err
		}
		if m["id"] != id {
			continue
		}
		for k, v := range fields {
			m[k] = v
		}
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		docs[i] = raw
		return nil
	}
	return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
}

func (s *MemoryStore) Delete(ctx context.Context, collection string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := s.ensureSeeded(collection)
	for i, d := range docs {
		var m map[string]any
		if err := json.Unmarshal(d, &m); err != nil {
			return err
		}
		if m["id"] == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s/%s: %w", collection, id, models.ErrNotFound)
}

// Find applies the equality filter document by document. Local storage has
// no sort index, so results come back in insertion order and the caller is
// told to sort for itself. Matching and decoding stay under the lock for
// the same reason as GetAll.
func (s *MemoryStore) Find(ctx context.Context, collection string, filter map[string]any, sort *Sort, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []json.RawMessage
	for _, d := range s.ensureSeeded(collection) {
		var m map[string]any
		if err := json.Unmarshal(d, &m); err != nil {
			return false, err
		}
		if matchesFilter(m, filter) {
			matched = append(matched, d)
		}
	}
	return false, decodeDocs(matched, out)
}

func matchesFilter(doc map[string]any, filter map[string]any) bool {
	for k, v := range filter {
		want, _ := json.Marshal(v)
		got, _ := json.Marshal(doc[k])
		if !bytes.Equal(want, got) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) GetSession(ctx context.Context, out any) (bool, error) {
	s.mu.Lock()
	raw := s.session
	s.mu.Unlock()
	if raw == nil {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (s *MemoryStore) SetSession(ctx context.Context, user any) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.session = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}
