package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
)

// MemoryStore keeps the serialized record in memory. It encodes and decodes
// exactly like FileStore, so it can stand in for it in tests.
type MemoryStore struct {
	data  []byte
	now   func() time.Time
	log   zerolog.Logger
	Saves int
}

// NewMemoryStore returns an empty store. now supplies the date used for
// defaults; nil means time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{now: now, log: logger.WithComponent("store")}
}

// Seed replaces the stored bytes, as if another version had written them.
func (m *MemoryStore) Seed(data []byte) {
	m.data = append([]byte(nil), data...)
}

// Bytes returns a copy of the stored record.
func (m *MemoryStore) Bytes() []byte {
	return append([]byte(nil), m.data...)
}

// Load implements Repository.
func (m *MemoryStore) Load(ctx context.Context) (*invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.data == nil {
		return invoice.New(m.now()), nil
	}
	inv, err := decode(m.data, m.now(), m.log)
	if err != nil {
		m.log.Warn().Err(err).Msg("Stored invoice corrupt, using defaults")
		return invoice.New(m.now()), nil
	}
	return inv, nil
}

// Save implements Repository.
func (m *MemoryStore) Save(ctx context.Context, inv *invoice.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(inv)
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	m.data = data
	m.Saves++
	return nil
}
