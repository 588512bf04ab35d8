package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
)

// FileStore keeps the record as a JSON file named after Key inside a directory.
type FileStore struct {
	dir string
	now func() time.Time
	log zerolog.Logger
}

// NewFileStore creates a store rooted at dir. now supplies the date used for
// defaults; nil means time.Now.
func NewFileStore(dir string, now func() time.Time) *FileStore {
	if now == nil {
		now = time.Now
	}
	return &FileStore{
		dir: dir,
		now: now,
		log: logger.WithComponent("store"),
	}
}

// Path returns the location of the record file.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, Key+".json")
}

// Load implements Repository.
func (s *FileStore) Load(ctx context.Context) (*invoice.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Str("path", path).Msg("No stored invoice, using defaults")
		} else {
			s.log.Warn().Err(err).Str("path", path).Msg("Stored invoice unreadable, using defaults")
		}
		return invoice.New(s.now()), nil
	}

	inv, err := decode(data, s.now(), s.log)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("Stored invoice corrupt, using defaults")
		return invoice.New(s.now()), nil
	}

	s.log.Debug().
		Str("path", path).
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Msg("Invoice loaded")

	return inv, nil
}

// Save implements Repository. The record is written to a temporary file in
// the same directory and renamed into place.
func (s *FileStore) Save(ctx context.Context, inv *invoice.Invoice) error {
	const op = "save"

	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(inv)
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("Failed to create data directory")
		return &StoreError{Op: op, Path: s.dir, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, Key+"-*.tmp")
	if err != nil {
		return &StoreError{Op: op, Path: s.dir, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &StoreError{Op: op, Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StoreError{Op: op, Path: tmpPath, Err: err}
	}

	path := s.Path()
	if err := os.Rename(tmpPath, path); err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("Failed to replace invoice record")
		return &StoreError{Op: op, Path: path, Err: err}
	}

	s.log.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Invoice saved")

	return nil
}
