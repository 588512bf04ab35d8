// Package store persists the single invoice record of an editing session.
//
// The record is kept under one well-known key and is always read and written
// whole. A missing, unreadable or corrupt record is never reported to the
// caller: Load falls back to a default invoice and logs why.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"invoicegen/internal/invoice"
)

// Key names the persisted record.
const Key = "invoiceGeneratorData"

// Repository loads and saves the invoice record.
type Repository interface {
	// Load returns the stored invoice, or a default one when nothing usable is stored.
	Load(ctx context.Context) (*invoice.Invoice, error)

	// Save replaces the stored record with inv.
	Save(ctx context.Context, inv *invoice.Invoice) error
}

// ErrWriteFailed is returned when the record cannot be written.
var ErrWriteFailed = errors.New("failed to write invoice record")

// StoreError wraps a persistence failure with the operation and location involved.
type StoreError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is reports failed saves as ErrWriteFailed.
func (e *StoreError) Is(target error) bool {
	return target == ErrWriteFailed && e.Op == "save"
}

// decode restores a record over the defaults for now. Fields absent from data
// keep their default value; structural gaps are repaired by Normalize.
func decode(data []byte, now time.Time, log zerolog.Logger) (*invoice.Invoice, error) {
	inv := invoice.New(now)
	inv.Items = nil

	if err := json.Unmarshal(data, inv); err != nil {
		return nil, err
	}

	if err := inv.Validate(); err != nil {
		patched := inv.Normalize(now)
		log.Debug().
			Err(err).
			Strs("patched", patched).
			Msg("Stored invoice record repaired with defaults")
	}

	return inv, nil
}

func encode(inv *invoice.Invoice) ([]byte, error) {
	return json.MarshalIndent(inv, "", "  ")
}
