// Package session is the editing surface over the persisted invoice.
//
// Every mutation applies to the in-memory invoice and then saves the whole
// record before returning, so the stored record always matches what the
// user last saw.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"invoicegen/internal/invoice"
	"invoicegen/internal/logger"
	"invoicegen/internal/money"
	"invoicegen/internal/pdf"
	"invoicegen/internal/store"
)

// ErrItemNotFound is returned when no item matches an id or id prefix.
var ErrItemNotFound = errors.New("item not found")

// ErrAmbiguousItem is returned when an id prefix matches more than one item.
var ErrAmbiguousItem = errors.New("item id prefix is ambiguous")

// Exporter turns an invoice into document bytes.
type Exporter interface {
	Generate(inv *invoice.Invoice) ([]byte, error)
}

// Session owns the invoice being edited. It is not safe for concurrent use.
type Session struct {
	repo store.Repository
	inv  *invoice.Invoice
	now  func() time.Time
	log  zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now for dates set by the session.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Open loads the stored invoice from repo.
func Open(ctx context.Context, repo store.Repository, opts ...Option) (*Session, error) {
	s := &Session{
		repo: repo,
		now:  time.Now,
		log:  logger.WithComponent("session"),
	}
	for _, opt := range opts {
		opt(s)
	}

	inv, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoice: %w", err)
	}
	s.inv = inv

	s.log.Debug().
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", len(inv.Items)).
		Msg("Session opened")

	return s, nil
}

// Invoice returns a copy of the current invoice.
func (s *Session) Invoice() *invoice.Invoice {
	return s.inv.Clone()
}

// Total returns the invoice total.
func (s *Session) Total() string {
	return money.FormatCurrency(s.inv.ComputeTotal())
}

// ResolveItem returns the full id of the item whose id is, or starts with, ref.
func (s *Session) ResolveItem(ref string) (string, error) {
	var match string
	for _, it := range s.inv.Items {
		if it.ID == ref {
			return it.ID, nil
		}
		if ref != "" && strings.HasPrefix(it.ID, ref) {
			if match != "" {
				return "", fmt.Errorf("%w: %q", ErrAmbiguousItem, ref)
			}
			match = it.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("%w: %q", ErrItemNotFound, ref)
	}
	return match, nil
}

func (s *Session) save(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.inv); err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("Failed to save invoice")
		return fmt.Errorf("failed to save invoice after %s: %w", op, err)
	}
	s.log.Debug().Str("op", op).Msg("Invoice saved")
	return nil
}

// SetField sets a top-level text field by its record name.
func (s *Session) SetField(ctx context.Context, name, value string) error {
	if err := s.inv.SetField(name, value); err != nil {
		return err
	}
	return s.save(ctx, "set "+name)
}

// AddItem appends an empty item and returns it.
func (s *Session) AddItem(ctx context.Context) (invoice.Item, error) {
	it := s.inv.AddItem()
	return it, s.save(ctx, "add item")
}

// RemoveItem removes the item with id. It reports false, and saves nothing,
// when id is unknown or names the only remaining item.
func (s *Session) RemoveItem(ctx context.Context, id string) (bool, error) {
	if !s.inv.RemoveItem(id) {
		return false, nil
	}
	return true, s.save(ctx, "remove item")
}

// UpdateItem edits one field of the item with id. It reports false, and
// saves nothing, when id is unknown.
func (s *Session) UpdateItem(ctx context.Context, id, field, value string) (bool, error) {
	f, err := invoice.ParseItemField(field)
	if err != nil {
		return false, err
	}
	ok, err := s.inv.UpdateItemField(id, f, value)
	if err != nil || !ok {
		return ok, err
	}
	return true, s.save(ctx, "update item")
}

// RegenerateNumber assigns a fresh random invoice number and returns it.
func (s *Session) RegenerateNumber(ctx context.Context) (string, error) {
	s.inv.InvoiceNumber = invoice.GenerateNumber()
	return s.inv.InvoiceNumber, s.save(ctx, "regenerate number")
}

// SetToday sets the invoice date to the current day and returns it.
func (s *Session) SetToday(ctx context.Context) (string, error) {
	s.inv.InvoiceDate = invoice.Today(s.now())
	return s.inv.InvoiceDate, s.save(ctx, "set today")
}

// Reset replaces the invoice with a fresh default one.
func (s *Session) Reset(ctx context.Context) error {
	s.inv = invoice.New(s.now())
	return s.save(ctx, "reset")
}

// Export renders the current invoice and returns the suggested file name
// with the document bytes.
func (s *Session) Export(exp Exporter) (string, []byte, error) {
	data, err := exp.Generate(s.inv.Clone())
	if err != nil {
		return "", nil, fmt.Errorf("failed to export invoice %s: %w", s.inv.InvoiceNumber, err)
	}
	return pdf.FileName(s.inv.InvoiceNumber), data, nil
}
