// Package invoice holds the invoice record edited by a session and the
// line-item rules that keep its amounts and total consistent.
//
// An Invoice always carries at least one Item. Item amounts are either typed in
// by hand or derived from quantity times price; the AmountMode on each item
// records which of the two produced the current value.
package invoice

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	// NumberPrefix tags generated invoice numbers.
	NumberPrefix = "INV"

	// DateLayout is the ISO calendar date format of InvoiceDate.
	DateLayout = "2006-01-02"
)

// AmountMode tells how an item's Amount was produced.
type AmountMode string

const (
	// AmountManual means Amount was entered directly (or never computed).
	AmountManual AmountMode = "manual"

	// AmountDerived means Amount is the formatted product of Quantity and Price.
	AmountDerived AmountMode = "derived"
)

// Item is one billable line. Quantity, Price and Amount are kept as the text
// the user typed; they are parsed only when a number is needed.
type Item struct {
	ID          string     `json:"id" validate:"required"`
	Description string     `json:"description"`
	Quantity    string     `json:"quantity"`
	Price       string     `json:"price"`
	Amount      string     `json:"amount"`
	AmountMode  AmountMode `json:"amountMode,omitempty" validate:"omitempty,oneof=manual derived"`
}

// Invoice is the complete invoice record. JSON keys match the persisted record
// format of the browser-based generator, so stored records stay readable.
type Invoice struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate" validate:"omitempty,datetime=2006-01-02"`

	// Billed to
	BilledToCompanyName string `json:"billedToCompanyName"`
	BilledToAddress     string `json:"billedToAddress"`
	BilledToCompanyID   string `json:"billedToCompanyId"`
	BilledToVat         string `json:"billedToVat"`

	// From
	FromName    string `json:"fromName"`
	FromAddress string `json:"fromAddress"`
	FromVat     string `json:"fromVat"`

	Items []Item `json:"items" validate:"min=1,dive"`

	// Payment details
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	SwiftCode     string `json:"swiftCode"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
}

// New returns a default invoice dated now with a generated number and one
// empty item.
func New(now time.Time) *Invoice {
	return &Invoice{
		InvoiceNumber: GenerateNumber(),
		InvoiceDate:   Today(now),
		Items:         []Item{NewItem()},
	}
}

// NewItem returns an empty item with a fresh identifier.
func NewItem() Item {
	return Item{
		ID:         uuid.NewString(),
		AmountMode: AmountManual,
	}
}

// GenerateNumber returns a random invoice number such as "INV-4821".
func GenerateNumber() string {
	return fmt.Sprintf("%s-%d", NumberPrefix, 1000+rand.IntN(9000))
}

// Today formats now as an InvoiceDate.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Clone returns a copy that shares no item storage with inv.
func (inv *Invoice) Clone() *Invoice {
	c := *inv
	c.Items = slices.Clone(inv.Items)
	return &c
}

// Date parses InvoiceDate. The zero time is returned when it is empty or invalid.
func (inv *Invoice) Date() time.Time {
	t, err := time.Parse(DateLayout, inv.InvoiceDate)
	if err != nil {
		return time.Time{}
	}
	return t
}
