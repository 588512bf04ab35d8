package invoice

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the structural invariants of the record: at least one item,
// every item identified, known amount modes and an ISO invoice date.
func (inv *Invoice) Validate() error {
	if err := validate.Struct(inv); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	return nil
}

// Normalize patches a record restored from storage so that it satisfies
// Validate. It returns the names of the fields it had to repair.
func (inv *Invoice) Normalize(now time.Time) []string {
	var patched []string

	if len(inv.Items) == 0 {
		inv.Items = []Item{NewItem()}
		patched = append(patched, "items")
	}

	for i := range inv.Items {
		it := &inv.Items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
			patched = append(patched, fmt.Sprintf("items[%d].id", i))
		}
		if it.AmountMode != AmountManual && it.AmountMode != AmountDerived {
			it.AmountMode = AmountManual
			patched = append(patched, fmt.Sprintf("items[%d].amountMode", i))
		}
	}

	if inv.InvoiceDate != "" {
		if _, err := time.Parse(DateLayout, inv.InvoiceDate); err != nil {
			inv.InvoiceDate = Today(now)
			patched = append(patched, "invoiceDate")
		}
	}

	return patched
}
