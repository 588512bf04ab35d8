package invoice

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// textFields maps the JSON name of every top-level text field to its storage.
var textFields = map[string]func(*Invoice) *string{
	"invoiceNumber":       func(inv *Invoice) *string { return &inv.InvoiceNumber },
	"invoiceDate":         func(inv *Invoice) *string { return &inv.InvoiceDate },
	"billedToCompanyName": func(inv *Invoice) *string { return &inv.BilledToCompanyName },
	"billedToAddress":     func(inv *Invoice) *string { return &inv.BilledToAddress },
	"billedToCompanyId":   func(inv *Invoice) *string { return &inv.BilledToCompanyID },
	"billedToVat":         func(inv *Invoice) *string { return &inv.BilledToVat },
	"fromName":            func(inv *Invoice) *string { return &inv.FromName },
	"fromAddress":         func(inv *Invoice) *string { return &inv.FromAddress },
	"fromVat":             func(inv *Invoice) *string { return &inv.FromVat },
	"bankName":            func(inv *Invoice) *string { return &inv.BankName },
	"accountName":         func(inv *Invoice) *string { return &inv.AccountName },
	"accountNumber":       func(inv *Invoice) *string { return &inv.AccountNumber },
	"swiftCode":           func(inv *Invoice) *string { return &inv.SwiftCode },
	"contactEmail":        func(inv *Invoice) *string { return &inv.ContactEmail },
	"contactPhone":        func(inv *Invoice) *string { return &inv.ContactPhone },
}

// FieldNames lists the names accepted by SetField, sorted.
func FieldNames() []string {
	names := lo.Keys(textFields)
	slices.Sort(names)
	return names
}

// SetField stores value in the top-level text field called name.
// The invoice date must be empty or an ISO calendar date.
func (inv *Invoice) SetField(name, value string) error {
	field, ok := textFields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if name == "invoiceDate" && value != "" {
		if err := validate.Var(value, "datetime="+DateLayout); err != nil {
			return &FieldError{Field: name, Value: value, Message: "expected YYYY-MM-DD"}
		}
	}
	*field(inv) = value
	return nil
}

// Field returns the value of the top-level text field called name.
func (inv *Invoice) Field(name string) (string, error) {
	field, ok := textFields[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return *field(inv), nil
}
