// Package money parses free-form amount text and formats totals for display.
//
// The locale is fixed: amounts use "." to group thousands and "," as the decimal
// separator, prefixed with the IDR currency tag (for example "IDR 1.500.000").
// Parsing never returns an error, only an ok flag; callers decide what a failed
// parse means.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// CurrencyTag prefixes every formatted amount.
	CurrencyTag = "IDR"

	// GroupSeparator separates thousands.
	GroupSeparator = '.'

	// DecimalSeparator separates the fractional part.
	DecimalSeparator = ','

	// Precision is the number of fractional digits kept when formatting.
	Precision = 2
)

// ParseAmount extracts a number from text such as "IDR 1.500.000", "2" or "-12,5".
//
// Everything except digits, separators and a leading minus sign is dropped.
// When no decimal comma is present, a single period followed by exactly three
// digits is read as grouping ("1.500" is 1500); any other single period is a
// decimal point ("1.5"). The second return value is false when nothing numeric
// remains.
func ParseAmount(text string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9', r == GroupSeparator, r == DecimalSeparator:
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}

	s := b.String()
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	s, ok := canonical(s)
	if !ok {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// canonical rewrites s into the form decimal.NewFromString accepts.
func canonical(s string) (string, bool) {
	if !strings.ContainsAny(s, "0123456789") {
		return "", false
	}

	group := string(GroupSeparator)
	dec := string(DecimalSeparator)

	switch {
	case strings.Contains(s, dec):
		if strings.Count(s, dec) > 1 {
			return "", false
		}
		s = strings.ReplaceAll(s, group, "")
		s = strings.Replace(s, dec, ".", 1)
	case strings.Count(s, group) > 1:
		s = strings.ReplaceAll(s, group, "")
	case strings.Count(s, group) == 1:
		head, tail, _ := strings.Cut(s, group)
		if len(tail) == 3 && strings.TrimLeft(head, "0") != "" {
			s = head + tail
		}
	}

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	s = strings.TrimSuffix(s, ".")
	return s, true
}

// FormatCurrency renders d as "IDR <grouped>", for example "IDR 3.000.000".
func FormatCurrency(d decimal.Decimal) string {
	return CurrencyTag + " " + FormatNumber(d)
}

// FormatNumber groups thousands with "." and keeps up to Precision fractional
// digits after a ",". Rounding is half away from zero; trailing fractional
// zeros are dropped so whole amounts carry no decimals.
func FormatNumber(d decimal.Decimal) string {
	r := d.Round(Precision)

	whole, frac, _ := strings.Cut(r.Abs().StringFixed(Precision), ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if r.IsNegative() {
		b.WriteByte('-')
	}
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteRune(GroupSeparator)
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteRune(DecimalSeparator)
		b.WriteString(frac)
	}
	return b.String()
}

// Sum adds the parsed value of every text, counting unparseable entries as zero.
func Sum(texts ...string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range texts {
		if d, ok := ParseAmount(t); ok {
			total = total.Add(d)
		}
	}
	return total
}
