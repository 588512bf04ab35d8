package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "plain integer", input: "2", want: "2", wantOK: true},
		{name: "currency with grouping", input: "IDR 1.500.000", want: "1500000", wantOK: true},
		{name: "single group", input: "1.500", want: "1500", wantOK: true},
		{name: "decimal point", input: "1.5", want: "1.5", wantOK: true},
		{name: "leading zero keeps decimal point", input: "0.250", want: "0.25", wantOK: true},
		{name: "decimal comma", input: "12,5", want: "12.5", wantOK: true},
		{name: "grouping and decimal comma", input: "IDR 1.234,56", want: "1234.56", wantOK: true},
		{name: "leading minus", input: "IDR -1.000", want: "-1000", wantOK: true},
		{name: "inner minus dropped", input: "5-3", want: "53", wantOK: true},
		{name: "spaces and symbols", input: " Rp 7 500 ", want: "7500", wantOK: true},
		{name: "letters only", input: "abc", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "minus only", input: "-", wantOK: false},
		{name: "two decimal commas", input: "1,2,3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "zero", input: "0", want: "IDR 0"},
		{name: "hundreds", input: "999", want: "IDR 999"},
		{name: "thousands", input: "1000", want: "IDR 1.000"},
		{name: "millions", input: "3000000", want: "IDR 3.000.000"},
		{name: "fraction", input: "1234.5", want: "IDR 1.234,5"},
		{name: "rounds half away from zero", input: "10.005", want: "IDR 10,01"},
		{name: "negative", input: "-2500", want: "IDR -2.500"},
		{name: "negative rounding to zero", input: "-0.001", want: "IDR 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatThenParse(t *testing.T) {
	for _, in := range []string{"0", "7", "1500", "3000000", "1234.56", "-98765.4", "0.5"} {
		d := decimal.RequireFromString(in)
		got, ok := ParseAmount(FormatCurrency(d))
		require.True(t, ok, in)
		assert.True(t, d.Round(Precision).Equal(got), "%s -> %s", in, got)
	}
}

func TestSum(t *testing.T) {
	got := Sum("IDR 1.000.000", "oops", "", "IDR 2.500.000")
	assert.True(t, decimal.NewFromInt(3500000).Equal(got))
}
