package money_test

import (
	"fmt"

	"invoicegen/internal/money"
)

func ExampleParseAmount() {
	for _, s := range []string{"IDR 3.000.000", "1.500.000,50", "2.5", "abc"} {
		d, ok := money.ParseAmount(s)
		fmt.Println(d, ok)
	}

	// Output:
	// 3000000 true
	// 1500000.5 true
	// 2.5 true
	// 0 false
}

func ExampleFormatCurrency() {
	d, _ := money.ParseAmount("1234567,891")
	fmt.Println(money.FormatCurrency(d))

	// Output:
	// IDR 1.234.567,89
}
