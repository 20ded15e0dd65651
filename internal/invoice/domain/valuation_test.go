package domain

import (
	"math"
	"testing"
)

func TestLineItemScenario(t *testing.T) {
	li := LineItem{Price: 100, Quantity: 2, Discount: 10, Tax: 5}

	if got := li.Base(); got != 200 {
		t.Fatalf("base = %v, want 200", got)
	}
	if got := li.DiscountedAmount(); got != 180 {
		t.Fatalf("discounted = %v, want 180", got)
	}
	if got := li.Final(); got != 189 {
		t.Fatalf("final = %v, want 189", got)
	}

	items := []LineItem{li}
	if got := Subtotal(items); got != 200 {
		t.Fatalf("subtotal = %v, want 200", got)
	}
	if got := TotalDiscount(items); got != 20 {
		t.Fatalf("total discount = %v, want 20", got)
	}
	if got := TotalTax(items); got != 9 {
		t.Fatalf("total tax = %v, want 9", got)
	}
	if got := GrandTotal(items); got != 189 {
		t.Fatalf("grand total = %v, want 189", got)
	}
}

func TestZeroDiscountZeroTaxIsExact(t *testing.T) {
	// Prices chosen to be awkward in binary floating point.
	for _, price := range []float64{0.1, 19.99, 33.33, 0.07} {
		for qty := 1; qty <= 7; qty++ {
			li := LineItem{Price: price, Quantity: qty}
			want := price * float64(qty)
			if got := li.Final(); got != want {
				t.Fatalf("final(%v x %d) = %v, want exact %v", price, qty, got, want)
			}
			if got := li.DiscountedAmount(); got != want {
				t.Fatalf("discounted(%v x %d) = %v, want exact %v", price, qty, got, want)
			}
		}
	}
}

func TestFinalMonotonicity(t *testing.T) {
	base := LineItem{Price: 57.25, Quantity: 3}

	prev := math.Inf(-1)
	for tax := 0; tax <= 50; tax += 5 {
		li := base
		li.Tax = tax
		if got := li.Final(); got < prev {
			t.Fatalf("final decreased when tax rose to %d: %v < %v", tax, got, prev)
		} else {
			prev = got
		}
	}

	prev = math.Inf(1)
	for discount := 0; discount <= 100; discount += 10 {
		li := base
		li.Discount = discount
		if got := li.Final(); got > prev {
			t.Fatalf("final increased when discount rose to %d: %v > %v", discount, got, prev)
		} else {
			prev = got
		}
	}
}

func TestGrandTotalMatchesSumOfFinals(t *testing.T) {
	items := []LineItem{
		{Price: 100, Quantity: 2, Discount: 10, Tax: 5},
		{Price: 19.99, Quantity: 1},
		{Price: 0.07, Quantity: 13, Tax: 21},
		{Price: 250, Quantity: 4, Discount: 100},
	}

	var sum float64
	for _, li := range items {
		sum += li.Final()
	}
	if got := GrandTotal(items); got != sum {
		t.Fatalf("grand total = %v, sum of finals = %v", got, sum)
	}
}

func TestValidateLineItem(t *testing.T) {
	valid := LineItemInput{Name: "Consulting", Price: 100, Quantity: 1}
	if err := ValidateLineItem(valid); err != nil {
		t.Fatalf("valid item rejected: %v", err)
	}

	cases := []struct {
		name string
		in   LineItemInput
	}{
		{"empty name", LineItemInput{Price: 10, Quantity: 1}},
		{"zero price", LineItemInput{Name: "x", Price: 0, Quantity: 1}},
		{"negative price", LineItemInput{Name: "x", Price: -1, Quantity: 1}},
		{"zero quantity", LineItemInput{Name: "x", Price: 1, Quantity: 0}},
		{"discount above 100", LineItemInput{Name: "x", Price: 1, Quantity: 1, Discount: 101}},
		{"negative discount", LineItemInput{Name: "x", Price: 1, Quantity: 1, Discount: -1}},
		{"negative tax", LineItemInput{Name: "x", Price: 1, Quantity: 1, Tax: -1}},
	}
	for _, tc := range cases {
		if err := ValidateLineItem(tc.in); err != ErrInvalidLineItem {
			t.Fatalf("%s: err = %v, want ErrInvalidLineItem", tc.name, err)
		}
	}
}
