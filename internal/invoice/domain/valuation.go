package domain

// Line item valuation. All arithmetic stays in float64 with no intermediate
// rounding; two-decimal rounding happens only when figures are formatted for
// display.

// Base is the undiscounted, untaxed amount of one line.
func (li LineItem) Base() float64 {
	return li.Price * float64(li.Quantity)
}

// DiscountedAmount applies the line's percent discount to its base.
func (li LineItem) DiscountedAmount() float64 {
	if li.Discount == 0 {
		return li.Base()
	}
	return li.Base() * (1 - float64(li.Discount)/100)
}

// Final applies tax on top of the discounted amount.
func (li LineItem) Final() float64 {
	discounted := li.DiscountedAmount()
	if li.Tax == 0 {
		return discounted
	}
	return discounted * (1 + float64(li.Tax)/100)
}

// Subtotal sums line bases before discount and tax.
func Subtotal(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Base()
	}
	return total
}

// TotalDiscount sums the absolute discount amounts across lines.
func TotalDiscount(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Base() * float64(li.Discount) / 100
	}
	return total
}

// TotalTax sums the absolute tax amounts across lines. Tax applies to the
// discounted amount, matching the per-line Final computation.
func TotalTax(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.DiscountedAmount() * float64(li.Tax) / 100
	}
	return total
}

// GrandTotal sums the final amounts of all lines. Every read path derives
// the document total through this; the stored total is never trusted.
func GrandTotal(items []LineItem) float64 {
	var total float64
	for _, li := range items {
		total += li.Final()
	}
	return total
}
