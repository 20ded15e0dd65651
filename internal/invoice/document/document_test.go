package document

import (
	"strings"
	"testing"
	"time"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
)

func strPtr(s string) *string { return &s }

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		Number:   7,
		Kind:     domain.KindInvoice,
		IssuedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
		Items: []domain.LineItem{
			{Name: "Design", Price: 100, Quantity: 2, Discount: 10, Tax: 5},
			{Name: "Hosting", Details: strPtr("monthly"), Price: 19.99, Quantity: 1},
		},
	}
}

func TestBuildAssemblesParties(t *testing.T) {
	profile := &profiledomain.Profile{
		Name:  "Acme Studio",
		Email: strPtr("hello@acme.test"),
	}
	client := &clientdomain.Client{
		Name:    "Globex",
		Address: strPtr("1 Main St"),
	}

	doc := Build(sampleInvoice(), profile, client, "$")

	if doc.Title != "Invoice #7" {
		t.Fatalf("title = %q", doc.Title)
	}
	if doc.From.Name != "Acme Studio" || doc.From.Email != "hello@acme.test" {
		t.Fatalf("from party = %+v", doc.From)
	}
	if doc.BillTo.Name != "Globex" || doc.BillTo.Address != "1 Main St" {
		t.Fatalf("bill-to party = %+v", doc.BillTo)
	}
	if doc.IssuedAt != "Mar 14, 2025" {
		t.Fatalf("issued at = %q", doc.IssuedAt)
	}
}

func TestBuildWithDeletedClientRendersEmptyBillTo(t *testing.T) {
	doc := Build(sampleInvoice(), &profiledomain.Profile{Name: "Acme"}, nil, "$")

	if doc.BillTo != (Party{}) {
		t.Fatalf("bill-to should be empty, got %+v", doc.BillTo)
	}
	if len(doc.Lines) != 2 {
		t.Fatalf("document should still carry %d lines, got %d", 2, len(doc.Lines))
	}
}

func TestBuildTotalsMatchLineFinals(t *testing.T) {
	doc := Build(sampleInvoice(), nil, nil, "$")

	var sum float64
	for _, line := range doc.Lines {
		sum += line.Final
	}
	if doc.Totals.GrandTotal != sum {
		t.Fatalf("grand total %v != sum of finals %v", doc.Totals.GrandTotal, sum)
	}
	if doc.Totals.Subtotal != 219.99 {
		t.Fatalf("subtotal = %v, want 219.99", doc.Totals.Subtotal)
	}
}

func TestAmountFormatting(t *testing.T) {
	withSymbol := Document{Symbol: "$", Currency: "USD"}
	if got := withSymbol.Amount(189); got != "$189.00" {
		t.Fatalf("amount = %q", got)
	}

	// Unresolved currency renders without a symbol, never errors.
	noSymbol := Document{Currency: "XXX"}
	if got := noSymbol.Amount(12.5); !strings.Contains(got, "12.50") || !strings.Contains(got, "XXX") {
		t.Fatalf("amount = %q", got)
	}
}

func TestBuildZeroItems(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil

	doc := Build(inv, nil, nil, "")
	if len(doc.Lines) != 0 {
		t.Fatalf("lines = %d, want 0", len(doc.Lines))
	}
	if doc.Totals.GrandTotal != 0 || doc.Totals.Subtotal != 0 {
		t.Fatalf("totals should be zero, got %+v", doc.Totals)
	}
}
