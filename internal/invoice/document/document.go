// Package document builds the immutable view model a renderer consumes.
// Building is pure: no storage access, no clock, no side effects.
package document

import (
	"fmt"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
)

// Party is one side of the document header, already flattened for display.
// A zero Party renders as an empty box, which is how documents whose client
// was deleted keep their layout.
type Party struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Line is one priced row ready for the item table.
type Line struct {
	Name       string
	Details    string
	UnitType   string
	Price      float64
	Quantity   int
	Discount   int
	Tax        int
	Base       float64
	Discounted float64
	Final      float64
}

// Totals is the footer summary block.
type Totals struct {
	Subtotal      float64
	TotalDiscount float64
	TotalTax      float64
	GrandTotal    float64
}

// Document is the complete renderable model of one invoice or estimate.
type Document struct {
	Title    string
	Number   int64
	Kind     domain.Kind
	IssuedAt string
	DueAt    string

	From   Party
	BillTo Party
	Logo   []byte
	Photo  []byte

	Currency string
	Symbol   string
	Notes    string

	Paid      bool
	PayMethod string

	Lines  []Line
	Totals Totals
}

// dateLayout matches the short date style printed on documents.
const dateLayout = "Jan 2, 2006"

// Build assembles the view model from the persisted record, the business
// profile and the resolved currency symbol. A nil client leaves the bill-to
// party empty; a nil profile leaves the from party empty.
func Build(inv *domain.Invoice, profile *profiledomain.Profile, client *clientdomain.Client, symbol string) Document {
	doc := Document{
		Title:    fmt.Sprintf("%s #%d", inv.Kind.Label(), inv.Number),
		Number:   inv.Number,
		Kind:     inv.Kind,
		IssuedAt: inv.IssuedAt.Format(dateLayout),
		Currency: inv.Currency,
		Symbol:   symbol,
		Photo:    inv.Photo,
		Paid:     inv.Paid,
	}
	if inv.DueAt != nil {
		doc.DueAt = inv.DueAt.Format(dateLayout)
	}
	if inv.Notes != nil {
		doc.Notes = *inv.Notes
	}
	if inv.PayMethod != nil {
		doc.PayMethod = string(*inv.PayMethod)
	}
	if profile != nil {
		doc.From = Party{
			Name:    profile.Name,
			Email:   deref(profile.Email),
			Phone:   deref(profile.Phone),
			Address: deref(profile.Address),
		}
		doc.Logo = profile.Logo
	}
	if client != nil {
		doc.BillTo = Party{
			Name:    client.Name,
			Email:   deref(client.Email),
			Phone:   deref(client.Phone),
			Address: deref(client.Address),
		}
	}

	doc.Lines = make([]Line, 0, len(inv.Items))
	for _, item := range inv.Items {
		doc.Lines = append(doc.Lines, Line{
			Name:       item.Name,
			Details:    deref(item.Details),
			UnitType:   deref(item.UnitType),
			Price:      item.Price,
			Quantity:   item.Quantity,
			Discount:   item.Discount,
			Tax:        item.Tax,
			Base:       item.Base(),
			Discounted: item.DiscountedAmount(),
			Final:      item.Final(),
		})
	}
	doc.Totals = Totals{
		Subtotal:      domain.Subtotal(inv.Items),
		TotalDiscount: domain.TotalDiscount(inv.Items),
		TotalTax:      domain.TotalTax(inv.Items),
		GrandTotal:    domain.GrandTotal(inv.Items),
	}
	return doc
}

// Amount formats a monetary value with the document's currency symbol,
// rounded half-up to two decimals for display only.
func (d Document) Amount(value float64) string {
	if d.Symbol == "" {
		return fmt.Sprintf("%.2f %s", value, d.Currency)
	}
	return fmt.Sprintf("%s%.2f", d.Symbol, value)
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
