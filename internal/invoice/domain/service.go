package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
)

type LineItemInput struct {
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	UnitType string  `json:"unit_type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Discount int     `json:"discount"`
	Tax      int     `json:"tax"`
}

type CreateRequest struct {
	Kind     Kind            `json:"kind"`
	IssuedAt time.Time       `json:"issued_at"`
	DueAt    *time.Time      `json:"due_at"`
	ClientID string          `json:"client_id"`
	Currency string          `json:"currency"`
	Photo    []byte          `json:"photo"`
	Notes    string          `json:"notes"`
	Items    []LineItemInput `json:"items"`
}

type ListRequest struct {
	pagination.Pagination
	Kind Kind  `form:"kind"`
	Paid *bool `form:"paid"`
}

type ListResponse struct {
	pagination.PageInfo
	Invoices []Response `json:"invoices"`
}

type Response struct {
	ID        string          `json:"id"`
	Number    int64           `json:"number"`
	Kind      Kind            `json:"kind"`
	IssuedAt  time.Time       `json:"issued_at"`
	DueAt     *time.Time      `json:"due_at,omitempty"`
	ClientID  string          `json:"client_id,omitempty"`
	Currency  string          `json:"currency"`
	HasPhoto  bool            `json:"has_photo"`
	Notes     string          `json:"notes,omitempty"`
	Paid      bool            `json:"paid"`
	PayMethod string          `json:"pay_method,omitempty"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	Total     float64         `json:"total"`
	Items     []LineItemInput `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	// GetRecord returns the raw persisted record for rendering paths.
	GetRecord(ctx context.Context, id string) (*Invoice, error)
	Delete(ctx context.Context, id string) error
	// MarkPaid performs the one-way Unpaid -> Paid transition.
	MarkPaid(ctx context.Context, id string, method PaymentMethod) (*Response, error)
	// ConvertToInvoice performs the one-way Estimate -> Invoice transition.
	ConvertToInvoice(ctx context.Context, id string) (*Response, error)
}

func ParseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidInvoiceID
	}
	return id, nil
}

var (
	ErrInvalidInvoiceID = errors.New("invalid_invoice_id")
	ErrInvoiceNotFound  = errors.New("invoice_not_found")
	ErrInvalidCurrency  = errors.New("invalid_currency")
	ErrInvalidKind      = errors.New("invalid_kind")
	ErrInvalidLineItem  = errors.New("invalid_line_item")
	ErrNoLineItems      = errors.New("no_line_items")
	ErrAlreadyPaid      = errors.New("invoice_already_paid")
	ErrInvalidPayMethod = errors.New("invalid_pay_method")
	ErrNotEstimate      = errors.New("not_an_estimate")
)

// ValidateLineItem rejects malformed lines at creation time so valuation and
// layout never see them.
func ValidateLineItem(in LineItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidLineItem
	}
	if in.Price <= 0 {
		return ErrInvalidLineItem
	}
	if in.Quantity <= 0 {
		return ErrInvalidLineItem
	}
	if in.Discount < 0 || in.Discount > 100 {
		return ErrInvalidLineItem
	}
	if in.Tax < 0 {
		return ErrInvalidLineItem
	}
	return nil
}
