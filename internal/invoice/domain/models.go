package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Kind discriminates invoices from estimates. An estimate can become an
// invoice exactly once; the reverse transition does not exist.
type Kind string

const (
	KindInvoice  Kind = "INVOICE"
	KindEstimate Kind = "ESTIMATE"
)

// Label returns the capitalized display name used in filenames and headers.
func (k Kind) Label() string {
	if k == KindEstimate {
		return "Estimate"
	}
	return "Invoice"
}

// PaymentMethod is how a paid invoice was settled.
type PaymentMethod string

const (
	PayMethodCash   PaymentMethod = "Cash"
	PayMethodCheck  PaymentMethod = "Check"
	PayMethodBank   PaymentMethod = "Bank"
	PayMethodPayPal PaymentMethod = "PayPal"
)

// PaymentMethods is the fixed set offered by the mark-as-paid sheet.
var PaymentMethods = []PaymentMethod{PayMethodCash, PayMethodCheck, PayMethodBank, PayMethodPayPal}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PayMethodCash, PayMethodCheck, PayMethodBank, PayMethodPayPal:
		return true
	}
	return false
}

// Invoice is the persisted invoice/estimate record. Immutable after creation
// except for the paid fields and the one-way estimate conversion.
type Invoice struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	Number   int64        `gorm:"not null;uniqueIndex"`
	Kind     Kind         `gorm:"type:text;not null;default:'INVOICE'"`
	IssuedAt time.Time    `gorm:"not null"`
	DueAt    *time.Time   `gorm:"column:due_at"`

	ClientID *snowflake.ID `gorm:"index"`
	Currency string        `gorm:"type:text;not null"`
	Photo    []byte        `gorm:"type:blob"`
	Notes    *string       `gorm:"type:text"`

	Paid      bool           `gorm:"not null;default:false"`
	PayMethod *PaymentMethod `gorm:"type:text"`
	PaidAt    *time.Time     `gorm:"column:paid_at"`

	// Total is a display cache only. Read paths recompute from Items.
	Total float64 `gorm:"not null;default:0"`

	Items    []LineItem        `gorm:"foreignKey:InvoiceID;references:ID"`
	Metadata datatypes.JSONMap `gorm:"type:json"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// LineItem is one billable row of an invoice. Position fixes display order,
// which can diverge from insertion order after edits.
type LineItem struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	InvoiceID snowflake.ID `gorm:"not null;index"`
	Position  int          `gorm:"not null"`

	Name     string  `gorm:"type:text;not null"`
	Details  *string `gorm:"type:text"`
	UnitType *string `gorm:"type:text"`

	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null"`
	Discount int     `gorm:"not null;default:0"`
	Tax      int     `gorm:"not null;default:0"`
}

// TableName sets the database table name.
func (LineItem) TableName() string { return "invoice_line_items" }
