package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Item is a reusable catalog entry. Invoices copy item fields into their own
// line rows at creation time, so later catalog edits never rewrite history.
type Item struct {
	ID       snowflake.ID `gorm:"primaryKey"`
	Name     string       `gorm:"type:text;not null"`
	Details  *string      `gorm:"type:text"`
	UnitType *string      `gorm:"type:text"`
	Price    float64      `gorm:"not null"`
	Quantity int          `gorm:"not null"`
	Discount int          `gorm:"not null;default:0"`
	Tax      int          `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Item) TableName() string { return "items" }
