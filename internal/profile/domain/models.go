package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Profile is the business identity printed on every document. The
// application keeps exactly one row; seeding creates it on first run.
type Profile struct {
	ID      snowflake.ID `gorm:"primaryKey"`
	Name    string       `gorm:"type:text;not null"`
	Email   *string      `gorm:"type:text"`
	Phone   *string      `gorm:"type:text"`
	Address *string      `gorm:"type:text"`

	// Logo holds the raw image bytes shown in the document header.
	Logo []byte `gorm:"type:blob"`

	// IsSubscribed gates the premium theme variants.
	IsSubscribed bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Profile) TableName() string { return "business_profiles" }
