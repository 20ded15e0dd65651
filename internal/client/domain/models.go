package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Client is a billed party. Address and contact fields are optional; a
// document stays renderable even when its client row was deleted.
type Client struct {
	ID      snowflake.ID `gorm:"primaryKey"`
	Name    string       `gorm:"type:text;not null"`
	Email   *string      `gorm:"type:text"`
	Phone   *string      `gorm:"type:text"`
	Address *string      `gorm:"type:text"`
	Balance int64        `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Client) TableName() string { return "clients" }
