package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListFilter struct {
	Kind   Kind
	Paid   *bool
	Offset int
	Limit  int
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, inv *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Invoice, int64, error)
	// MaxNumber returns the highest stored document number, 0 when empty.
	MaxNumber(ctx context.Context, db *gorm.DB) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	// UpdatePaidStatus is the narrow write-back for the paid transition.
	UpdatePaidStatus(ctx context.Context, db *gorm.DB, inv *Invoice) error
	// UpdateKind is the narrow write-back for estimate conversion.
	UpdateKind(ctx context.Context, db *gorm.DB, id snowflake.ID, kind Kind) error
}
