package migration

import (
	"context"
	"errors"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/events"
	invoicedomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	itemdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/domain"
	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Run applies the schema. The gorm models are the single source of truth for
// the local sqlite file; AutoMigrate only adds missing tables and columns.
func Run(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}
	return db.AutoMigrate(
		&profiledomain.Profile{},
		&clientdomain.Client{},
		&itemdomain.Item{},
		&invoicedomain.Invoice{},
		&invoicedomain.LineItem{},
		&events.DocumentEvent{},
	)
}

var Module = fx.Module("migration",
	fx.Invoke(func(lc fx.Lifecycle, db *gorm.DB) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return Run(db)
			},
		})
	}),
)
