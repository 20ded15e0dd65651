package seed

import (
	"context"
	"errors"

	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

const defaultBusinessName = "My Business"

// EnsureDefaultProfile creates the single business profile row on first run
// so document rendering always has a from-party to read.
func EnsureDefaultProfile(db *gorm.DB, genID *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if genID == nil {
		return errors.New("seed id generator is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&profiledomain.Profile{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		return tx.Create(&profiledomain.Profile{
			ID:   genID.Generate(),
			Name: defaultBusinessName,
		}).Error
	})
}
