package repository

import (
	"context"
	"errors"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the gorm-backed invoice repository.
func Provide() domain.Repository {
	return repo{}
}

func (repo) Insert(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return db.WithContext(ctx).Create(inv).Error
}

func (repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Invoice, int64, error) {
	query := db.WithContext(ctx).Model(&domain.Invoice{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var invoices []domain.Invoice
	err := query.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Order("number DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (repo) MaxNumber(ctx context.Context, db *gorm.DB) (int64, error) {
	var number int64
	err := db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&number).Error
	return number, err
}

func (repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	if err := db.WithContext(ctx).
		Where("invoice_id = ?", id).
		Delete(&domain.LineItem{}).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Delete(&domain.Invoice{}, "id = ?", id).Error
}

func (repo) UpdatePaidStatus(ctx context.Context, db *gorm.DB, inv *domain.Invoice) error {
	return db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", inv.ID).
		Updates(map[string]any{
			"paid":       inv.Paid,
			"pay_method": inv.PayMethod,
			"paid_at":    inv.PaidAt,
		}).Error
}

func (repo) UpdateKind(ctx context.Context, db *gorm.DB, id snowflake.ID, kind domain.Kind) error {
	return db.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Update("kind", kind).Error
}
