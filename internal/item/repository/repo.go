package repository

import (
	"context"
	"errors"
	"strings"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the gorm-backed item catalog repository.
func Provide() domain.Repository {
	return repo{}
}

func (repo) Insert(ctx context.Context, db *gorm.DB, item *domain.Item) error {
	return db.WithContext(ctx).Create(item).Error
}

func (repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Item, error) {
	var item domain.Item
	err := db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (repo) List(ctx context.Context, db *gorm.DB, name string, offset, limit int) ([]domain.Item, int64, error) {
	query := db.WithContext(ctx).Model(&domain.Item{})
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Item
	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Item{}, "id = ?", id).Error
}
