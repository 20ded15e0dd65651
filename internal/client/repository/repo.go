package repository

import (
	"context"
	"errors"
	"strings"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the gorm-backed client repository.
func Provide() domain.Repository {
	return repo{}
}

func (repo) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Create(client).Error
}

func (repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).First(&client, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (repo) List(ctx context.Context, db *gorm.DB, name string, offset, limit int) ([]domain.Client, int64, error) {
	query := db.WithContext(ctx).Model(&domain.Client{})
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where("name LIKE ?", name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []domain.Client
	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Client{}, "id = ?", id).Error
}
