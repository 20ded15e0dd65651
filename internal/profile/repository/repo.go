package repository

import (
	"context"
	"errors"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
	"gorm.io/gorm"
)

type repo struct{}

// Provide returns the gorm-backed profile repository.
func Provide() domain.Repository {
	return repo{}
}

func (repo) Find(ctx context.Context, db *gorm.DB) (*domain.Profile, error) {
	var profile domain.Profile
	err := db.WithContext(ctx).Order("created_at ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (repo) Insert(ctx context.Context, db *gorm.DB, profile *domain.Profile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (repo) Update(ctx context.Context, db *gorm.DB, profile *domain.Profile) error {
	return db.WithContext(ctx).Save(profile).Error
}
