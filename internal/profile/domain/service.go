package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type UpdateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Response struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	HasLogo      bool   `json:"has_logo"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type Service interface {
	Get(ctx context.Context) (*Response, error)
	GetRecord(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	SetLogo(ctx context.Context, logo []byte) error
	SetSubscribed(ctx context.Context, subscribed bool) error
}

type Repository interface {
	Find(ctx context.Context, db *gorm.DB) (*Profile, error)
	Insert(ctx context.Context, db *gorm.DB, profile *Profile) error
	Update(ctx context.Context, db *gorm.DB, profile *Profile) error
}

var (
	ErrProfileNotFound = errors.New("profile_not_found")
	ErrInvalidName     = errors.New("invalid_profile_name")
)
