package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type CreateRequest struct {
	Name     string  `json:"name"`
	Details  string  `json:"details"`
	UnitType string  `json:"unit_type"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Discount int     `json:"discount"`
	Tax      int     `json:"tax"`
}

type ListRequest struct {
	pagination.Pagination
	Name string `form:"name"`
}

type ListResponse struct {
	pagination.PageInfo
	Items []Response `json:"items"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Details   string    `json:"details,omitempty"`
	UnitType  string    `json:"unit_type,omitempty"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Discount  int       `json:"discount"`
	Tax       int       `json:"tax"`
	CreatedAt time.Time `json:"created_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, item *Item) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Item, error)
	List(ctx context.Context, db *gorm.DB, name string, offset, limit int) ([]Item, int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

func ParseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidItemID
	}
	return id, nil
}

var (
	ErrInvalidItemID = errors.New("invalid_item_id")
	ErrItemNotFound  = errors.New("item_not_found")
	ErrInvalidItem   = errors.New("invalid_item")
)

// Validate rejects malformed items at creation time: empty name,
// non-positive price or quantity, discount outside 0..100, negative tax.
func Validate(req CreateRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidItem
	}
	if req.Price <= 0 {
		return ErrInvalidItem
	}
	if req.Quantity <= 0 {
		return ErrInvalidItem
	}
	if req.Discount < 0 || req.Discount > 100 {
		return ErrInvalidItem
	}
	if req.Tax < 0 {
		return ErrInvalidItem
	}
	return nil
}
