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
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ListRequest struct {
	pagination.Pagination
	Name string `form:"name"`
}

type ListResponse struct {
	pagination.PageInfo
	Clients []Response `json:"clients"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	// GetRecord returns nil, nil when the client no longer exists, so
	// callers can render empty bill-to fields instead of failing.
	GetRecord(ctx context.Context, id snowflake.ID) (*Client, error)
	Delete(ctx context.Context, id string) error
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, client *Client) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Client, error)
	List(ctx context.Context, db *gorm.DB, name string, offset, limit int) ([]Client, int64, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

func ParseID(raw string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidClientID
	}
	return id, nil
}

var (
	ErrInvalidClientID = errors.New("invalid_client_id")
	ErrInvalidName     = errors.New("invalid_name")
	ErrClientNotFound  = errors.New("client_not_found")
)
