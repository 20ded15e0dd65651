package service

import (
	"context"
	"strings"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func NewService(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("item.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	if err := domain.Validate(req); err != nil {
		return nil, err
	}

	item := &domain.Item{
		ID:       s.genID.Generate(),
		Name:     strings.TrimSpace(req.Name),
		Details:  optional(req.Details),
		UnitType: optional(req.UnitType),
		Price:    req.Price,
		Quantity: req.Quantity,
		Discount: req.Discount,
		Tax:      req.Tax,
	}
	if err := s.repo.Insert(ctx, s.db, item); err != nil {
		return nil, err
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	offset, limit := req.Offset(), req.Limit()
	items, total, err := s.repo.List(ctx, s.db, req.Name, offset, limit)
	if err != nil {
		return domain.ListResponse{}, err
	}

	resp := domain.ListResponse{
		PageInfo: pagination.PageInfo{
			TotalSize:     total,
			NextPageToken: pagination.NextToken(offset, limit, len(items)),
		},
		Items: make([]domain.Response, 0, len(items)),
	}
	for i := range items {
		resp.Items = append(resp.Items, toResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, parsed)
}

func toResponse(item *domain.Item) domain.Response {
	return domain.Response{
		ID:        item.ID.String(),
		Name:      item.Name,
		Details:   deref(item.Details),
		UnitType:  deref(item.UnitType),
		Price:     item.Price,
		Quantity:  item.Quantity,
		Discount:  item.Discount,
		Tax:       item.Tax,
		CreatedAt: item.CreatedAt,
	}
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
