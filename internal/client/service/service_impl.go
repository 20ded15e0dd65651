package service

import (
	"context"
	"strings"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
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
		log:   p.Log.Named("client.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	client := &domain.Client{
		ID:      s.genID.Generate(),
		Name:    name,
		Email:   optional(req.Email),
		Phone:   optional(req.Phone),
		Address: optional(req.Address),
	}
	if err := s.repo.Insert(ctx, s.db, client); err != nil {
		return nil, err
	}
	resp := toResponse(client)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (domain.ListResponse, error) {
	offset, limit := req.Offset(), req.Limit()
	clients, total, err := s.repo.List(ctx, s.db, req.Name, offset, limit)
	if err != nil {
		return domain.ListResponse{}, err
	}

	resp := domain.ListResponse{
		PageInfo: pagination.PageInfo{
			TotalSize:     total,
			NextPageToken: pagination.NextToken(offset, limit, len(clients)),
		},
		Clients: make([]domain.Response, 0, len(clients)),
	}
	for i := range clients {
		resp.Clients = append(resp.Clients, toResponse(&clients[i]))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return nil, err
	}
	client, err := s.repo.FindByID(ctx, s.db, parsed)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	resp := toResponse(client)
	return &resp, nil
}

func (s *Service) GetRecord(ctx context.Context, id snowflake.ID) (*domain.Client, error) {
	return s.repo.FindByID(ctx, s.db, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	parsed, err := domain.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, parsed)
}

func toResponse(client *domain.Client) domain.Response {
	return domain.Response{
		ID:        client.ID.String(),
		Name:      client.Name,
		Email:     deref(client.Email),
		Phone:     deref(client.Phone),
		Address:   deref(client.Address),
		Balance:   client.Balance,
		CreatedAt: client.CreatedAt,
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
