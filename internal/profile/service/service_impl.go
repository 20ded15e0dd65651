package service

import (
	"context"
	"strings"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
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
		log:   p.Log.Named("profile.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (*domain.Response, error) {
	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	resp := toResponse(profile)
	return &resp, nil
}

func (s *Service) GetRecord(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Find(ctx, s.db)
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}

	profile.Name = name
	profile.Email = optional(req.Email)
	profile.Phone = optional(req.Phone)
	profile.Address = optional(req.Address)
	if err := s.repo.Update(ctx, s.db, profile); err != nil {
		return nil, err
	}
	resp := toResponse(profile)
	return &resp, nil
}

func (s *Service) SetLogo(ctx context.Context, logo []byte) error {
	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrProfileNotFound
	}
	profile.Logo = logo
	return s.repo.Update(ctx, s.db, profile)
}

func (s *Service) SetSubscribed(ctx context.Context, subscribed bool) error {
	profile, err := s.repo.Find(ctx, s.db)
	if err != nil {
		return err
	}
	if profile == nil {
		return domain.ErrProfileNotFound
	}
	profile.IsSubscribed = subscribed
	return s.repo.Update(ctx, s.db, profile)
}

func toResponse(profile *domain.Profile) domain.Response {
	return domain.Response{
		ID:           profile.ID.String(),
		Name:         profile.Name,
		Email:        deref(profile.Email),
		Phone:        deref(profile.Phone),
		Address:      deref(profile.Address),
		HasLogo:      len(profile.Logo) > 0,
		IsSubscribed: profile.IsSubscribed,
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
