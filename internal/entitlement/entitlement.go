package entitlement

import (
	"context"
	"time"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/cache"
	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const cacheTTL = 30 * time.Second

// Service answers whether the business may use premium theme variants.
type Service interface {
	IsEntitled(ctx context.Context) (bool, error)
}

type Params struct {
	fx.In

	Log     *zap.Logger
	Profile profiledomain.Service
}

type service struct {
	log     *zap.Logger
	profile profiledomain.Service
	cached  cache.Cache[string, bool]
}

func NewService(p Params) Service {
	return &service{
		log:     p.Log.Named("entitlement.service"),
		profile: p.Profile,
		cached:  cache.NewTTLCache[string, bool](),
	}
}

func (s *service) IsEntitled(ctx context.Context) (bool, error) {
	if entitled, ok := s.cached.Get("subscribed"); ok {
		return entitled, nil
	}

	profile, err := s.profile.GetRecord(ctx)
	if err != nil {
		return false, err
	}
	entitled := profile != nil && profile.IsSubscribed
	s.cached.Set("subscribed", entitled, cacheTTL)
	return entitled, nil
}

var Module = fx.Module("entitlement.service",
	fx.Provide(NewService),
)
