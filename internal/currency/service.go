package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/cache"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	remoteCacheKey = "remote_currencies"
	remoteCacheTTL = 12 * time.Hour
	fetchTimeout   = 5 * time.Second
)

// Service answers currency validation and listing. Codes come from the
// built-in table plus an optional remote list fetched lazily and cached.
type Service struct {
	log     *zap.Logger
	client  *http.Client
	url     string
	remotes cache.Cache[string, map[string]string]
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

func NewService(p Params) *Service {
	return &Service{
		log:     p.Log.Named("currency.service"),
		client:  &http.Client{Timeout: fetchTimeout},
		url:     p.Config.CurrencyURL,
		remotes: cache.NewTTLCache[string, map[string]string](),
	}
}

// Validate reports whether code is an acceptable document currency.
func (s *Service) Validate(ctx context.Context, code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return false
	}
	if Known(code) {
		return true
	}
	remote := s.remoteList(ctx)
	_, ok := remote[code]
	return ok
}

// List returns all known currencies, built-in first, then remote-only codes
// sorted by code. Remote failures degrade to the built-in table.
func (s *Service) List(ctx context.Context) []Currency {
	out := Builtin()
	seen := make(map[string]bool, len(out))
	for _, c := range out {
		seen[c.Code] = true
	}

	remote := s.remoteList(ctx)
	extra := make([]Currency, 0, len(remote))
	for code, name := range remote {
		if seen[code] {
			continue
		}
		extra = append(extra, Currency{Code: code, Name: name})
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Code < extra[j].Code })
	return append(out, extra...)
}

func (s *Service) remoteList(ctx context.Context) map[string]string {
	if s.url == "" {
		return nil
	}
	if cached, ok := s.remotes.Get(remoteCacheKey); ok {
		return cached
	}

	list, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("remote currency list unavailable", zap.Error(err))
		// Negative-cache briefly so a dead endpoint does not stall every call.
		s.remotes.Set(remoteCacheKey, nil, time.Minute)
		return nil
	}
	s.remotes.Set(remoteCacheKey, list, remoteCacheTTL)
	return list
}

func (s *Service) fetch(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var list map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, err
	}
	return list, nil
}

var Module = fx.Module("currency.service",
	fx.Provide(NewService),
)
