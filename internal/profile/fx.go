package profile

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/repository"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/service"
	"go.uber.org/fx"
)

var Module = fx.Module("profile.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
