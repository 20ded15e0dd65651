package client

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/repository"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
