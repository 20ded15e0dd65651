package item

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/repository"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/service"
	"go.uber.org/fx"
)

var Module = fx.Module("item.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
