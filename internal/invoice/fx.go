package invoice

import (
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/export"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/render"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/repository"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/service"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
	fx.Provide(theme.NewResolver),
	fx.Provide(render.NewRenderer),
	export.Module,
)
