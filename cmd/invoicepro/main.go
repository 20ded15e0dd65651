// @title           Estimate Invoice Pro API
// @version         1.0
// @description     Invoice and estimate document engine with PDF export

// @host      localhost:8080
// @BasePath  /api
// @Schemes 	http

package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/client"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/clock"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/config"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/currency"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/entitlement"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/events"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/item"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/migration"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/observability/logger"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/seed"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/server"
	"github.com/WotanCode88/Estimate-Invoice-Pro/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		fx.Provide(events.NewOutbox),
		currency.Module,
		profile.Module,
		entitlement.Module,
		client.Module,
		item.Module,
		invoice.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(lc fx.Lifecycle, database *gorm.DB, genID *snowflake.Node) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					return seed.EnsureDefaultProfile(database, genID)
				},
			})
		}),
		fx.Invoke(func(s *server.Server) {
			s.RegisterAPIRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
