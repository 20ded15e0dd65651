package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	clientdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/client/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/config"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/currency"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/events"
	invoicedomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/export"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/render"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/theme"
	itemdomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/item/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/observability/logger"
	profiledomain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/profile/domain"
)

type Server struct {
	cfg    config.Config
	log    *zap.Logger
	engine *gin.Engine

	clientSvc   clientdomain.Service
	itemSvc     itemdomain.Service
	invoiceSvc  invoicedomain.Service
	profileSvc  profiledomain.Service
	currencySvc *currency.Service
	resolver    *theme.Resolver
	renderer    render.Renderer
	exporter    *export.Exporter
	outbox      *events.Outbox
}

type Params struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	Engine *gin.Engine

	ClientSvc   clientdomain.Service
	ItemSvc     itemdomain.Service
	InvoiceSvc  invoicedomain.Service
	ProfileSvc  profiledomain.Service
	CurrencySvc *currency.Service
	Resolver    *theme.Resolver
	Renderer    render.Renderer
	Exporter    *export.Exporter
	Outbox      *events.Outbox
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:         p.Config,
		log:         p.Log.Named("server"),
		engine:      p.Engine,
		clientSvc:   p.ClientSvc,
		itemSvc:     p.ItemSvc,
		invoiceSvc:  p.InvoiceSvc,
		profileSvc:  p.ProfileSvc,
		currencySvc: p.CurrencySvc,
		resolver:    p.Resolver,
		renderer:    p.Renderer,
		exporter:    p.Exporter,
		outbox:      p.Outbox,
	}
}

// NewEngine builds the gin engine with the request logging middleware.
func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{"/healthz"},
	}))
	return engine
}

// RegisterAPIRoutes mounts every endpoint under /api.
func (s *Server) RegisterAPIRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.engine.Group("/api")
	{
		api.POST("/clients", s.CreateClient)
		api.GET("/clients", s.ListClients)
		api.GET("/clients/:id", s.GetClient)
		api.DELETE("/clients/:id", s.DeleteClient)

		api.POST("/items", s.CreateItem)
		api.GET("/items", s.ListItems)
		api.GET("/items/:id", s.GetItem)
		api.DELETE("/items/:id", s.DeleteItem)

		api.POST("/invoices", s.CreateInvoice)
		api.GET("/invoices", s.ListInvoices)
		api.GET("/invoices/:id", s.GetInvoice)
		api.DELETE("/invoices/:id", s.DeleteInvoice)
		api.POST("/invoices/:id/paid", s.MarkInvoicePaid)
		api.POST("/invoices/:id/convert", s.ConvertEstimate)
		api.GET("/invoices/:id/preview", s.PreviewDocument)
		api.GET("/invoices/:id/pdf", s.DownloadDocument)
		api.POST("/invoices/:id/export", s.ExportDocument)

		api.GET("/profile", s.GetProfile)
		api.PUT("/profile", s.UpdateProfile)
		api.PUT("/profile/logo", s.SetProfileLogo)

		api.GET("/currencies", s.ListCurrencies)
		api.GET("/payment-methods", s.ListPaymentMethods)
		api.GET("/themes", s.ListThemeOptions)
	}
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("http server starting", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
