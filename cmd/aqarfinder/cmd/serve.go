package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aqarhub/aqarfinder/internal/api/handlers"
	"github.com/aqarhub/aqarfinder/internal/api/middleware"
	"github.com/aqarhub/aqarfinder/internal/catalog"
	"github.com/aqarhub/aqarfinder/internal/config"
	"github.com/aqarhub/aqarfinder/internal/pipeline"
	"github.com/aqarhub/aqarfinder/internal/provider"
	"github.com/aqarhub/aqarfinder/pkg/contact"
	"github.com/aqarhub/aqarfinder/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Partner credentials usually live in a .env next to the config.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	cat := catalog.New()
	pipe := pipeline.New(pipeline.WithLogger(log))

	h := handlers.New(cat, pipe,
		handlers.WithPartners(partnerProviders(cfg, log)...),
		handlers.WithContactDefaults(contact.Builder{
			CountryCode: cfg.Contact.CountryCode,
			Template:    cfg.Contact.MessageTemplate,
		}, cfg.Contact.DefaultPhone),
		handlers.WithLogger(log),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	e.GET("/healthz", h.Healthz)
	e.GET("/readyz", h.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Aqar Finder API", Version))
	handlers.RegisterRoutes(api, h)
	handlers.RegisterCSVRoutes(e, h)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// partnerProviders builds the enabled partner API adapters from config.
func partnerProviders(cfg *config.Config, log *slog.Logger) []provider.Provider {
	var partners []provider.Provider

	rl := cfg.Providers.RateLimit
	if cfg.Providers.Bayut.Enabled {
		partners = append(partners, provider.NewBayutClient(
			cfg.Providers.Bayut.BaseURL,
			cfg.Providers.Bayut.APIKey,
			provider.WithBayutRateLimit(rl.PerSecond, rl.Burst),
			provider.WithBayutLogger(log),
		))
	}
	if cfg.Providers.PropertyFinder.Enabled {
		partners = append(partners, provider.NewPropertyFinderClient(
			cfg.Providers.PropertyFinder.BaseURL,
			cfg.Providers.PropertyFinder.ClientID,
			cfg.Providers.PropertyFinder.ClientSecret,
			provider.WithPropertyFinderRateLimit(rl.PerSecond, rl.Burst),
			provider.WithPropertyFinderLogger(log),
		))
	}

	return partners
}
