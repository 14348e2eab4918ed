package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/aurowora/compress"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"

	"github.com/rm-hull/restaurant-insights-api/internal"
	"github.com/rm-hull/restaurant-insights-api/internal/routes"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hc_config "github.com/tavsec/gin-healthcheck/config"
)

type ApiServerOptions struct {
	DbPath   string
	Port     int
	Debug    bool
	CsvPath  string
	Schedule string
	TTL      time.Duration
}

func ApiServer(opts ApiServerOptions) error {

	repo, err := bootstrap(opts.DbPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close repository: %v", err)
		}
	}()

	provider := internal.NewRepositoryProvider(repo, opts.TTL)

	if opts.CsvPath != "" {
		last, err := repo.LastImported()
		if err != nil {
			return err
		}
		if last == nil {
			if _, err := internal.Import(repo, opts.CsvPath); err != nil {
				return fmt.Errorf("initial import failed: %w", err)
			}
		} else {
			log.Printf("Using dataset imported at %s", last.Format(time.RFC3339))
		}

		c, err := internal.StartCron(repo, provider, opts.CsvPath, opts.Schedule)
		if err != nil {
			return fmt.Errorf("failed to start CRON jobs: %w", err)
		}
		defer c.Stop()
	}

	r := gin.New()

	prometheus := ginprom.New(
		ginprom.Engine(r),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/healthz"),
	)

	r.Use(
		gin.Recovery(),
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		prometheus.Instrument(),
		compress.Compress(),
		cors.Default(),
	)

	if opts.Debug {
		log.Println("WARNING: pprof endpoints are enabled and exposed. Do not run with this flag in production.")
		pprof.Register(r)
	}

	err = healthcheck.New(r, hc_config.DefaultConfig(), []checks.Check{
		repo.Check(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize healthcheck: %v", err)
	}

	v1 := r.Group("/v1/restaurants")
	v1.GET("/dashboard", routes.Dashboard(provider))
	v1.GET("/cities", routes.Cities(provider))
	v1.GET("/top", routes.Top(provider))
	v1.GET("/export", routes.Export(provider))

	addr := fmt.Sprintf(":%d", opts.Port)
	log.Printf("Starting HTTP API Server on port %d...", opts.Port)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP API Server failed to start on port %d: %v", opts.Port, err)
	}

	return nil
}
