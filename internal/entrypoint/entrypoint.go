package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/analytics"
	"github.com/mrlokans/library/internal/animation"
	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/database"
	http_controllers "github.com/mrlokans/library/internal/http"
	"github.com/mrlokans/library/internal/scheduler"
	"github.com/mrlokans/library/internal/session"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Personal Library v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	sessions := session.NewManager(sqlDB, cfg.Session)

	csrfSecret, err := resolveCSRFSecret(cfg.Session.Secret)
	if err != nil {
		log.Fatalf("Failed to generate CSRF secret: %v", err)
	}

	// Fetch the home view animation in the background
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	store := animation.NewStore()
	loader := animation.NewLoader(animation.NewClient(cfg.Animation.Timeout), store)

	fetcher, err := startAnimationFetcher(bgCtx, cfg, loader)
	if err != nil {
		log.Fatalf("Failed to initialize task queue: %v", err)
	}
	defer fetcher.Close()

	refresher := scheduler.NewAnimationRefreshScheduler(cfg.Animation.RefreshSchedule, fetcher.Refresh)
	if err := refresher.Start(bgCtx); err != nil {
		log.Printf("WARNING: animation refresh disabled: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Sessions:           sessions,
		Database:           db,
		Animation:          store,
		AnimationRefresh:   refresher,
		CSRFSecret:         csrfSecret,
		SecureCookies:      cfg.Session.SecureCookies,
		MaxBodyBytes:       cfg.HTTP.MaxBodyBytes,
		TemplatesPath:      cfg.UI.TemplatesPath,
		SidebarImageURL:    cfg.UI.SidebarImageURL,
		AnimationPlayerURL: cfg.Animation.PlayerURL,
		ChartAssetsHost:    cfg.UI.ChartAssetsHost,
		Analytics:          analytics.NewPlausibleConfig(cfg.Analytics),
		Version:            version,
	}

	router, err := http_controllers.NewRouter(routerCfg)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	Serve(router, cfg, func(ctx context.Context) {
		refresher.Stop()
		fetcher.Stop(ctx)
		bgCancel()
	})
}

// resolveCSRFSecret decodes the configured secret or generates one for this process.
func resolveCSRFSecret(configured string) ([]byte, error) {
	if configured != "" {
		return session.DecodeSecret(configured), nil
	}

	secret, err := session.GenerateSecret()
	if err != nil {
		return nil, err
	}
	log.Printf("Generated session secret (set SESSION_SECRET to persist)")
	return session.DecodeSecret(secret), nil
}
