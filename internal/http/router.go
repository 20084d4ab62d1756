package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/analytics"
	"github.com/mrlokans/library/internal/session"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	tmpl, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(BodySizeLimitMiddleware(cfg.MaxBodyBytes))

	// Apply security headers to all responses
	router.Use(session.SecurityHeadersMiddleware(cfg.AnimationPlayerURL, cfg.ChartAssetsHost, cfg.Analytics.EffectiveScriptURL()))
	if cfg.SecureCookies {
		router.Use(session.StrictTransportSecurityMiddleware())
	}

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(session.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by CSRF's request replacement
	router.Use(cfg.Sessions.LoadSave())

	router.SetHTMLTemplate(tmpl)

	p := newPages(cfg.Sessions, cfg.SidebarImageURL, analytics.GenerateScriptTag(cfg.Analytics))
	health := NewHealthController(cfg.Database, cfg.Animation, cfg.AnimationRefresh, cfg.Version)
	home := NewHomeController(p, cfg.Animation, cfg.AnimationPlayerURL)
	books := NewLibraryController(p, cfg.Sessions)
	stats := NewStatsController(p, cfg.Sessions, cfg.ChartAssetsHost)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", Ping)

	// Views
	router.GET("/", home.HomePage)
	router.GET("/animation.json", home.AnimationJSON)
	router.GET("/navigate", Navigate)

	router.GET("/add", books.AddPage)
	router.POST("/add", books.AddBook)
	router.GET("/remove", books.RemovePage)
	router.POST("/remove", books.RemoveBook)
	router.GET("/search", books.SearchPage)
	router.GET("/books", books.BooksPage)
	router.POST("/books/:id/toggle", books.ToggleRead)
	router.POST("/books/:id/delete", books.DeleteBook)

	router.GET("/stats", stats.StatsPage)
	router.GET("/stats/chart", stats.Chart)

	return router, nil
}
