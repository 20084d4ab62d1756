package http

import (
	"github.com/mrlokans/library/internal/analytics"
	"github.com/mrlokans/library/internal/animation"
	"github.com/mrlokans/library/internal/database"
	"github.com/mrlokans/library/internal/session"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Sessions  *session.Manager
	Database  *database.Database
	Animation *animation.Store

	// Scheduled animation refresh reported by /health, nil when not wired
	AnimationRefresh RefreshStatus

	// CSRF protection, disabled when the secret is empty
	CSRFSecret    []byte
	SecureCookies bool

	// Request body limit in bytes, zero disables it
	MaxBodyBytes int64

	// UI
	TemplatesPath      string // Empty means the embedded templates
	SidebarImageURL    string
	AnimationPlayerURL string
	ChartAssetsHost    string

	// Optional Plausible analytics, nil disables it
	Analytics *analytics.PlausibleConfig

	// Application info
	Version string
}
