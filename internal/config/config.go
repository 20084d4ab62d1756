package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Session
		UI
		Animation
		Tasks
		Analytics
	}

	HTTP struct {
		Port         int32
		Host         string
		MaxBodyBytes int64
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string // SQLite DSN backing the session store
	}
	Session struct {
		Secret        string // hex or raw CSRF key, generated when empty
		Lifetime      time.Duration
		SecureCookies bool // Set to false for local dev without HTTPS
	}
	UI struct {
		TemplatesPath   string // Empty means embedded templates
		SidebarImageURL string
		ChartAssetsHost string
	}
	Animation struct {
		URL             string
		PlayerURL       string
		Timeout         time.Duration
		RefreshSchedule string // Cron format, empty disables refresh
	}
	Tasks struct {
		Enabled         bool
		DatabasePath    string // Empty means a temporary directory removed on shutdown
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Analytics struct {
		PlausibleDomain     string // Empty disables analytics
		PlausibleScriptURL  string
		PlausibleExtensions string // Comma-separated
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("max_body_size", 1<<20)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Session defaults
	v.SetDefault("session_secret", "")
	v.SetDefault("session_lifetime", "24h")
	v.SetDefault("secure_cookies", false)

	// UI defaults
	v.SetDefault("templates_path", "")
	v.SetDefault("sidebar_image_url", DefaultSidebarImageURL)
	v.SetDefault("chart_assets_host", DefaultChartAssetsHost)

	// Animation defaults
	v.SetDefault("animation_url", DefaultAnimationURL)
	v.SetDefault("animation_player_url", DefaultAnimationPlayerURL)
	v.SetDefault("animation_timeout", "10s")
	v.SetDefault("animation_refresh_schedule", "")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("tasks_database_path", "")
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "5m")
	v.SetDefault("task_cleanup_interval", "1h")

	// Analytics defaults
	v.SetDefault("plausible_domain", "")
	v.SetDefault("plausible_script_url", "")
	v.SetDefault("plausible_extensions", "")

	return &Config{
		HTTP: HTTP{
			Port:         v.GetInt32("PORT"),
			Host:         v.GetString("HOST"),
			MaxBodyBytes: v.GetInt64("MAX_BODY_SIZE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Session: Session{
			Secret:        v.GetString("SESSION_SECRET"),
			Lifetime:      v.GetDuration("SESSION_LIFETIME"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		UI: UI{
			TemplatesPath:   v.GetString("TEMPLATES_PATH"),
			SidebarImageURL: v.GetString("SIDEBAR_IMAGE_URL"),
			ChartAssetsHost: v.GetString("CHART_ASSETS_HOST"),
		},
		Animation: Animation{
			URL:             v.GetString("ANIMATION_URL"),
			PlayerURL:       v.GetString("ANIMATION_PLAYER_URL"),
			Timeout:         v.GetDuration("ANIMATION_TIMEOUT"),
			RefreshSchedule: v.GetString("ANIMATION_REFRESH_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			DatabasePath:    v.GetString("TASKS_DATABASE_PATH"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Analytics: Analytics{
			PlausibleDomain:     v.GetString("PLAUSIBLE_DOMAIN"),
			PlausibleScriptURL:  v.GetString("PLAUSIBLE_SCRIPT_URL"),
			PlausibleExtensions: v.GetString("PLAUSIBLE_EXTENSIONS"),
		},
	}
}
