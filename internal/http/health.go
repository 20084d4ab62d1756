package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/animation"
	"github.com/mrlokans/library/internal/database"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// RefreshStatus reports the state of the scheduled animation refresh.
type RefreshStatus interface {
	IsRunning() bool
	NextRun() *time.Time
}

type HealthController struct {
	db        *database.Database
	animation *animation.Store
	refresh   RefreshStatus
	version   string
}

func NewHealthController(db *database.Database, store *animation.Store, refresh RefreshStatus, version string) *HealthController {
	return &HealthController{
		db:        db,
		animation: store,
		refresh:   refresh,
		version:   version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
			if n, err := h.db.ActiveSessions(); err == nil {
				checks["sessions"] = strconv.FormatInt(n, 10)
			}
		}
	} else {
		checks["database"] = "not configured"
	}

	// The animation is decorative, so its absence never makes the service unhealthy
	switch {
	case h.animation == nil:
		checks["animation"] = "not configured"
	case h.animation.Available():
		checks["animation"] = "loaded at " + h.animation.FetchedAt().Format(time.RFC3339)
	default:
		checks["animation"] = "unavailable"
	}

	switch {
	case h.refresh == nil:
		checks["animation_refresh"] = "not configured"
	case !h.refresh.IsRunning():
		checks["animation_refresh"] = "disabled"
	default:
		if next := h.refresh.NextRun(); next != nil {
			checks["animation_refresh"] = "next run at " + next.Format(time.RFC3339)
		} else {
			checks["animation_refresh"] = "scheduled"
		}
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
