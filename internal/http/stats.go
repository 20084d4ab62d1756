package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/charts"
	"github.com/mrlokans/library/internal/session"
)

type StatsController struct {
	pages        *pages
	sessions     *session.Manager
	chartOptions charts.Options
}

func NewStatsController(p *pages, sessions *session.Manager, assetsHost string) *StatsController {
	return &StatsController{
		pages:        p,
		sessions:     sessions,
		chartOptions: charts.Options{AssetsHost: assetsHost},
	}
}

func (sc *StatsController) StatsPage(c *gin.Context) {
	stats := sc.sessions.Library(c.Request.Context()).Stats()

	data := gin.H{
		"Title": "Library Statistics",
		"Stats": stats,
	}
	if stats.Empty() {
		data["Empty"] = flash(session.FlashWarning, "📉 No books to display statistics.")
	}

	sc.pages.render(c, http.StatusOK, "stats", "/stats", data)
}

// Chart serves the donut chart as a standalone page framed by the statistics view.
func (sc *StatsController) Chart(c *gin.Context) {
	stats := sc.sessions.Library(c.Request.Context()).Stats()

	var buf bytes.Buffer
	if err := charts.RenderReadStats(&buf, stats, sc.chartOptions); err != nil {
		if errors.Is(err, charts.ErrNoData) {
			c.String(http.StatusNotFound, "No books to display statistics.")
			return
		}
		respondInternalError(c, err, "render stats chart")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
