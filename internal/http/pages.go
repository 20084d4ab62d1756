package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/session"
)

// pages renders full views: the layout needs the menu, the active entry,
// the CSRF field and any pending flash on every page.
type pages struct {
	sessions        *session.Manager
	sidebarImageURL string
	analyticsScript template.HTML
}

func newPages(sessions *session.Manager, sidebarImageURL string, analyticsScript template.HTML) *pages {
	return &pages{sessions: sessions, sidebarImageURL: sidebarImageURL, analyticsScript: analyticsScript}
}

// render fills the layout fields and renders the named template.
// A "Flash" already present in data wins over the one pending in the session.
func (p *pages) render(c *gin.Context, status int, name, active string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Menu"] = Menu()
	data["Active"] = active
	data["SidebarImageURL"] = p.sidebarImageURL
	data["AnalyticsScript"] = p.analyticsScript
	data["CSRFField"] = session.CSRFTokenField(c)

	if _, ok := data["Flash"]; !ok {
		if flash, ok := p.sessions.PopFlash(c.Request.Context()); ok {
			data["Flash"] = &flash
		}
	}

	c.HTML(status, name, data)
}

func flash(kind session.FlashKind, message string) *session.Flash {
	return &session.Flash{Kind: kind, Message: message}
}
