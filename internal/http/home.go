package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/animation"
)

type HomeController struct {
	pages     *pages
	animation *animation.Store
	playerURL string
}

func NewHomeController(p *pages, store *animation.Store, playerURL string) *HomeController {
	return &HomeController{pages: p, animation: store, playerURL: playerURL}
}

func (hc *HomeController) HomePage(c *gin.Context) {
	hc.pages.render(c, http.StatusOK, "home", "/", gin.H{
		"Title":              "📚 Personal Library Management",
		"AnimationAvailable": hc.animation != nil && hc.animation.Available(),
		"PlayerURL":          hc.playerURL,
	})
}

// AnimationJSON serves the fetched animation descriptor.
func (hc *HomeController) AnimationJSON(c *gin.Context) {
	if hc.animation == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "animation not available"})
		return
	}
	data, ok := hc.animation.Get()
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "animation not available"})
		return
	}
	c.Header("Cache-Control", "public, max-age=300")
	c.Data(http.StatusOK, "application/json", data)
}
