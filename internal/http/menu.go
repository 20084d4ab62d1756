package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MenuItem is one entry of the sidebar navigation.
type MenuItem struct {
	Label string
	Path  string
}

const (
	MenuHome   = "Home"
	MenuAdd    = "Add a Book"
	MenuRemove = "Remove a Book"
	MenuSearch = "Search for a Book"
	MenuBooks  = "Display All Books"
	MenuStats  = "Library Statistics"
)

var menu = []MenuItem{
	{Label: MenuHome, Path: "/"},
	{Label: MenuAdd, Path: "/add"},
	{Label: MenuRemove, Path: "/remove"},
	{Label: MenuSearch, Path: "/search"},
	{Label: MenuBooks, Path: "/books"},
	{Label: MenuStats, Path: "/stats"},
}

// Menu returns the navigation entries in display order.
func Menu() []MenuItem {
	items := make([]MenuItem, len(menu))
	copy(items, menu)
	return items
}

// SelectView resolves a menu label to its view.
func SelectView(label string) (MenuItem, bool) {
	for _, item := range menu {
		if item.Label == label {
			return item, true
		}
	}
	return MenuItem{}, false
}

// Navigate redirects to the view picked in the sidebar. Unknown choices land on Home.
func Navigate(c *gin.Context) {
	item, ok := SelectView(c.Query("choice"))
	if !ok {
		item = menu[0]
	}
	c.Redirect(http.StatusFound, item.Path)
}
