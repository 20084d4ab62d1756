package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/session"
)

// AddBookForm is the add view submission.
type AddBookForm struct {
	Title    string              `form:"title"`
	Author   string              `form:"author"`
	Year     int                 `form:"year" binding:"min=1800,max=2100"`
	Genre    string              `form:"genre"`
	Status   entities.ReadStatus `form:"status" binding:"omitempty,oneof=Read Unread"`
	ImageURL string              `form:"image_url" binding:"omitempty,url"`
}

func defaultAddBookForm() AddBookForm {
	return AddBookForm{Year: entities.MinYear, Status: entities.ReadStatusRead}
}

// addFormError describes every invalid field of an add submission.
func addFormError(err error) string {
	yearMessage := fmt.Sprintf("Year must be a number between %d and %d.", entities.MinYear, entities.MaxYear)

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return yearMessage
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return "Invalid book details."
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Year":
			messages = append(messages, yearMessage)
		case "Status":
			messages = append(messages, "Read status must be Read or Unread.")
		case "ImageURL":
			messages = append(messages, "Cover image must be a valid URL.")
		default:
			messages = append(messages, fe.Field()+" is invalid.")
		}
	}
	return strings.Join(messages, " ")
}

// RemoveBookForm is the remove view submission.
type RemoveBookForm struct {
	Title string `form:"title"`
}

type LibraryController struct {
	pages    *pages
	sessions *session.Manager
}

func NewLibraryController(p *pages, sessions *session.Manager) *LibraryController {
	return &LibraryController{pages: p, sessions: sessions}
}

func (lc *LibraryController) AddPage(c *gin.Context) {
	lc.renderAdd(c, http.StatusOK, defaultAddBookForm(), nil)
}

func (lc *LibraryController) AddBook(c *gin.Context) {
	form := defaultAddBookForm()
	if err := c.ShouldBind(&form); err != nil {
		lc.renderAdd(c, http.StatusBadRequest, form, flash(session.FlashError, addFormError(err)))
		return
	}

	ctx := c.Request.Context()
	lib := lc.sessions.Library(ctx)
	book := lib.Add(entities.NewBook(form.Title, form.Author, form.Year, form.Genre, form.Status, form.ImageURL))
	lc.sessions.SaveLibrary(ctx, lib)

	lc.renderAdd(c, http.StatusOK, defaultAddBookForm(),
		flash(session.FlashSuccess, fmt.Sprintf("✅ Book '%s' added successfully!", book.Title)))
}

func (lc *LibraryController) renderAdd(c *gin.Context, status int, form AddBookForm, banner *session.Flash) {
	lc.pages.render(c, status, "add", "/add", gin.H{
		"Title":    "Add a New Book",
		"Form":     form,
		"Statuses": entities.ReadStatuses,
		"MinYear":  entities.MinYear,
		"MaxYear":  entities.MaxYear,
		"Flash":    banner,
	})
}

func (lc *LibraryController) RemovePage(c *gin.Context) {
	lc.pages.render(c, http.StatusOK, "remove", "/remove", gin.H{
		"Title": "Remove a Book",
	})
}

func (lc *LibraryController) RemoveBook(c *gin.Context) {
	var form RemoveBookForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c, "invalid form submission")
		return
	}

	ctx := c.Request.Context()
	lib := lc.sessions.Library(ctx)
	removed := lib.RemoveByTitle(form.Title)

	var banner *session.Flash
	switch {
	case removed == 0:
		banner = flash(session.FlashInfo, fmt.Sprintf("No book titled '%s' found.", form.Title))
	case removed == 1:
		lc.sessions.SaveLibrary(ctx, lib)
		banner = flash(session.FlashWarning, fmt.Sprintf("❌ Book '%s' removed.", form.Title))
	default:
		lc.sessions.SaveLibrary(ctx, lib)
		banner = flash(session.FlashWarning, fmt.Sprintf("❌ Book '%s' removed (%d copies).", form.Title, removed))
	}

	lc.pages.render(c, http.StatusOK, "remove", "/remove", gin.H{
		"Title": "Remove a Book",
		"Flash": banner,
	})
}

func (lc *LibraryController) SearchPage(c *gin.Context) {
	data := gin.H{"Title": "Search for a Book"}

	query, submitted := c.GetQuery("q")
	data["Query"] = query
	data["Submitted"] = submitted
	if submitted {
		results := lc.sessions.Library(c.Request.Context()).Search(query)
		data["Results"] = results
		if len(results) == 0 {
			data["Flash"] = flash(session.FlashError, "❌ No books found.")
		}
	}

	lc.pages.render(c, http.StatusOK, "search", "/search", data)
}

func (lc *LibraryController) BooksPage(c *gin.Context) {
	books := lc.sessions.Library(c.Request.Context()).Books()

	data := gin.H{
		"Title": "Your Library",
		"Books": books,
	}
	if len(books) == 0 {
		data["Empty"] = flash(session.FlashWarning, "⚠️ No books in the library.")
	}

	lc.pages.render(c, http.StatusOK, "books", "/books", data)
}

// ToggleRead flips the read flag of one book and sends the browser back to the list.
func (lc *LibraryController) ToggleRead(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	lib := lc.sessions.Library(ctx)
	if _, found := lib.ToggleRead(id); !found {
		respondNotFound(c, "book")
		return
	}
	lc.sessions.SaveLibrary(ctx, lib)

	redirectSeeOther(c, "/books")
}

func (lc *LibraryController) DeleteBook(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	lib := lc.sessions.Library(ctx)
	book, found := lib.Get(id)
	if !found {
		respondNotFound(c, "book")
		return
	}
	lib.Remove(id)
	lc.sessions.SaveLibrary(ctx, lib)
	lc.sessions.PutFlash(ctx, session.Flash{
		Kind:    session.FlashWarning,
		Message: fmt.Sprintf("❌ Book '%s' removed.", book.Title),
	})

	redirectSeeOther(c, "/books")
}
