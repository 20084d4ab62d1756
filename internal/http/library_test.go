package http

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertReadCount(t *testing.T, b *browser, read, percent int) {
	t.Helper()
	w := b.get("/stats")
	assert.Contains(t, w.Body.String(), fmt.Sprintf("<strong>%d</strong>Read (%d%%)", read, percent))
}

func TestLibraryController_AddPage(t *testing.T) {
	app := newTestApp(t, nil)

	w := app.browser(t).get("/add")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `name="year" min="1800" max="2100" step="1" value="1800"`)
	assert.Contains(t, body, `value="Read" checked`)
	assert.NotContains(t, body, `value="Unread" checked`)
}

func TestLibraryController_AddBook(t *testing.T) {
	t.Run("appends the book and confirms", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)

		w := b.post("/add", url.Values{
			"title":  {"Dune"},
			"author": {"Frank Herbert"},
			"year":   {"1965"},
			"genre":  {"Sci-Fi"},
			"status": {"Unread"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assertPageContains(t, w, "✅ Book 'Dune' added successfully!")
		// Form is reset after a successful submission
		assert.Contains(t, w.Body.String(), `id="title" name="title" value=""`)

		ids := b.bookIDs()
		require.Len(t, ids, 3)

		books := b.get("/books")
		assertPageContains(t, books, "Dune")
		assertPageContains(t, books, "Frank Herbert")
		assert.Contains(t, books.Body.String(), "/books/"+ids[2]+"/toggle")
	})

	t.Run("status defaults to read", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)
		b.post("/remove", url.Values{"title": {"The Great Gatsby"}})
		b.post("/remove", url.Values{"title": {"To Kill a Mockingbird"}})

		w := b.post("/add", url.Values{"title": {"Emma"}, "year": {"1815"}})
		require.Equal(t, http.StatusOK, w.Code)

		assertReadCount(t, b, 1, 100)
	})

	t.Run("accepts the year bounds", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)

		assert.Equal(t, http.StatusOK, b.post("/add", url.Values{"title": {"Old"}, "year": {"1800"}}).Code)
		assert.Equal(t, http.StatusOK, b.post("/add", url.Values{"title": {"New"}, "year": {"2100"}}).Code)
		assert.Len(t, b.bookIDs(), 4)
	})

	t.Run("rejects invalid input without adding", func(t *testing.T) {
		const (
			yearMsg   = "Year must be a number between 1800 and 2100."
			statusMsg = "Read status must be Read or Unread."
			coverMsg  = "Cover image must be a valid URL."
		)

		tests := []struct {
			name    string
			form    url.Values
			want    []string
			notWant []string
		}{
			{"year below range", url.Values{"title": {"Old"}, "year": {"1799"}}, []string{yearMsg}, []string{statusMsg, coverMsg}},
			{"year above range", url.Values{"title": {"Future"}, "year": {"2101"}}, []string{yearMsg}, []string{statusMsg, coverMsg}},
			{"non-numeric year", url.Values{"title": {"Dune"}, "year": {"nineteen"}}, []string{yearMsg}, []string{statusMsg, coverMsg}},
			{"unknown status", url.Values{"title": {"Dune"}, "year": {"1965"}, "status": {"Maybe"}}, []string{statusMsg}, []string{yearMsg, coverMsg}},
			{"malformed cover URL", url.Values{"title": {"Dune"}, "year": {"1965"}, "image_url": {"not a url"}}, []string{coverMsg}, []string{yearMsg, statusMsg}},
			{"year and cover both invalid", url.Values{"title": {"Dune"}, "year": {"1700"}, "image_url": {"not a url"}}, []string{yearMsg, coverMsg}, []string{statusMsg}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app := newTestApp(t, nil)
				b := app.browser(t)

				w := b.post("/add", tt.form)

				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), `class="banner banner-error"`)
				for _, msg := range tt.want {
					assert.Contains(t, w.Body.String(), msg)
				}
				for _, msg := range tt.notWant {
					assert.NotContains(t, w.Body.String(), msg)
				}
				assert.Len(t, b.bookIDs(), 2)
			})
		}
	})

	t.Run("renders the cover when given", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)

		b.post("/add", url.Values{"title": {"Dune"}, "year": {"1965"}, "image_url": {"https://covers.example.com/dune.jpg"}})

		assert.Contains(t, b.get("/books").Body.String(), `src="https://covers.example.com/dune.jpg"`)
	})
}

func TestLibraryController_RemoveBook(t *testing.T) {
	t.Run("removes a title present once", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)

		w := b.post("/remove", url.Values{"title": {"the great gatsby"}})

		require.Equal(t, http.StatusOK, w.Code)
		assertPageContains(t, w, "❌ Book 'the great gatsby' removed.")
		assert.Contains(t, w.Body.String(), `class="banner banner-warning"`)
		assert.Len(t, b.bookIDs(), 1)
	})

	t.Run("removes every duplicate", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)
		b.post("/add", url.Values{"title": {"Dune"}, "year": {"1965"}})
		b.post("/add", url.Values{"title": {"DUNE"}, "year": {"1965"}})

		w := b.post("/remove", url.Values{"title": {"Dune"}})

		assertPageContains(t, w, "❌ Book 'Dune' removed (2 copies).")
		assert.Len(t, b.bookIDs(), 2)
	})

	t.Run("absent title leaves the library unchanged", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)

		w := b.post("/remove", url.Values{"title": {"Moby Dick"}})

		require.Equal(t, http.StatusOK, w.Code)
		assertPageContains(t, w, "No book titled 'Moby Dick' found.")
		assert.Contains(t, w.Body.String(), `class="banner banner-info"`)
		assert.Len(t, b.bookIDs(), 2)
	})
}

func TestLibraryController_SearchPage(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)

	t.Run("shows only the form without a query", func(t *testing.T) {
		w := b.get("/search")

		require.Equal(t, http.StatusOK, w.Code)
		assertPageNotContains(t, w, "❌ No books found.")
		assertPageNotContains(t, w, "The Great Gatsby")
	})

	t.Run("matches title case-insensitively", func(t *testing.T) {
		w := b.get("/search?q=GATSBY")

		assertPageContains(t, w, "The Great Gatsby - F. Scott Fitzgerald (1925) [Fiction]")
		assertPageNotContains(t, w, "To Kill a Mockingbird")
	})

	t.Run("matches author", func(t *testing.T) {
		w := b.get("/search?q=harper")

		assertPageContains(t, w, "To Kill a Mockingbird - Harper Lee (1960) [Fiction]")
	})

	t.Run("reports no matches", func(t *testing.T) {
		w := b.get("/search?q=tolkien")

		require.Equal(t, http.StatusOK, w.Code)
		assertPageContains(t, w, "❌ No books found.")
	})

	t.Run("empty query lists every book", func(t *testing.T) {
		w := b.get("/search?q=")

		assertPageContains(t, w, "The Great Gatsby - ")
		assertPageContains(t, w, "To Kill a Mockingbird - ")
	})
}

func TestLibraryController_BooksPage(t *testing.T) {
	t.Run("lists the seeded books with badges", func(t *testing.T) {
		app := newTestApp(t, nil)

		w := app.browser(t).get("/books")

		require.Equal(t, http.StatusOK, w.Code)
		assertPageContains(t, w, "The Great Gatsby")
		assertPageContains(t, w, "To Kill a Mockingbird")
		assertPageContains(t, w, "✅ Read")
		assertPageContains(t, w, "❌ Unread")
		assertPageNotContains(t, w, "⚠️ No books in the library.")
	})

	t.Run("warns when empty", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)
		b.post("/remove", url.Values{"title": {"The Great Gatsby"}})
		b.post("/remove", url.Values{"title": {"To Kill a Mockingbird"}})

		w := b.get("/books")

		assertPageContains(t, w, "⚠️ No books in the library.")
	})
}

func TestLibraryController_ToggleRead(t *testing.T) {
	t.Run("flips the flag and redirects to the list", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)
		ids := b.bookIDs()
		require.Len(t, ids, 2)

		w := b.post("/books/"+ids[0]+"/toggle", nil)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/books", w.Header().Get("Location"))
		assertReadCount(t, b, 2, 100)

		b.post("/books/"+ids[0]+"/toggle", nil)
		assertReadCount(t, b, 1, 50)
	})

	t.Run("affects only the addressed duplicate", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)
		b.post("/remove", url.Values{"title": {"To Kill a Mockingbird"}})
		b.post("/add", url.Values{"title": {"The Great Gatsby"}, "year": {"1925"}, "status": {"Unread"}})
		ids := b.bookIDs()
		require.Len(t, ids, 2)

		b.post("/books/"+ids[1]+"/toggle", nil)

		assert.Equal(t, ids, b.bookIDs())
		w := b.get("/books")
		assertPageContains(t, w, "Mark as Read")
		assertPageContains(t, w, "Mark as Unread")
		assertReadCount(t, b, 1, 50)
	})

	t.Run("malformed ID", func(t *testing.T) {
		app := newTestApp(t, nil)
		w := app.browser(t).post("/books/not-a-uuid/toggle", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown ID", func(t *testing.T) {
		app := newTestApp(t, nil)
		b := app.browser(t)
		b.get("/books")

		w := b.post("/books/"+uuid.NewString()+"/toggle", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assertReadCount(t, b, 1, 50)
	})
}

func TestLibraryController_DeleteBook(t *testing.T) {
	app := newTestApp(t, nil)
	b := app.browser(t)
	ids := b.bookIDs()
	require.Len(t, ids, 2)

	w := b.post("/books/"+ids[0]+"/delete", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/books", w.Header().Get("Location"))

	page := b.get("/books")
	assertPageContains(t, page, "❌ Book 'The Great Gatsby' removed.")
	assert.Equal(t, []string{ids[1]}, b.bookIDs())

	// The flash is shown once
	assertPageNotContains(t, b.get("/books"), "❌ Book 'The Great Gatsby' removed.")

	w = b.post("/books/"+ids[0]+"/delete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
