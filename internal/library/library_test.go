package library

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func titles(books []entities.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestSeeded(t *testing.T) {
	lib := Seeded()

	require.Equal(t, 2, lib.Len())
	books := lib.Books()
	assert.Equal(t, "The Great Gatsby", books[0].Title)
	assert.False(t, books[0].Read)
	assert.Equal(t, "To Kill a Mockingbird", books[1].Title)
	assert.True(t, books[1].Read)

	for _, b := range books {
		assert.NotEqual(t, uuid.Nil, b.ID)
		assert.True(t, b.HasCover())
	}

	stats := lib.Stats()
	assert.Equal(t, entities.Stats{Total: 2, Read: 1, Unread: 1}, stats)
}

func TestSeeded_ReturnsIndependentLibraries(t *testing.T) {
	a := Seeded()
	b := Seeded()

	a.RemoveByTitle("The Great Gatsby")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Len())
}

func TestAdd(t *testing.T) {
	t.Run("appends exactly one record with submitted fields", func(t *testing.T) {
		lib := New()
		book := entities.NewBook("Dune", "Frank Herbert", 1965, "Sci-Fi", entities.ReadStatusRead, "")

		stored := lib.Add(book)

		require.Equal(t, 1, lib.Len())
		got := lib.Books()[0]
		assert.Equal(t, stored, got)
		assert.Equal(t, "Dune", got.Title)
		assert.Equal(t, "Frank Herbert", got.Author)
		assert.Equal(t, 1965, got.Year)
		assert.Equal(t, "Sci-Fi", got.Genre)
		assert.True(t, got.Read)
		assert.Empty(t, got.ImageURL)
	})

	t.Run("assigns an ID when missing", func(t *testing.T) {
		lib := New()
		stored := lib.Add(entities.Book{Title: "No ID"})
		assert.NotEqual(t, uuid.Nil, stored.ID)
	})

	t.Run("keeps an existing ID", func(t *testing.T) {
		lib := New()
		id := uuid.New()
		stored := lib.Add(entities.Book{ID: id, Title: "With ID"})
		assert.Equal(t, id, stored.ID)
	})

	t.Run("does not deduplicate", func(t *testing.T) {
		lib := New()
		lib.Add(entities.Book{Title: "Same"})
		lib.Add(entities.Book{Title: "Same"})
		assert.Equal(t, 2, lib.Len())
	})
}

func TestRemoveByTitle(t *testing.T) {
	t.Run("removes a title present once", func(t *testing.T) {
		lib := Seeded()

		removed := lib.RemoveByTitle("The Great Gatsby")

		assert.Equal(t, 1, removed)
		assert.Equal(t, []string{"To Kill a Mockingbird"}, titles(lib.Books()))
	})

	t.Run("removes every case-insensitive match", func(t *testing.T) {
		lib := New(
			entities.Book{Title: "Dune"},
			entities.Book{Title: "Emma"},
			entities.Book{Title: "DUNE"},
		)

		removed := lib.RemoveByTitle("dune")

		assert.Equal(t, 2, removed)
		assert.Equal(t, []string{"Emma"}, titles(lib.Books()))
	})

	t.Run("absent title leaves the library unchanged", func(t *testing.T) {
		lib := Seeded()

		removed := lib.RemoveByTitle("Moby Dick")

		assert.Zero(t, removed)
		assert.Equal(t, 2, lib.Len())
	})

	t.Run("does not match substrings", func(t *testing.T) {
		lib := Seeded()
		assert.Zero(t, lib.RemoveByTitle("Gatsby"))
	})

	t.Run("folds non-ASCII case", func(t *testing.T) {
		lib := New(entities.Book{Title: "Ärger im Paradies"})
		assert.Equal(t, 1, lib.RemoveByTitle("ärger im paradies"))
	})
}

func TestRemove(t *testing.T) {
	lib := New(entities.Book{Title: "Twin"}, entities.Book{Title: "Twin"})
	first := lib.Books()[0]

	assert.True(t, lib.Remove(first.ID))
	require.Equal(t, 1, lib.Len())
	assert.NotEqual(t, first.ID, lib.Books()[0].ID)

	assert.False(t, lib.Remove(first.ID))
	assert.False(t, lib.Remove(uuid.New()))
	assert.Equal(t, 1, lib.Len())
}

func TestToggleRead(t *testing.T) {
	t.Run("twice restores the original value", func(t *testing.T) {
		lib := Seeded()
		book := lib.Books()[0]

		toggled, ok := lib.ToggleRead(book.ID)
		require.True(t, ok)
		assert.Equal(t, !book.Read, toggled.Read)

		toggled, ok = lib.ToggleRead(book.ID)
		require.True(t, ok)
		assert.Equal(t, book.Read, toggled.Read)
	})

	t.Run("affects only the addressed duplicate", func(t *testing.T) {
		lib := New(entities.Book{Title: "Twin"}, entities.Book{Title: "Twin"})
		second := lib.Books()[1]

		_, ok := lib.ToggleRead(second.ID)
		require.True(t, ok)

		books := lib.Books()
		assert.False(t, books[0].Read)
		assert.True(t, books[1].Read)
	})

	t.Run("unknown ID is a no-op", func(t *testing.T) {
		lib := Seeded()
		before := lib.Stats()

		_, ok := lib.ToggleRead(uuid.New())

		assert.False(t, ok)
		assert.Equal(t, before, lib.Stats())
	})
}

func TestToggleReadAt(t *testing.T) {
	lib := Seeded()

	assert.True(t, lib.ToggleReadAt(0))
	assert.True(t, lib.Books()[0].Read)
	assert.True(t, lib.ToggleReadAt(0))
	assert.False(t, lib.Books()[0].Read)

	assert.False(t, lib.ToggleReadAt(-1))
	assert.False(t, lib.ToggleReadAt(2))
}

func TestSearch(t *testing.T) {
	lib := New(
		entities.Book{Title: "The Go Programming Language", Author: "Donovan"},
		entities.Book{Title: "Learning Python", Author: "Lutz"},
		entities.Book{Title: "Gone Girl", Author: "Gillian Flynn"},
		entities.Book{Title: "Emma", Author: "Jane Austen"},
	)

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"title substring ignores case", "go", []string{"The Go Programming Language", "Gone Girl"}},
		{"author substring", "AUSTEN", []string{"Emma"}},
		{"title or author", "lutz", []string{"Learning Python"}},
		{"no match", "tolkien", []string{}},
		{"empty term matches all", "", []string{"The Go Programming Language", "Learning Python", "Gone Girl", "Emma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(lib.Search(tt.term)))
		})
	}
}

func TestStats(t *testing.T) {
	lib := New()
	assert.True(t, lib.Stats().Empty())

	lib.Add(entities.Book{Title: "A", Read: true})
	lib.Add(entities.Book{Title: "B"})
	lib.Add(entities.Book{Title: "C"})

	stats := lib.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Read)
	assert.Equal(t, 2, stats.Unread)
	assert.Equal(t, stats.Total, stats.Read+stats.Unread)
}

func TestBooksReturnsCopy(t *testing.T) {
	lib := Seeded()
	books := lib.Books()
	books[0].Title = "changed"

	assert.Equal(t, "The Great Gatsby", lib.Books()[0].Title)
}

func TestGet(t *testing.T) {
	lib := Seeded()
	want := lib.Books()[1]

	got, ok := lib.Get(want.ID)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = lib.Get(uuid.New())
	assert.False(t, ok)
}
