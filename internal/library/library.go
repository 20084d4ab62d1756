// Package library holds the per-session book list and the operations the views run on it.
//
// A Library is a plain value owned by one session. Controllers load it from the session,
// mutate it and hand it back for saving; nothing here is shared between sessions.
package library

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/mrlokans/library/internal/entities"
)

type Library struct {
	books []entities.Book
}

// New creates a library holding the given books in order.
// Books without an ID get one assigned.
func New(books ...entities.Book) *Library {
	l := &Library{books: make([]entities.Book, 0, len(books))}
	for _, b := range books {
		l.Add(b)
	}
	return l
}

// Seeded returns a library with the two example records every new session starts with.
func Seeded() *Library {
	return New(SeedBooks()...)
}

// SeedBooks returns fresh copies of the example records.
func SeedBooks() []entities.Book {
	return []entities.Book{
		{
			Title:    "The Great Gatsby",
			Author:   "F. Scott Fitzgerald",
			Year:     1925,
			Genre:    "Fiction",
			Read:     false,
			ImageURL: "https://example.com/great-gatsby.jpg",
		},
		{
			Title:    "To Kill a Mockingbird",
			Author:   "Harper Lee",
			Year:     1960,
			Genre:    "Fiction",
			Read:     true,
			ImageURL: "https://example.com/mockinbird.jpg",
		},
	}
}

// Add appends a book and returns the stored record.
func (l *Library) Add(book entities.Book) entities.Book {
	if book.ID == uuid.Nil {
		book.ID = uuid.New()
	}
	l.books = append(l.books, book)
	return book
}

// RemoveByTitle removes every book whose title matches case-insensitively.
// Returns the number of removed books.
func (l *Library) RemoveByTitle(title string) int {
	key := fold(title)
	kept := l.books[:0]
	removed := 0
	for _, b := range l.books {
		if fold(b.Title) == key {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	clear(l.books[len(kept):])
	l.books = kept
	return removed
}

// Remove deletes the book with the given ID.
func (l *Library) Remove(id uuid.UUID) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.books = append(l.books[:i], l.books[i+1:]...)
	return true
}

// ToggleRead flips the read flag of the book with the given ID.
func (l *Library) ToggleRead(id uuid.UUID) (entities.Book, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return entities.Book{}, false
	}
	l.books[i].Read = !l.books[i].Read
	return l.books[i], true
}

// ToggleReadAt flips the read flag of the book at the given position.
func (l *Library) ToggleReadAt(index int) bool {
	if index < 0 || index >= len(l.books) {
		return false
	}
	l.books[index].Read = !l.books[index].Read
	return true
}

// Search returns the books whose title or author contains term, ignoring case.
// An empty term matches every book.
func (l *Library) Search(term string) []entities.Book {
	needle := fold(term)
	results := make([]entities.Book, 0)
	for _, b := range l.books {
		if strings.Contains(fold(b.Title), needle) || strings.Contains(fold(b.Author), needle) {
			results = append(results, b)
		}
	}
	return results
}

// Get returns the book with the given ID.
func (l *Library) Get(id uuid.UUID) (entities.Book, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return entities.Book{}, false
	}
	return l.books[i], true
}

// Books returns a copy of all books in insertion order.
func (l *Library) Books() []entities.Book {
	out := make([]entities.Book, len(l.books))
	copy(out, l.books)
	return out
}

func (l *Library) Len() int {
	return len(l.books)
}

func (l *Library) Stats() entities.Stats {
	stats := entities.Stats{Total: len(l.books)}
	for _, b := range l.books {
		if b.Read {
			stats.Read++
		}
	}
	stats.Unread = stats.Total - stats.Read
	return stats
}

func (l *Library) indexOf(id uuid.UUID) int {
	for i, b := range l.books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// fold applies Unicode case folding. Casers keep state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
