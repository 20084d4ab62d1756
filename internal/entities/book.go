package entities

import "github.com/google/uuid"

type ReadStatus string

const (
	ReadStatusRead   ReadStatus = "Read"
	ReadStatusUnread ReadStatus = "Unread"
)

// Publication year bounds accepted by the add form.
const (
	MinYear = 1800
	MaxYear = 2100
)

// ReadStatuses lists the read status choices in display order.
var ReadStatuses = []ReadStatus{ReadStatusRead, ReadStatusUnread}

type Book struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Year     int       `json:"year"`
	Genre    string    `json:"genre"`
	Read     bool      `json:"read"`
	ImageURL string    `json:"image_url,omitempty"`
}

// NewBook builds a record from form values. Only ReadStatusRead marks the book as read.
func NewBook(title, author string, year int, genre string, status ReadStatus, imageURL string) Book {
	return Book{
		ID:       uuid.New(),
		Title:    title,
		Author:   author,
		Year:     year,
		Genre:    genre,
		Read:     status == ReadStatusRead,
		ImageURL: imageURL,
	}
}

func (b Book) Status() ReadStatus {
	if b.Read {
		return ReadStatusRead
	}
	return ReadStatusUnread
}

func (b Book) HasCover() bool {
	return b.ImageURL != ""
}

// Stats holds read/unread counts. Read + Unread always equals Total.
type Stats struct {
	Total  int `json:"total"`
	Read   int `json:"read"`
	Unread int `json:"unread"`
}

func (s Stats) Empty() bool {
	return s.Total == 0
}
