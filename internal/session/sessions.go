package session

import (
	"context"
	"database/sql"
	"encoding/gob"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/mrlokans/library/internal/config"
	"github.com/mrlokans/library/internal/entities"
	"github.com/mrlokans/library/internal/library"
)

// Session data keys
const (
	SessionKeyBooks        = "books"
	SessionKeyFlashKind    = "flash_kind"
	SessionKeyFlashMessage = "flash_message"
)

func init() {
	// Register types that will be stored in sessions
	gob.Register([]entities.Book{})
}

// Manager wraps scs.SessionManager with the library state of each session.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager storing data in the given database.
// The sessions table is created by database.NewDatabase.
func NewManager(sqlDB *sql.DB, cfg config.Session) *Manager {
	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)

	sm.Lifetime = cfg.Lifetime
	sm.IdleTimeout = cfg.Lifetime / 2 // Half of lifetime for inactivity

	sm.Cookie.Name = "session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteStrictMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}
}

// Library returns the book list of the current session.
// A session without a list gets the seeded examples, stored immediately so
// seeding happens once per session.
func (m *Manager) Library(ctx context.Context) *library.Library {
	if !m.Exists(ctx, SessionKeyBooks) {
		lib := library.Seeded()
		m.SaveLibrary(ctx, lib)
		return lib
	}
	books, _ := m.Get(ctx, SessionKeyBooks).([]entities.Book)
	return library.New(books...)
}

// SaveLibrary stores the book list in the current session.
func (m *Manager) SaveLibrary(ctx context.Context, lib *library.Library) {
	m.Put(ctx, SessionKeyBooks, lib.Books())
}

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashInfo    FlashKind = "info"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Flash is a one-shot banner shown on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

func (m *Manager) PutFlash(ctx context.Context, flash Flash) {
	m.Put(ctx, SessionKeyFlashKind, string(flash.Kind))
	m.Put(ctx, SessionKeyFlashMessage, flash.Message)
}

// PopFlash returns and clears the pending flash, if any.
func (m *Manager) PopFlash(ctx context.Context) (Flash, bool) {
	if !m.Exists(ctx, SessionKeyFlashMessage) {
		return Flash{}, false
	}
	return Flash{
		Kind:    FlashKind(m.PopString(ctx, SessionKeyFlashKind)),
		Message: m.PopString(ctx, SessionKeyFlashMessage),
	}, true
}
