// Package database owns the SQLite connection behind the session store.
//
// The default DSN is ":memory:", so sessions and the book lists they carry
// vanish with the process. The pool is pinned to one connection because every
// new connection to an in-memory database would see an empty schema.
//
//	db, err := database.NewDatabase(":memory:")
//	sqlDB, _ := db.DB.DB()
//	sessions := session.NewManager(sqlDB, cfg.Session)
package database
