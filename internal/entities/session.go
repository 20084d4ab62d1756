package entities

// SessionRecord mirrors the table layout expected by the scs sqlite3store.
type SessionRecord struct {
	Token  string  `gorm:"primaryKey;type:text"`
	Data   []byte  `gorm:"type:blob;not null"`
	Expiry float64 `gorm:"type:real;not null;index:sessions_expiry_idx"`
}

func (SessionRecord) TableName() string {
	return "sessions"
}
