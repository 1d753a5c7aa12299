package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is the shared foundation embedded by the domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository over the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// WithConn returns a copy of the Base rebound to conn. Repositories use it
// to run inside a caller-managed transaction.
func (b Base) WithConn(conn *gorm.DB) Base {
	if conn == nil {
		return b
	}
	return Base{db: conn}
}
