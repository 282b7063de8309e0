package postgres

import (
	"database/sql"

	"notification-enricher/internal/directory/repository"
	pkgLog "notification-enricher/pkg/log"
)

// implRepository serves one directory table from the local identity replica.
// The table and columns differ per directory kind, the lookup shape does not.
type implRepository struct {
	l          pkgLog.Logger
	db         *sql.DB
	table      string
	idColumn   string
	nameColumn string
}

var _ repository.Repository = &implRepository{}

// NewUserDirectory returns the user directory backed by the users table.
func NewUserDirectory(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:          l,
		db:         db,
		table:      "users",
		idColumn:   "id",
		nameColumn: "full_name",
	}
}

// NewAccountDirectory returns the account directory backed by the accounts
// table.
func NewAccountDirectory(l pkgLog.Logger, db *sql.DB) *implRepository {
	return &implRepository{
		l:          l,
		db:         db,
		table:      "accounts",
		idColumn:   "id",
		nameColumn: "name",
	}
}
