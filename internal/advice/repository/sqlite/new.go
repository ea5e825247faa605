package sqlite

import (
	"database/sql"

	"campus-advisor/internal/advice/repository"
	"campus-advisor/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

func New(db *sql.DB, l log.Logger) *implRepository {
	return &implRepository{db: db, l: l}
}
