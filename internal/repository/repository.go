// Package repository is the optional Postgres archive for completed
// interview reports. Session state itself never touches the database.
package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}
