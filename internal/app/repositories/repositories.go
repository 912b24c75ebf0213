package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// DBTX is the part of pgxpool.Pool used by repositories. Each call acquires
// and releases its own connection.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRecordRepository *StudentRecordRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		StudentRecordRepository: NewStudentRecordRepository(db),
	}
}
