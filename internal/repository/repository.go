package repository

import (
	"context"
	"errors"
	"time"

	"movie-catalog/internal/database"
)

var ErrMovieNotFound = errors.New("movie not found")

// base carries the shared pool and the default per-query timeout.
type base struct {
	db      *database.Database
	timeout time.Duration
}

func newBase(db *database.Database) base {
	return base{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r base) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}
