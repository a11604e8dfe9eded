package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// Sentinels the service layer branches on. Store fakes in tests return these
// directly.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

func translateNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
