package repository

import (
	"errors"
	"fmt"

	"github.com/templui/fitshare/internal/db"
)

// ErrUniquenessConflict is returned when a write would violate one of the
// store's unique indexes.
var ErrUniquenessConflict = errors.New("uniqueness conflict")

// mapWriteErr turns a driver unique violation into ErrUniquenessConflict,
// naming the key that collided.
func mapWriteErr(err error, key string) error {
	if err == nil {
		return nil
	}
	if db.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s", ErrUniquenessConflict, key)
	}
	return err
}
