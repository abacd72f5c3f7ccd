package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row matched the lookup
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail means a business with that email already exists
	ErrDuplicateEmail = errors.New("email already exists")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateEmail
	}
	return err
}
