package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing row and one the principal may not see.
	ErrNotFound = errors.New("not found")

	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrForbidden          = errors.New("not enough privileges")
	ErrConflict           = errors.New("already exists")

	// ErrBadReference is returned when a booking points at a service of another project.
	ErrBadReference = errors.New("service does not belong to this project")
	ErrInvalidInput = errors.New("invalid input")
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
