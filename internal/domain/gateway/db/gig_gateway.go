package db

import (
	"errors"

	"gig-weather/internal/domain/entity"
)

// ErrGigNotFound is returned when no gig exists with the requested id.
var ErrGigNotFound = errors.New("gig not found")

// GigGateway is the persistence boundary for gigs.
type GigGateway interface {
	// FindAllOrdered returns every gig, newest first, ties broken by id.
	FindAllOrdered() ([]entity.Gig, error)
	FindByID(id string) (*entity.Gig, error)

	Create(gig entity.Gig) (*entity.Gig, error)

	// DeleteByID removes the gig with the given id. Returns ErrGigNotFound
	// when nothing was deleted.
	DeleteByID(id string) error
}
