// Package repo persists interns and their embedded time entries.
package repo

import (
	"context"
	"errors"

	"github.com/estagiotrack/estagio_backend/internal/model"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

// Repository is the persistence boundary for interns. One record per intern;
// entries live inside the intern document and never exist on their own.
// Implementations return ErrNotFound / ErrEmailTaken for the recoverable
// cases and wrap anything else as a storage error.
type Repository interface {
	CreateIntern(ctx context.Context, name, email string) (*model.Intern, error)
	FindAllInterns(ctx context.Context) ([]model.Intern, error)
	FindInternByID(ctx context.Context, id string) (*model.Intern, error)
	DeleteInternByID(ctx context.Context, id string) error

	// AppendEntry and RemoveEntry return the updated intern.
	AppendEntry(ctx context.Context, internID string, entry model.TimeEntry) (*model.Intern, error)
	RemoveEntry(ctx context.Context, internID, entryID string) (*model.Intern, error)
}

// NewID returns a UUIDv7 string, used for both intern and entry identifiers.
func NewID() string {
	return mustNewV7()
}
