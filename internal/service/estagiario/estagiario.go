package estagiario

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/estagiotrack/estagio_backend/internal/model"
	"github.com/estagiotrack/estagio_backend/internal/repo"
	"github.com/estagiotrack/estagio_backend/internal/timesheet"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Name  string
	Email string
}

type AddHoursRequest struct {
	Date      string
	StartTime string
	EndTime   string
}

// ExportRow is one aggregated line of the CSV export.
type ExportRow struct {
	Name             string
	Email            string
	TotalHours       int
	RemainderMinutes int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*model.Intern, error)
	List(ctx context.Context) ([]model.Intern, error)
	Get(ctx context.Context, id string) (*model.Intern, error)
	Delete(ctx context.Context, id string) error

	ListHours(ctx context.Context, id string) ([]model.TimeEntry, error)
	AddHours(ctx context.Context, id string, req AddHoursRequest) (*model.Intern, error)
	RemoveHours(ctx context.Context, id, entryID string) (*model.Intern, error)

	ExportRows(ctx context.Context) ([]ExportRow, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type estagiarioService struct {
	db repo.Repository

	// mu serializes the read-validate-append sequence per intern so two
	// concurrent AddHours calls cannot both pass shift validation against
	// a stale read. Only effective within a single process.
	mu keyedMutex
}

func New(db repo.Repository) Service {
	return &estagiarioService{db: db}
}

func (s *estagiarioService) Register(ctx context.Context, req RegisterRequest) (*model.Intern, error) {
	if req.Name == "" || req.Email == "" {
		return nil, ErrMissingField
	}

	intern, err := s.db.CreateIntern(ctx, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("register intern: %w", err)
	}
	return intern, nil
}

func (s *estagiarioService) List(ctx context.Context) ([]model.Intern, error) {
	return s.db.FindAllInterns(ctx)
}

func (s *estagiarioService) Get(ctx context.Context, id string) (*model.Intern, error) {
	intern, err := s.db.FindInternByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return intern, nil
}

func (s *estagiarioService) Delete(ctx context.Context, id string) error {
	if err := s.db.DeleteInternByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *estagiarioService) ListHours(ctx context.Context, id string) ([]model.TimeEntry, error) {
	intern, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return intern.Entries, nil
}

func (s *estagiarioService) AddHours(ctx context.Context, id string, req AddHoursRequest) (*model.Intern, error) {
	unlock := s.mu.Lock(id)
	defer unlock()

	intern, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	total, _, err := timesheet.Validate(intern.Entries, timesheet.Proposal{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return nil, err
	}

	entry := model.TimeEntry{
		ID:           repo.NewID(),
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		TotalMinutes: total,
	}

	updated, err := s.db.AppendEntry(ctx, id, entry)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("append entry: %w", err)
	}
	return updated, nil
}

func (s *estagiarioService) RemoveHours(ctx context.Context, id, entryID string) (*model.Intern, error) {
	// Removing an entry that does not exist on an existing intern is a
	// no-op; only a missing intern is an error.
	updated, err := s.db.RemoveEntry(ctx, id, entryID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("remove entry: %w", err)
	}
	return updated, nil
}

func (s *estagiarioService) ExportRows(ctx context.Context) ([]ExportRow, error) {
	interns, err := s.db.FindAllInterns(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(interns))
	for _, intern := range interns {
		totals := timesheet.Aggregate(intern.Entries)
		rows = append(rows, ExportRow{
			Name:             intern.Name,
			Email:            intern.Email,
			TotalHours:       totals.Hours,
			RemainderMinutes: totals.Minutes,
		})
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Per-intern locking
// ---------------------------------------------------------------------------

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*lockEntry)
	}
	e, ok := k.locks[key]
	if !ok {
		e = &lockEntry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
