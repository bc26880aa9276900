package estagiario

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/estagiotrack/estagio_backend/internal/model"
	"github.com/estagiotrack/estagio_backend/internal/repo"
	"github.com/estagiotrack/estagio_backend/internal/timesheet"
)

// fakeRepo is an in-memory Repository with the same error semantics as the
// Mongo implementation.
type fakeRepo struct {
	interns map[string]*model.Intern
	order   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{interns: make(map[string]*model.Intern)}
}

func (f *fakeRepo) CreateIntern(_ context.Context, name, email string) (*model.Intern, error) {
	for _, in := range f.interns {
		if in.Email == email {
			return nil, repo.ErrEmailTaken
		}
	}
	intern := &model.Intern{ID: repo.NewID(), Name: name, Email: email, Entries: []model.TimeEntry{}}
	f.interns[intern.ID] = intern
	f.order = append(f.order, intern.ID)
	return intern, nil
}

func (f *fakeRepo) FindAllInterns(_ context.Context) ([]model.Intern, error) {
	out := []model.Intern{}
	for _, id := range f.order {
		out = append(out, *f.interns[id])
	}
	return out, nil
}

func (f *fakeRepo) FindInternByID(_ context.Context, id string) (*model.Intern, error) {
	intern, ok := f.interns[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *intern
	return &cp, nil
}

func (f *fakeRepo) DeleteInternByID(_ context.Context, id string) error {
	if _, ok := f.interns[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.interns, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeRepo) AppendEntry(_ context.Context, internID string, entry model.TimeEntry) (*model.Intern, error) {
	intern, ok := f.interns[internID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	intern.Entries = append(intern.Entries, entry)
	cp := *intern
	return &cp, nil
}

func (f *fakeRepo) RemoveEntry(_ context.Context, internID, entryID string) (*model.Intern, error) {
	intern, ok := f.interns[internID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	kept := intern.Entries[:0]
	for _, e := range intern.Entries {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	intern.Entries = kept
	cp := *intern
	return &cp, nil
}

func TestRegister(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	intern, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if intern.ID == "" {
		t.Error("Register() should assign an ID")
	}
	if len(intern.Entries) != 0 {
		t.Errorf("Register() entries = %d, want 0", len(intern.Entries))
	}

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"missing name", RegisterRequest{Email: "x@example.com"}, ErrMissingField},
		{"missing email", RegisterRequest{Name: "X"}, ErrMissingField},
		{"duplicate email", RegisterRequest{Name: "Other", Email: "ana@example.com"}, ErrEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(ctx, tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddHours(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	intern, err := svc.Register(ctx, RegisterRequest{Name: "Bruno", Email: "bruno@example.com"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	updated, err := svc.AddHours(ctx, intern.ID, AddHoursRequest{
		Date: "2024-01-01", StartTime: "08:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("AddHours() error = %v", err)
	}
	if len(updated.Entries) != 1 {
		t.Fatalf("AddHours() entries = %d, want 1", len(updated.Entries))
	}
	if updated.Entries[0].TotalMinutes != 180 {
		t.Errorf("AddHours() totalMinutes = %d, want 180", updated.Entries[0].TotalMinutes)
	}
	if updated.Entries[0].ID == "" {
		t.Error("AddHours() should assign an entry ID")
	}

	// Second morning entry the same day is rejected.
	_, err = svc.AddHours(ctx, intern.ID, AddHoursRequest{
		Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00",
	})
	if !errors.Is(err, timesheet.ErrDuplicateShift) {
		t.Errorf("AddHours() error = %v, want ErrDuplicateShift", err)
	}

	// Afternoon entry the same day is accepted.
	updated, err = svc.AddHours(ctx, intern.ID, AddHoursRequest{
		Date: "2024-01-01", StartTime: "13:00", EndTime: "17:00",
	})
	if err != nil {
		t.Fatalf("AddHours() error = %v", err)
	}
	if len(updated.Entries) != 2 {
		t.Errorf("AddHours() entries = %d, want 2", len(updated.Entries))
	}
	if updated.Entries[1].TotalMinutes != 240 {
		t.Errorf("AddHours() totalMinutes = %d, want 240", updated.Entries[1].TotalMinutes)
	}

	// Invalid range never reaches the repository.
	_, err = svc.AddHours(ctx, intern.ID, AddHoursRequest{
		Date: "2024-01-02", StartTime: "10:00", EndTime: "09:00",
	})
	if !errors.Is(err, timesheet.ErrInvalidRange) {
		t.Errorf("AddHours() error = %v, want ErrInvalidRange", err)
	}

	// Unknown intern.
	_, err = svc.AddHours(ctx, "missing", AddHoursRequest{
		Date: "2024-01-01", StartTime: "08:00", EndTime: "09:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("AddHours() error = %v, want ErrNotFound", err)
	}
}

func TestRemoveHours(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	intern, _ := svc.Register(ctx, RegisterRequest{Name: "Carla", Email: "carla@example.com"})
	updated, err := svc.AddHours(ctx, intern.ID, AddHoursRequest{
		Date: "2024-02-05", StartTime: "08:00", EndTime: "12:00",
	})
	if err != nil {
		t.Fatalf("AddHours() error = %v", err)
	}
	entryID := updated.Entries[0].ID

	updated, err = svc.RemoveHours(ctx, intern.ID, entryID)
	if err != nil {
		t.Fatalf("RemoveHours() error = %v", err)
	}
	if len(updated.Entries) != 0 {
		t.Errorf("RemoveHours() entries = %d, want 0", len(updated.Entries))
	}

	// Removing a nonexistent entry on an existing intern is a no-op.
	if _, err := svc.RemoveHours(ctx, intern.ID, "nope"); err != nil {
		t.Errorf("RemoveHours() error = %v, want nil", err)
	}

	if _, err := svc.RemoveHours(ctx, "missing", entryID); !errors.Is(err, ErrNotFound) {
		t.Errorf("RemoveHours() error = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	db := newFakeRepo()
	svc := New(db)
	ctx := context.Background()

	intern, _ := svc.Register(ctx, RegisterRequest{Name: "Davi", Email: "davi@example.com"})
	if _, err := svc.AddHours(ctx, intern.ID, AddHoursRequest{
		Date: "2024-03-01", StartTime: "08:00", EndTime: "10:00",
	}); err != nil {
		t.Fatalf("AddHours() error = %v", err)
	}

	if err := svc.Delete(ctx, intern.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Intern and all its entries are gone.
	if _, err := svc.Get(ctx, intern.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if _, err := svc.ListHours(ctx, intern.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("ListHours() after Delete error = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(ctx, intern.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestAddHoursConcurrentSameShift(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	intern, err := svc.Register(ctx, RegisterRequest{Name: "Eva", Email: "eva@example.com"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// All workers race to log the same morning shift; the per-intern lock
	// must let exactly one through.
	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddHours(ctx, intern.ID, AddHoursRequest{
				Date: "2024-04-01", StartTime: "08:00", EndTime: "12:00",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, timesheet.ErrDuplicateShift):
		default:
			t.Errorf("AddHours() error = %v, want nil or ErrDuplicateShift", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("AddHours() succeeded %d times, want exactly 1", succeeded)
	}

	got, err := svc.ListHours(ctx, intern.ID)
	if err != nil {
		t.Fatalf("ListHours() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("ListHours() entries = %d, want 1", len(got))
	}
}

func TestKeyedMutex(t *testing.T) {
	var km keyedMutex

	// Different keys do not block each other.
	unlockA := km.Lock("a")
	unlockB := km.Lock("b")
	unlockB()
	unlockA()

	if len(km.locks) != 0 {
		t.Errorf("locks map has %d entries after release, want 0", len(km.locks))
	}

	// Same key serializes: the second holder only runs after the first
	// releases.
	var order []string
	var mu sync.Mutex
	unlock := km.Lock("a")

	done := make(chan struct{})
	go func() {
		defer close(done)
		u := km.Lock("a")
		mu.Lock()
		order = append(order, "second")
		mu.Unlock()
		u()
	}()

	mu.Lock()
	order = append(order, "first")
	mu.Unlock()
	unlock()
	<-done

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("execution order = %v, want [first second]", order)
	}
	if len(km.locks) != 0 {
		t.Errorf("locks map has %d entries after release, want 0", len(km.locks))
	}
}

func TestExportRows(t *testing.T) {
	svc := New(newFakeRepo())
	ctx := context.Background()

	ana, _ := svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "ana@example.com"})
	_, _ = svc.Register(ctx, RegisterRequest{Name: "Bia", Email: "bia@example.com"})

	// 90 + 45 minutes -> 2h15m
	if _, err := svc.AddHours(ctx, ana.ID, AddHoursRequest{
		Date: "2024-01-01", StartTime: "08:00", EndTime: "09:30",
	}); err != nil {
		t.Fatalf("AddHours() error = %v", err)
	}
	if _, err := svc.AddHours(ctx, ana.ID, AddHoursRequest{
		Date: "2024-01-01", StartTime: "13:00", EndTime: "13:45",
	}); err != nil {
		t.Fatalf("AddHours() error = %v", err)
	}

	rows, err := svc.ExportRows(ctx)
	if err != nil {
		t.Fatalf("ExportRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ExportRows() rows = %d, want 2", len(rows))
	}

	want := ExportRow{Name: "Ana", Email: "ana@example.com", TotalHours: 2, RemainderMinutes: 15}
	if rows[0] != want {
		t.Errorf("ExportRows()[0] = %+v, want %+v", rows[0], want)
	}
	empty := ExportRow{Name: "Bia", Email: "bia@example.com", TotalHours: 0, RemainderMinutes: 0}
	if rows[1] != empty {
		t.Errorf("ExportRows()[1] = %+v, want %+v", rows[1], empty)
	}
}
