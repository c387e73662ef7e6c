// Package ledger is the persisted collection of job applications. It
// enforces the one business rule of the system: at most one application
// per job at any time.
package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mcardoso/swipehire/internal/model"
	"github.com/mcardoso/swipehire/internal/storage"
)

// Key is the storage key applications persist under.
const Key = "applications"

// ErrDuplicate reports an application that already exists for the job.
// Callers surface it as a warning, not a failure: the swipe that caused it
// is still logged.
var ErrDuplicate = errors.New("ledger: already applied to this job")

// Gate asks for confirmation before a destructive operation. A nil gate
// allows everything, keeping library use non-interactive.
type Gate func(prompt string) bool

// Ledger owns the applications collection. Mutations are full
// read-modify-write against the store, write-through.
type Ledger struct {
	store   storage.Store
	confirm Gate

	// injected for deterministic tests
	now   func() time.Time
	newID func() string
}

func New(store storage.Store) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// WithGate sets the confirmation gate consulted by Withdraw.
func (l *Ledger) WithGate(g Gate) *Ledger {
	l.confirm = g
	return l
}

// WithClock overrides the timestamp and id sources.
func (l *Ledger) WithClock(now func() time.Time, newID func() string) *Ledger {
	l.now = now
	l.newID = newID
	return l
}

// Create records a pending application for job, copying title and company
// from the posting at creation time. Returns ErrDuplicate if one already
// exists for the job.
func (l *Ledger) Create(job model.Job) (model.Application, error) {
	apps := l.load()
	for _, a := range apps {
		if a.JobID == job.ID {
			return model.Application{}, ErrDuplicate
		}
	}

	app := model.Application{
		ID:          l.newID(),
		JobID:       job.ID,
		JobTitle:    job.Title,
		CompanyName: job.Company.Name,
		Status:      model.StatusPending,
		AppliedAt:   l.now(),
		Notes:       "Applied through SwipeHire",
	}
	apps = append(apps, app)
	l.store.Set(Key, apps)
	return app, nil
}

// Withdraw removes the application with the given id after passing the
// confirmation gate. It reports whether an application was removed;
// withdrawing an absent id is a no-op, not an error.
func (l *Ledger) Withdraw(id string) bool {
	apps := l.load()
	for i, a := range apps {
		if a.ID != id {
			continue
		}
		if l.confirm != nil && !l.confirm("Are you sure you want to withdraw your application for "+a.JobTitle+"?") {
			return false
		}
		l.store.Set(Key, append(apps[:i:i], apps[i+1:]...))
		return true
	}
	return false
}

// RemoveByJobID removes the application referencing jobID, if any. This is
// the undo path: the application may already have been withdrawn
// independently, which is not an error. No confirmation gate applies.
func (l *Ledger) RemoveByJobID(jobID string) bool {
	apps := l.load()
	for i, a := range apps {
		if a.JobID == jobID {
			l.store.Set(Key, append(apps[:i:i], apps[i+1:]...))
			return true
		}
	}
	return false
}

// Has reports whether an application exists for jobID.
func (l *Ledger) Has(jobID string) bool {
	for _, a := range l.load() {
		if a.JobID == jobID {
			return true
		}
	}
	return false
}

// Get looks up an application by id.
func (l *Ledger) Get(id string) (model.Application, bool) {
	for _, a := range l.load() {
		if a.ID == id {
			return a, true
		}
	}
	return model.Application{}, false
}

// List returns applications, newest first, optionally filtered by status.
// An empty status means all. The ordering is a presentation contract.
func (l *Ledger) List(status model.Status) []model.Application {
	apps := l.load()
	if status != "" {
		var filtered []model.Application
		for _, a := range apps {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		apps = filtered
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
	return apps
}

// SetStatus updates the status of the application with the given id and
// optionally records an interview date. Unknown ids are ignored.
func (l *Ledger) SetStatus(id string, status model.Status, interviewDate *time.Time) {
	apps := l.load()
	for i, a := range apps {
		if a.ID == id {
			apps[i].Status = status
			if interviewDate != nil {
				apps[i].InterviewDate = interviewDate
			}
			l.store.Set(Key, apps)
			return
		}
	}
}

func (l *Ledger) load() []model.Application {
	var apps []model.Application
	l.store.Get(Key, &apps)
	return apps
}
