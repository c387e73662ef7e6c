// Package deck owns the swipe queue: the ordered catalog jobs not yet
// decided. The queue is never stored; it is recomputed from catalog minus
// history on every read, so it cannot drift from the log.
package deck

import (
	"time"

	"github.com/google/uuid"
	"github.com/mcardoso/swipehire/internal/bus"
	"github.com/mcardoso/swipehire/internal/catalog"
	"github.com/mcardoso/swipehire/internal/gesture"
	"github.com/mcardoso/swipehire/internal/history"
	"github.com/mcardoso/swipehire/internal/ledger"
	"github.com/mcardoso/swipehire/internal/model"
	"github.com/mcardoso/swipehire/internal/output"
)

// SwipeEvent is the payload of bus.EventJobSwiped and bus.EventSwipeUndone.
type SwipeEvent struct {
	Job    model.Job
	Action model.Action
}

// Deck applies swipe outcomes to the shared history and ledger and exposes
// the derived current/next cards.
type Deck struct {
	catalog *catalog.Catalog
	history *history.Log
	ledger  *ledger.Ledger
	bus     *bus.Bus
	notify  output.Notifier
	confirm ledger.Gate

	now   func() time.Time
	newID func() string
}

// New wires a deck to its collaborators and subscribes it to the undo and
// refresh request events. Pass output.Discard{} to run without a UI.
func New(cat *catalog.Catalog, hist *history.Log, led *ledger.Ledger, b *bus.Bus, notify output.Notifier) *Deck {
	d := &Deck{
		catalog: cat,
		history: hist,
		ledger:  led,
		bus:     b,
		notify:  notify,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	b.On(bus.EventUndoSwipe, func(any) { d.Undo() })
	b.On(bus.EventRefreshJobs, func(any) { d.Refresh() })
	return d
}

// WithGate sets the confirmation gate consulted by Refresh.
func (d *Deck) WithGate(g ledger.Gate) *Deck {
	d.confirm = g
	return d
}

// WithClock overrides the timestamp and id sources.
func (d *Deck) WithClock(now func() time.Time, newID func() string) *Deck {
	d.now = now
	d.newID = newID
	return d
}

// Queue returns the catalog jobs not present in the swipe history, in
// catalog order. Pure function of (catalog, history).
func (d *Deck) Queue() []model.Job {
	swiped := d.history.SwipedIDs()
	var queue []model.Job
	for _, j := range d.catalog.All() {
		if !swiped[j.ID] {
			queue = append(queue, j)
		}
	}
	return queue
}

// Current returns the head of the queue.
func (d *Deck) Current() (model.Job, bool) {
	return d.at(0)
}

// Next returns the second card, used for the non-interactive preview.
func (d *Deck) Next() (model.Job, bool) {
	return d.at(1)
}

func (d *Deck) at(i int) (model.Job, bool) {
	q := d.Queue()
	if i >= len(q) {
		return model.Job{}, false
	}
	return q[i], true
}

// Empty reports whether every catalog job has been swiped.
func (d *Deck) Empty() bool {
	return len(d.Queue()) == 0
}

// Resolve applies a committed swipe direction to the current job: logs the
// record, creates the application on apply, and notifies observers.
// Calling it with no current job or with gesture.None is a silent no-op.
func (d *Deck) Resolve(dir gesture.Direction) {
	job, ok := d.Current()
	if !ok {
		return
	}

	var action model.Action
	switch dir {
	case gesture.Left:
		action = model.ActionPass
	case gesture.Right:
		action = model.ActionApply
	case gesture.Up:
		action = model.ActionSave
	default:
		return
	}

	// The record is appended regardless of the ledger outcome: pass, save
	// and apply are each logged even when a duplicate apply is a no-op.
	d.history.Append(model.SwipeRecord{
		ID:        d.newID(),
		JobID:     job.ID,
		Action:    action,
		Timestamp: d.now(),
	})

	switch action {
	case model.ActionApply:
		app, err := d.ledger.Create(job)
		if err != nil {
			d.notify.Notify(output.LevelWarning, "You have already applied to this job")
		} else {
			d.notify.Notify(output.LevelSuccess, "Applied to "+job.Title+"!")
			d.bus.Emit(bus.EventApplicationCreated, app)
		}
	case model.ActionSave:
		d.notify.Notify(output.LevelInfo, "Saved "+job.Title+" for later")
	case model.ActionPass:
		d.notify.Notify(output.LevelError, "Passed on "+job.Title)
	}

	d.bus.Emit(bus.EventJobSwiped, SwipeEvent{Job: job, Action: action})
}

// QuickApply creates an application directly from the browse list, without
// a swipe record; the job stays in the queue. Duplicate applies report a
// warning and change nothing.
func (d *Deck) QuickApply(jobID string) bool {
	job, ok := d.catalog.ByID(jobID)
	if !ok {
		return false
	}
	app, err := d.ledger.Create(job)
	if err != nil {
		d.notify.Notify(output.LevelWarning, "You have already applied to this job")
		return false
	}
	d.notify.Notify(output.LevelSuccess, "Applied to "+job.Title+"!")
	d.bus.Emit(bus.EventApplicationCreated, app)
	return true
}

// Undo reverses exactly the most recent swipe: the record is popped and,
// if it was an apply, the matching application is removed. With an empty
// history it reports "nothing to undo" and changes no state.
func (d *Deck) Undo() bool {
	rec, ok := d.history.PopLast()
	if !ok {
		d.notify.Notify(output.LevelWarning, "No actions to undo")
		return false
	}

	if rec.Action == model.ActionApply {
		// The application may have been withdrawn independently; that is
		// fine, the pop alone restores the queue.
		d.ledger.RemoveByJobID(rec.JobID)
	}

	d.notify.Notify(output.LevelInfo, "Last action undone")
	job, _ := d.catalog.ByID(rec.JobID)
	d.bus.Emit(bus.EventSwipeUndone, SwipeEvent{Job: job, Action: rec.Action})
	return true
}

// Refresh clears the swipe history, starting a new session over the same
// catalog. Applications are untouched. Idempotent.
func (d *Deck) Refresh() {
	if d.confirm != nil && !d.confirm("Reset all swipes and start over?") {
		return
	}
	d.history.Clear()
	d.notify.Notify(output.LevelSuccess, "Jobs refreshed!")
}
