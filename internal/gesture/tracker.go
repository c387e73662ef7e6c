// Package gesture converts a single continuous drag on a job card into a
// swipe direction or a cancellation. It is an explicit state machine
// (idle → dragging → committed | idle) driven by pointer events, so it
// works the same for mouse, touch, or programmatic button triggers.
package gesture

import (
	"math"
	"sync"
	"time"
)

// Direction is the outcome of a classified drag.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// State of the tracker for the current card.
type State int

const (
	Idle State = iota
	Dragging
	Committed
)

// Frame is the visual feedback for one pointer move: the card transform
// plus the live indicator direction. The indicator uses a lower threshold
// than commit and is feedback only.
type Frame struct {
	DeltaX    float64
	DeltaY    float64
	Rotation  float64
	Indicator Direction
}

// Config tunes the tracker. Zero values fall back to the defaults below.
type Config struct {
	// CommitThreshold is the minimum drag distance that resolves a
	// gesture into a direction instead of a cancel.
	CommitThreshold float64
	// IndicatorThreshold is the distance at which the live indicator
	// starts showing a tentative direction.
	IndicatorThreshold float64
	// RotationFactor scales deltaX into the cosmetic card rotation.
	RotationFactor float64
	// ExitDuration is how long the exit animation plays before the
	// commit callback fires and the card is removed.
	ExitDuration time.Duration
}

func (c Config) withDefaults() Config {
	if c.CommitThreshold == 0 {
		c.CommitThreshold = 80
	}
	if c.IndicatorThreshold == 0 {
		c.IndicatorThreshold = 30
	}
	if c.RotationFactor == 0 {
		c.RotationFactor = 0.1
	}
	if c.ExitDuration == 0 {
		c.ExitDuration = 300 * time.Millisecond
	}
	return c
}

// Callbacks connect the tracker to the card it drives. All are optional.
type Callbacks struct {
	// OnFrame receives visual feedback while dragging.
	OnFrame func(Frame)
	// OnCancel fires when a release below threshold snaps the card back.
	OnCancel func()
	// OnCommit fires after the exit animation completes. Only then may
	// the caller resolve the swipe and remove the card.
	OnCommit func(Direction)
}

// Tracker tracks one gesture at a time on one card. A new Start while
// already dragging restarts tracking from the new point; there is no
// queueing of gestures.
type Tracker struct {
	cfg Config
	cb  Callbacks

	// after schedules the exit-animation delay; replaced in tests.
	after func(time.Duration, func())

	mu       sync.Mutex
	state    State
	startX   float64
	startY   float64
	currentX float64
	currentY float64
}

// NewTracker builds a tracker with the given config and callbacks.
func NewTracker(cfg Config, cb Callbacks) *Tracker {
	return &Tracker{
		cfg:   cfg.withDefaults(),
		cb:    cb,
		after: func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
	}
}

// State reports the tracker's current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Start begins tracking at the press coordinates. Starting over an active
// drag resets the origin; starting after a commit is ignored until Reset.
func (t *Tracker) Start(x, y float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == Committed {
		return
	}
	t.state = Dragging
	t.startX, t.startY = x, y
	t.currentX, t.currentY = x, y
}

// Move updates the drag position and emits a feedback frame. Moves outside
// a drag are ignored.
func (t *Tracker) Move(x, y float64) {
	t.mu.Lock()
	if t.state != Dragging {
		t.mu.Unlock()
		return
	}
	t.currentX, t.currentY = x, y
	dx := x - t.startX
	dy := y - t.startY
	frame := Frame{
		DeltaX:    dx,
		DeltaY:    dy,
		Rotation:  dx * t.cfg.RotationFactor,
		Indicator: t.classify(dx, dy, t.cfg.IndicatorThreshold),
	}
	onFrame := t.cb.OnFrame
	t.mu.Unlock()

	if onFrame != nil {
		onFrame(frame)
	}
}

// End releases the gesture: past the commit threshold it resolves into a
// direction and plays the exit animation, otherwise the card snaps back
// and the tracker returns to idle with no state recorded anywhere.
func (t *Tracker) End() {
	t.mu.Lock()
	if t.state != Dragging {
		t.mu.Unlock()
		return
	}
	dir := t.classify(t.currentX-t.startX, t.currentY-t.startY, t.cfg.CommitThreshold)
	if dir == None {
		t.state = Idle
		onCancel := t.cb.OnCancel
		t.mu.Unlock()
		if onCancel != nil {
			onCancel()
		}
		return
	}
	t.commitLocked(dir)
}

// Trigger resolves the card in the given direction without a drag, for
// button-driven swiping. It takes the same animation-then-callback path as
// a released drag. Triggering None is a no-op.
func (t *Tracker) Trigger(dir Direction) {
	if dir == None {
		return
	}
	t.mu.Lock()
	if t.state == Committed {
		t.mu.Unlock()
		return
	}
	t.commitLocked(dir)
}

// Reset returns a committed tracker to idle so it can drive the next card.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.state = Idle
	t.mu.Unlock()
}

// commitLocked enters Committed and schedules the commit callback for
// animation end. Callers hold t.mu; it is released here.
func (t *Tracker) commitLocked(dir Direction) {
	t.state = Committed
	after := t.after
	delay := t.cfg.ExitDuration
	onCommit := t.cb.OnCommit
	t.mu.Unlock()

	after(delay, func() {
		if onCommit != nil {
			onCommit(dir)
		}
	})
}

// classify maps a drag delta to a direction given a threshold. Horizontal
// wins ties; upward requires deltaY strictly negative, so dragging down
// never resolves to Up.
func (t *Tracker) classify(dx, dy, threshold float64) Direction {
	absX, absY := math.Abs(dx), math.Abs(dy)
	switch {
	case absX > threshold && absX >= absY:
		if dx > 0 {
			return Right
		}
		return Left
	case absY > threshold && absY > absX && dy < 0:
		return Up
	default:
		return None
	}
}
