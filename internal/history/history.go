// Package history is the append-only (pop-able for undo) log of swipe
// decisions. It is the source of truth for queue derivation: a job is in
// the queue exactly when no record here references it.
package history

import (
	"github.com/mcardoso/swipehire/internal/model"
	"github.com/mcardoso/swipehire/internal/storage"
)

// Key is the storage key the log persists under.
const Key = "swipeHistory"

// Log persists swipe records write-through: every mutation reads the full
// list, modifies it, and writes it back, so concurrent callers in the same
// tick never lose updates.
type Log struct {
	store storage.Store
}

func NewLog(store storage.Store) *Log {
	return &Log{store: store}
}

// All returns the records in chronological (append) order.
func (l *Log) All() []model.SwipeRecord {
	var records []model.SwipeRecord
	l.store.Get(Key, &records)
	return records
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.All())
}

// Append adds a record to the end of the log and persists immediately.
func (l *Log) Append(rec model.SwipeRecord) {
	records := l.All()
	records = append(records, rec)
	l.store.Set(Key, records)
}

// PopLast removes and returns the most recent record, or false when the
// log is empty.
func (l *Log) PopLast() (model.SwipeRecord, bool) {
	records := l.All()
	if len(records) == 0 {
		return model.SwipeRecord{}, false
	}
	last := records[len(records)-1]
	l.store.Set(Key, records[:len(records)-1])
	return last, true
}

// Clear removes every record, starting a fresh session over the catalog.
func (l *Log) Clear() {
	l.store.Set(Key, []model.SwipeRecord{})
}

// SwipedIDs returns the set of job ids present in the log.
func (l *Log) SwipedIDs() map[string]bool {
	records := l.All()
	ids := make(map[string]bool, len(records))
	for _, r := range records {
		ids[r.JobID] = true
	}
	return ids
}
