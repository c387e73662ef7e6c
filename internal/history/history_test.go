package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcardoso/swipehire/internal/history"
	"github.com/mcardoso/swipehire/internal/model"
	"github.com/mcardoso/swipehire/internal/storage"
)

func rec(id, jobID string, action model.Action) model.SwipeRecord {
	return model.SwipeRecord{
		ID:        id,
		JobID:     jobID,
		Action:    action,
		Timestamp: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppendKeepsChronologicalOrder(t *testing.T) {
	log := history.NewLog(storage.NewMemory())

	log.Append(rec("1", "J1", model.ActionApply))
	log.Append(rec("2", "J2", model.ActionPass))
	log.Append(rec("3", "J3", model.ActionSave))

	all := log.All()
	require.Len(t, all, 3)
	assert.Equal(t, "J1", all[0].JobID)
	assert.Equal(t, "J2", all[1].JobID)
	assert.Equal(t, "J3", all[2].JobID)
	assert.Equal(t, 3, log.Len())
}

func TestPopLast(t *testing.T) {
	log := history.NewLog(storage.NewMemory())
	log.Append(rec("1", "J1", model.ActionApply))
	log.Append(rec("2", "J2", model.ActionPass))

	last, ok := log.PopLast()
	require.True(t, ok)
	assert.Equal(t, "J2", last.JobID)
	assert.Equal(t, 1, log.Len())

	last, ok = log.PopLast()
	require.True(t, ok)
	assert.Equal(t, "J1", last.JobID)

	_, ok = log.PopLast()
	assert.False(t, ok, "pop on empty log")
	assert.Equal(t, 0, log.Len())
}

func TestClear(t *testing.T) {
	log := history.NewLog(storage.NewMemory())
	log.Append(rec("1", "J1", model.ActionApply))
	log.Clear()
	assert.Empty(t, log.All())

	log.Clear() // idempotent
	assert.Empty(t, log.All())
}

func TestWriteThroughSurvivesReload(t *testing.T) {
	store := storage.NewMemory()
	history.NewLog(store).Append(rec("1", "J1", model.ActionSave))

	// A fresh log over the same store sees the persisted record.
	reloaded := history.NewLog(store)
	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, model.ActionSave, all[0].Action)
	assert.Equal(t, time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC), all[0].Timestamp)
}

func TestSwipedIDs(t *testing.T) {
	log := history.NewLog(storage.NewMemory())
	log.Append(rec("1", "J1", model.ActionApply))
	log.Append(rec("2", "J1", model.ActionSave))
	log.Append(rec("3", "J2", model.ActionPass))

	ids := log.SwipedIDs()
	assert.Len(t, ids, 2)
	assert.True(t, ids["J1"])
	assert.True(t, ids["J2"])
	assert.False(t, ids["J3"])
}
