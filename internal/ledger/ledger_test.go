package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcardoso/swipehire/internal/ledger"
	"github.com/mcardoso/swipehire/internal/model"
	"github.com/mcardoso/swipehire/internal/storage"
)

func newTestLedger() *ledger.Ledger {
	seq := 0
	base := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	return ledger.New(storage.NewMemory()).WithClock(
		func() time.Time {
			seq++
			return base.Add(time.Duration(seq) * time.Hour)
		},
		func() string {
			seq++
			return fmt.Sprintf("app-%d", seq)
		},
	)
}

func job(id, title, company string) model.Job {
	return model.Job{ID: id, Title: title, Company: model.Company{Name: company}}
}

func TestCreateCopiesPostingFields(t *testing.T) {
	led := newTestLedger()

	app, err := led.Create(job("J1", "Backend Engineer", "CloudTech"))
	require.NoError(t, err)
	assert.Equal(t, "J1", app.JobID)
	assert.Equal(t, "Backend Engineer", app.JobTitle)
	assert.Equal(t, "CloudTech", app.CompanyName)
	assert.Equal(t, model.StatusPending, app.Status)
	assert.False(t, app.AppliedAt.IsZero())
	assert.True(t, led.Has("J1"))
}

func TestCreateDuplicate(t *testing.T) {
	led := newTestLedger()
	_, err := led.Create(job("J1", "A", "X"))
	require.NoError(t, err)

	_, err = led.Create(job("J1", "A", "X"))
	assert.ErrorIs(t, err, ledger.ErrDuplicate)
	assert.Len(t, led.List(""), 1)
}

func TestWithdrawIsIdempotent(t *testing.T) {
	led := newTestLedger()
	app, err := led.Create(job("J1", "A", "X"))
	require.NoError(t, err)

	assert.True(t, led.Withdraw(app.ID))
	assert.False(t, led.Has("J1"))
	assert.False(t, led.Withdraw(app.ID), "second withdraw is a no-op")
	assert.False(t, led.Withdraw("missing"))
}

func TestWithdrawGate(t *testing.T) {
	led := newTestLedger()
	var prompt string
	led.WithGate(func(p string) bool {
		prompt = p
		return false
	})

	app, err := led.Create(job("J1", "Data Scientist", "AI Lab"))
	require.NoError(t, err)

	assert.False(t, led.Withdraw(app.ID), "denied gate blocks the withdraw")
	assert.True(t, led.Has("J1"))
	assert.Contains(t, prompt, "Data Scientist")

	led.WithGate(func(string) bool { return true })
	assert.True(t, led.Withdraw(app.ID))
}

func TestRemoveByJobID(t *testing.T) {
	led := newTestLedger()
	led.WithGate(func(string) bool { t.Fatal("undo path must not ask"); return false })

	_, err := led.Create(job("J1", "A", "X"))
	require.NoError(t, err)

	assert.True(t, led.RemoveByJobID("J1"))
	assert.False(t, led.RemoveByJobID("J1"))
}

func TestListNewestFirstAndStatusFilter(t *testing.T) {
	led := newTestLedger()
	a1, _ := led.Create(job("J1", "A", "X"))
	a2, _ := led.Create(job("J2", "B", "Y"))
	a3, _ := led.Create(job("J3", "C", "Z"))

	all := led.List("")
	require.Len(t, all, 3)
	assert.Equal(t, a3.ID, all[0].ID, "newest first")
	assert.Equal(t, a2.ID, all[1].ID)
	assert.Equal(t, a1.ID, all[2].ID)

	when := time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC)
	led.SetStatus(a2.ID, model.StatusInterview, &when)

	interviews := led.List(model.StatusInterview)
	require.Len(t, interviews, 1)
	assert.Equal(t, a2.ID, interviews[0].ID)
	require.NotNil(t, interviews[0].InterviewDate)
	assert.Equal(t, when, *interviews[0].InterviewDate)

	assert.Len(t, led.List(model.StatusPending), 2)
	assert.Empty(t, led.List(model.StatusRejected))
}

func TestGet(t *testing.T) {
	led := newTestLedger()
	app, _ := led.Create(job("J1", "A", "X"))

	got, ok := led.Get(app.ID)
	require.True(t, ok)
	assert.Equal(t, app.JobID, got.JobID)

	_, ok = led.Get("missing")
	assert.False(t, ok)
}
