package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/ledger"
)

func TestEngine_DeductXPOldestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 10)

	first := f.play(t, ana.ID, algebra.ID, 10, 10)
	f.clock.Set(t0.Add(time.Hour))
	second := f.play(t, ana.ID, algebra.ID, 5, 10)

	out, err := f.engine.DeductXP(ctx, ana.ID, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, out.Deducted)
	assert.Zero(t, out.Unfulfilled)
	assert.Equal(t, []ledger.Withdrawal{
		{AttemptID: first.ID, Amount: 50},
		{AttemptID: second.ID, Amount: 10},
	}, out.Withdrawals)

	a, err := f.store.GetAttempt(ctx, first.ID)
	require.NoError(t, err)
	assert.Zero(t, a.XPGained)
	b, err := f.store.GetAttempt(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, b.XPGained)
	assert.Equal(t, "B", string(b.Grade), "deductions never regrade")

	out, err = f.engine.DeductXP(ctx, ana.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 15, out.Deducted)
	assert.Equal(t, 85, out.Unfulfilled)

	stats, err := f.engine.LearnerStats(ctx, ana.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalXP)
}

func TestEngine_DeductXPErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")

	_, err := f.engine.DeductXP(ctx, ana.ID, 0)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	_, err = f.engine.DeductXP(ctx, "missing", 10)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	out, err := f.engine.DeductXP(ctx, ana.ID, 10)
	require.NoError(t, err)
	assert.Zero(t, out.Deducted)
	assert.Equal(t, 10, out.Unfulfilled)
}

func TestEngine_ConcurrentDeductionsNeverOverdraw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 10)
	f.play(t, ana.ID, algebra.ID, 10, 10)

	const workers = 10
	results := make([]ledger.Outcome, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := f.engine.DeductXP(ctx, ana.ID, 10)
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	deducted, unfulfilled := 0, 0
	for _, r := range results {
		deducted += r.Deducted
		unfulfilled += r.Unfulfilled
	}
	assert.Equal(t, 50, deducted)
	assert.Equal(t, 50, unfulfilled)

	xp, err := f.store.LearnerXP(ctx, ana.ID)
	require.NoError(t, err)
	assert.Zero(t, xp)
}

func TestEngine_LedgerHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 4)
	played := f.play(t, ana.ID, algebra.ID, 4, 4)

	f.clock.Set(t0.Add(time.Minute))
	_, err := f.engine.DeductXP(ctx, ana.ID, 5)
	require.NoError(t, err)

	entries, err := f.engine.LedgerHistory(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ledger.ReasonAward, entries[0].Reason)
	assert.Equal(t, 20, entries[0].Delta)
	assert.Equal(t, ledger.ReasonDeduction, entries[1].Reason)
	assert.Equal(t, -5, entries[1].Delta)
	assert.Equal(t, played.ID, entries[1].AttemptID)

	_, err = f.engine.LedgerHistory(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
