package service

import (
	"context"
	"errors"

	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/event"
	"github.com/remaimber-it/quizengine/internal/ledger"
	"github.com/remaimber-it/quizengine/internal/store"
)

// DeductXP withdraws amount from the learner's closed attempts, oldest XP
// first. When the learner holds less than amount, everything available is
// taken and the shortfall is reported in Unfulfilled.
//
// The deduction runs under the same per-learner lock as FinishAttempt, so no
// award can land between reading the balances and writing the withdrawals.
func (e *Engine) DeductXP(ctx context.Context, learnerID string, amount int) (ledger.Outcome, error) {
	if amount <= 0 {
		return ledger.Outcome{}, apperr.Invalid("amount", "must be a positive integer, got %d", amount)
	}

	unlock := e.locks.Lock(learnerID)
	defer unlock()

	now := e.clock()
	var (
		out       ledger.Outcome
		available int
	)
	err := e.store.UpdateLedger(ctx, learnerID, func(balances []ledger.Balance) ([]ledger.Entry, error) {
		available = ledger.Total(balances)
		out = ledger.Plan(balances, amount)
		return out.Entries(learnerID, now), nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ledger.Outcome{}, apperr.NotFound("learner")
	}
	if err != nil {
		return ledger.Outcome{}, apperr.Unavailable("deduct xp", err)
	}

	e.logger.Info("xp deducted",
		"learner_id", learnerID,
		"available", available,
		"requested", out.Requested,
		"deducted", out.Deducted,
		"unfulfilled", out.Unfulfilled,
		"attempts", len(out.Withdrawals),
	)
	e.metrics.Deduction(out.Deducted, out.Unfulfilled)
	e.publish(event.TypeXPDeducted, learnerID, event.XPDeducted{
		Requested:   out.Requested,
		Deducted:    out.Deducted,
		Unfulfilled: out.Unfulfilled,
	})

	return out, nil
}

// LedgerHistory returns every XP movement of the learner, oldest first.
func (e *Engine) LedgerHistory(ctx context.Context, learnerID string) ([]ledger.Entry, error) {
	if _, err := e.getLearner(ctx, learnerID); err != nil {
		return nil, err
	}
	entries, err := e.store.LedgerEntries(ctx, learnerID)
	if err != nil {
		return nil, apperr.Unavailable("list ledger entries", err)
	}
	return entries, nil
}
