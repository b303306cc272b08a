// Package ledger models the XP transaction log and the FIFO deduction plan.
//
// XP is never edited in place. Closing an attempt appends an award entry and
// each deduction appends negative entries; an attempt's xp_gained is the sum
// of its entries.
package ledger

import (
	"sort"
	"time"

	"github.com/remaimber-it/quizengine/internal/id"
)

type Reason string

const (
	ReasonAward     Reason = "award"
	ReasonDeduction Reason = "deduction"
)

// Entry is one append-only XP movement on an attempt.
type Entry struct {
	ID        string
	AttemptID string
	LearnerID string
	Delta     int
	Reason    Reason
	CreatedAt time.Time
}

// Balance is the current XP projection of one closed attempt.
type Balance struct {
	AttemptID string
	CreatedAt time.Time
	XP        int
}

// Withdrawal is the amount taken from one attempt by a deduction.
type Withdrawal struct {
	AttemptID string
	Amount    int
}

// Outcome describes a planned deduction. Unfulfilled is the part of the
// requested amount the learner's XP could not cover.
type Outcome struct {
	Requested   int
	Deducted    int
	Unfulfilled int
	Withdrawals []Withdrawal
}

// Award records the XP granted when an attempt closes.
func Award(attemptID, learnerID string, xp int, now time.Time) Entry {
	return Entry{
		ID:        id.GenerateID(),
		AttemptID: attemptID,
		LearnerID: learnerID,
		Delta:     xp,
		Reason:    ReasonAward,
		CreatedAt: now,
	}
}

// Plan spends amount across balances oldest first. Attempts with no XP left
// are skipped and no balance is taken below zero. balances is not modified.
func Plan(balances []Balance, amount int) Outcome {
	out := Outcome{Requested: amount}
	if amount <= 0 {
		return out
	}

	ordered := make([]Balance, len(balances))
	copy(ordered, balances)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].AttemptID < ordered[j].AttemptID
	})

	remaining := amount
	for _, b := range ordered {
		if remaining == 0 {
			break
		}
		if b.XP <= 0 {
			continue
		}
		take := min(remaining, b.XP)
		out.Withdrawals = append(out.Withdrawals, Withdrawal{AttemptID: b.AttemptID, Amount: take})
		remaining -= take
	}

	out.Deducted = amount - remaining
	out.Unfulfilled = remaining
	return out
}

// Entries turns the planned withdrawals into deduction log entries.
func (o Outcome) Entries(learnerID string, now time.Time) []Entry {
	entries := make([]Entry, 0, len(o.Withdrawals))
	for _, w := range o.Withdrawals {
		entries = append(entries, Entry{
			ID:        id.GenerateID(),
			AttemptID: w.AttemptID,
			LearnerID: learnerID,
			Delta:     -w.Amount,
			Reason:    ReasonDeduction,
			CreatedAt: now,
		})
	}
	return entries
}

// Total sums XP over balances.
func Total(balances []Balance) int {
	total := 0
	for _, b := range balances {
		total += b.XP
	}
	return total
}
