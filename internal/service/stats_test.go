package service_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quizengine/internal/apperr"
	"github.com/remaimber-it/quizengine/internal/cache"
	"github.com/remaimber-it/quizengine/internal/service"
)

func TestEngine_LearnerStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 10)
	biology := f.subject(t, "Biology", 10)

	f.clock.Set(t0.AddDate(0, 0, -2))
	f.play(t, ana.ID, biology.ID, 5, 10)
	f.clock.Set(t0.AddDate(0, 0, -1))
	f.play(t, ana.ID, algebra.ID, 10, 10)
	f.clock.Set(t0)
	f.play(t, ana.ID, algebra.ID, 7, 10)

	f.clock.Set(t0.Add(2 * time.Hour))
	_, err := f.engine.StartAttempt(ctx, ana.ID, biology.ID, nil)
	require.NoError(t, err)

	stats, err := f.engine.LearnerStats(ctx, ana.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 73.33, stats.AverageScore)
	assert.Equal(t, 110, stats.TotalXP)
	assert.Equal(t, 3, stats.Streak)
	require.NotNil(t, stats.LastActivity)
	assert.True(t, stats.LastActivity.Equal(t0.Add(2*time.Hour)))
	require.NotNil(t, stats.StrongestSubject)
	assert.Equal(t, "Algebra", stats.StrongestSubject.Name)
}

func TestEngine_LearnerStatsEmpty(t *testing.T) {
	f := newFixture(t)
	ana := f.learner(t, "Ana")

	stats, err := f.engine.LearnerStats(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Equal(t, service.LearnerStats{}, *stats)

	_, err = f.engine.LearnerStats(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestEngine_StreakBreaksOnGap(t *testing.T) {
	f := newFixture(t)
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 2)

	for _, daysAgo := range []int{0, 1, 3} {
		f.clock.Set(t0.AddDate(0, 0, -daysAgo))
		f.play(t, ana.ID, algebra.ID, 1, 2)
	}
	f.clock.Set(t0)

	stats, err := f.engine.LearnerStats(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Streak)
}

func TestEngine_LearnerPerformance(t *testing.T) {
	f := newFixture(t)
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 3)
	f.subject(t, "Biology", 3)

	f.play(t, ana.ID, algebra.ID, 3, 3)
	f.clock.Set(t0.Add(time.Hour))
	f.play(t, ana.ID, algebra.ID, 1, 3)

	perf, err := f.engine.LearnerPerformance(context.Background(), ana.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, perf.SubjectsCovered)
	require.Len(t, perf.Subjects, 1)
	got := perf.Subjects[0]
	assert.Equal(t, "Algebra", got.Subject.Name)
	assert.Equal(t, 33.33, got.Progress)
	assert.Equal(t, 2, got.QuizAttempted)
	assert.Equal(t, 20.0, got.AverageScore)
}

func TestEngine_RosterAndSubjectStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	ben := f.learner(t, "Ben")
	algebra := f.subject(t, "Algebra", 4)
	biology := f.subject(t, "Biology", 4)

	f.play(t, ana.ID, algebra.ID, 4, 4)
	f.play(t, ana.ID, biology.ID, 2, 4)
	f.play(t, ben.ID, algebra.ID, 1, 4)

	roster, err := f.engine.LearnerRoster(ctx)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, service.RosterEntry{LearnerID: ana.ID, DisplayName: "Ana", QuizAttempts: 2, XP: 30, ActiveSubjects: 2}, roster[0])
	assert.Equal(t, service.RosterEntry{LearnerID: ben.ID, DisplayName: "Ben", QuizAttempts: 1, XP: 5, ActiveSubjects: 1}, roster[1])

	stats, err := f.engine.SubjectStats(ctx, algebra.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.QuizAttempted)
	assert.Equal(t, 25.0, stats.AverageScore)
	assert.Equal(t, 40, stats.TopScore)
	require.Len(t, stats.MonthlyAccuracy, 12)
	assert.Equal(t, 62.5, stats.MonthlyAccuracy[11].Value)

	mine, err := f.engine.SubjectStats(ctx, algebra.ID, ben.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, mine.QuizAttempted)
	assert.Equal(t, 25.0, mine.MonthlyAccuracy[11].Value)

	_, err = f.engine.SubjectStats(ctx, "missing", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestEngine_AnalyticsAndRanking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	ben := f.learner(t, "Ben")
	cid := f.learner(t, "Cid")
	dan := f.learner(t, "Dan")
	algebra := f.subject(t, "Algebra", 10)
	f.subject(t, "Biology", 10)

	f.play(t, ana.ID, algebra.ID, 10, 10)
	f.play(t, ben.ID, algebra.ID, 10, 10)
	f.play(t, cid.ID, algebra.ID, 5, 10)

	for learnerID, want := range map[string]int{ana.ID: 1, ben.ID: 1, cid.ID: 3, dan.ID: 4} {
		rank, err := f.engine.Rank(ctx, learnerID)
		require.NoError(t, err)
		assert.Equal(t, want, rank)
	}
	_, err := f.engine.Rank(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	board, err := f.engine.Leaderboard(ctx, 3)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, []int{1, 1, 3}, []int{board[0].Rank, board[1].Rank, board[2].Rank})
	assert.Equal(t, "Cid", board[2].DisplayName)

	series, err := f.engine.AccuracySeries(ctx, "", "month")
	require.NoError(t, err)
	require.Len(t, series, 30)
	assert.Equal(t, 833, series[29].Value)

	mine, err := f.engine.AccuracySeries(ctx, cid.ID, "day")
	require.NoError(t, err)
	require.Len(t, mine, 24)
	assert.Equal(t, 500, mine[23].Value)

	_, err = f.engine.AccuracySeries(ctx, "", "week")
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

	perf, err := f.engine.SubjectPerformance(ctx, "")
	require.NoError(t, err)
	require.Len(t, perf, 2)
	assert.Equal(t, "Algebra", perf[0].Name)
	assert.Equal(t, 83, perf[0].Accuracy)
	assert.Zero(t, perf[1].Accuracy)
}

// jsonCache keeps values as JSON in memory, the way the redis cache does.
type jsonCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *jsonCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *jsonCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func TestEngine_CachedDashboardsSeeNewAttempts(t *testing.T) {
	loader := cache.NewLoader(&jsonCache{data: map[string][]byte{}}, time.Hour, nil)
	f := newFixture(t, service.WithCache(loader))
	ctx := context.Background()
	ana := f.learner(t, "Ana")
	algebra := f.subject(t, "Algebra", 10)

	before, err := f.engine.AccuracySeries(ctx, ana.ID, "month")
	require.NoError(t, err)
	require.Zero(t, before[29].Value)
	global, err := f.engine.AccuracySeries(ctx, "", "month")
	require.NoError(t, err)
	require.Zero(t, global[29].Value)
	perf, err := f.engine.SubjectPerformance(ctx, ana.ID)
	require.NoError(t, err)
	require.Zero(t, perf[0].Attempts)

	f.play(t, ana.ID, algebra.ID, 8, 10)
	f.play(t, ana.ID, algebra.ID, 6, 10)

	after, err := f.engine.AccuracySeries(ctx, ana.ID, "month")
	require.NoError(t, err)
	assert.Equal(t, 700, after[29].Value)

	global, err = f.engine.AccuracySeries(ctx, "", "month")
	require.NoError(t, err)
	assert.Equal(t, 700, global[29].Value)

	perf, err = f.engine.SubjectPerformance(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, perf[0].Attempts)
	assert.Equal(t, 70, perf[0].Accuracy)
}
