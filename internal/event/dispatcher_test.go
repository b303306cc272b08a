package event_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/quizengine/internal/event"
)

func TestDispatcher_PublishesQueuedEventsBeforeClose(t *testing.T) {
	pub := event.NewMockPublisher()
	d := event.NewDispatcher(pub, 2, nil)

	now := time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)
	d.Dispatch(event.New(event.TypeAttemptStarted, "ana", event.AttemptStarted{AttemptID: "a1", TotalQuestions: 10}, now))
	d.Dispatch(event.New(event.TypeAttemptClosed, "ana", event.AttemptClosed{AttemptID: "a1", Grade: "A"}, now))

	require.NoError(t, d.Close())

	events := pub.Events()
	require.Len(t, events, 2)
	types := []event.Type{events[0].Type, events[1].Type}
	assert.ElementsMatch(t, []event.Type{event.TypeAttemptStarted, event.TypeAttemptClosed}, types)
}

func TestDispatcher_PublishFailureIsNotFatal(t *testing.T) {
	pub := event.NewMockPublisher()
	pub.Err = errors.New("broker down")
	d := event.NewDispatcher(pub, 1, nil)

	d.Dispatch(event.New(event.TypeXPDeducted, "ana", event.XPDeducted{Requested: 5}, time.Now()))

	require.NoError(t, d.Close())
	assert.Empty(t, pub.Events())
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *event.Dispatcher
	d.Dispatch(event.New(event.TypeXPDeducted, "ana", nil, time.Now()))
	assert.NoError(t, d.Close())
}

func TestAMQPPublisher_DisabledWithoutURL(t *testing.T) {
	p, err := event.NewAMQPPublisher("", "quiz.events", nil)
	require.NoError(t, err)

	assert.NoError(t, p.Publish(t.Context(), event.New(event.TypeAttemptStarted, "ana", nil, time.Now())))
	assert.NoError(t, p.Close())
}
