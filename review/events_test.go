package review

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelNotifier_DeliversInOrder(t *testing.T) {
	n := NewChannelNotifier(4)
	n.Publish(Event{Kind: EventProvidersLoaded})
	n.Publish(Event{Kind: EventSubmissionFailed, Err: errors.New("boom")})
	n.Close()

	var got []EventKind
	for e := range n.Events() {
		got = append(got, e.Kind)
	}
	assert.Equal(t, []EventKind{EventProvidersLoaded, EventSubmissionFailed}, got)
}

func TestChannelNotifier_PublishAfterClose(t *testing.T) {
	n := NewChannelNotifier(1)
	n.Close()
	n.Close()

	assert.NotPanics(t, func() { n.Publish(Event{Kind: EventNoProviders}) })
	_, open := <-n.Events()
	assert.False(t, open)
}

func TestChannelNotifier_DropsWhenFull(t *testing.T) {
	n := NewChannelNotifier(1)
	n.Publish(Event{Kind: EventProvidersLoaded})
	n.Publish(Event{Kind: EventNoProviders})

	assert.Equal(t, int64(1), n.Dropped())
	e := <-n.Events()
	assert.Equal(t, EventProvidersLoaded, e.Kind)
}

func TestChannelNotifier_SubmissionOutcomeWaitsForSpace(t *testing.T) {
	n := NewChannelNotifier(1)
	n.Publish(Event{Kind: EventProvidersLoaded})

	published := make(chan struct{})
	go func() {
		n.Publish(Event{Kind: EventSubmissionSucceeded, RequestID: "req-1"})
		close(published)
	}()

	select {
	case <-published:
		t.Fatal("outcome published into a full buffer")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Equal(t, EventProvidersLoaded, (<-n.Events()).Kind)
	e := <-n.Events()
	assert.Equal(t, EventSubmissionSucceeded, e.Kind)
	assert.Equal(t, "req-1", e.RequestID)
	<-published
	assert.Zero(t, n.Dropped())
}

func TestChannelNotifier_CloseReleasesWaitingPublisher(t *testing.T) {
	n := NewChannelNotifier(1)
	n.Publish(Event{Kind: EventNoProviders})

	published := make(chan struct{})
	go func() {
		n.Publish(Event{Kind: EventSubmissionFailed, Err: errors.New("boom")})
		close(published)
	}()

	n.Close()
	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publisher still blocked after Close")
	}
}

func TestNotifierFunc(t *testing.T) {
	var got []Event
	var n Notifier = NotifierFunc(func(e Event) { got = append(got, e) })
	n.Publish(Event{Kind: EventExtractionsFetched})
	require.Len(t, got, 1)
	assert.Equal(t, "extractions_fetched", got[0].Kind.String())
}
