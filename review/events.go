package review

import (
	"sync"
	"sync/atomic"
)

// EventKind names a notification sent from the review service to its client
type EventKind int

const (
	EventExtractionsFetched EventKind = iota + 1
	EventProvidersLoaded
	EventNoProviders
	EventSubmissionSucceeded
	EventSubmissionFailed
)

func (k EventKind) String() string {
	switch k {
	case EventExtractionsFetched:
		return "extractions_fetched"
	case EventProvidersLoaded:
		return "providers_loaded"
	case EventNoProviders:
		return "no_providers"
	case EventSubmissionSucceeded:
		return "submission_succeeded"
	case EventSubmissionFailed:
		return "submission_failed"
	}
	return "unknown"
}

// outcome reports whether the event ends a submission. Those are never dropped.
func (k EventKind) outcome() bool {
	return k == EventSubmissionSucceeded || k == EventSubmissionFailed
}

// Event is a single notification. RequestID is set for successful
// submissions, Err for failures.
type Event struct {
	Kind      EventKind
	RequestID string
	Err       error
}

// Notifier receives review events
type Notifier interface {
	Publish(Event)
}

// ChannelNotifier delivers events in publish order on a buffered channel.
// All events are observed on whichever single goroutine drains Events, so a
// consumer that owns the presentation state can apply them directly.
//
// Submission outcomes wait for buffer space until the notifier is closed.
// Every other event is dropped once the buffer is full.
type ChannelNotifier struct {
	mu        sync.RWMutex
	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
	closed    bool
	dropped   atomic.Int64
}

// NewChannelNotifier creates a notifier buffering up to size events
func NewChannelNotifier(size int) *ChannelNotifier {
	if size < 1 {
		size = 1
	}
	return &ChannelNotifier{
		ch:   make(chan Event, size),
		done: make(chan struct{}),
	}
}

// Events returns the channel to drain. It is closed by Close.
func (n *ChannelNotifier) Events() <-chan Event {
	return n.ch
}

// Publish enqueues an event. It is a no-op after Close.
func (n *ChannelNotifier) Publish(e Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}
	if e.Kind.outcome() {
		select {
		case n.ch <- e:
		case <-n.done:
		}
		return
	}
	select {
	case n.ch <- e:
	default:
		n.dropped.Add(1)
	}
}

// Dropped returns the number of informational events lost to a full buffer
func (n *ChannelNotifier) Dropped() int64 {
	return n.dropped.Load()
}

// Close stops delivery and closes the events channel. Publishers waiting
// for buffer space give up.
func (n *ChannelNotifier) Close() {
	n.closeOnce.Do(func() {
		close(n.done)
		n.mu.Lock()
		defer n.mu.Unlock()
		n.closed = true
		close(n.ch)
	})
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(Event)

func (f NotifierFunc) Publish(e Event) { f(e) }
