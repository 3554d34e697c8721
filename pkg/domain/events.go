package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransition   EventType = "transition"
	EventPathAttempt  EventType = "path_attempt"
	EventNavigation   EventType = "navigation"
	EventStateChanged EventType = "state_changed"
)

// Outcome of a navigation.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeNoPath    Outcome = "no_path"
	OutcomeAlready   Outcome = "already_active"
	OutcomeNotFound  Outcome = "not_found"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
}

// TransitionEvent reports a single hop.
type TransitionEvent struct {
	EventBase
	From     StateID       `json:"from"`
	To       StateID       `json:"to"`
	OK       bool          `json:"ok"`
	Duration time.Duration `json:"duration"`
}

// PathEvent reports the start of an attempt to walk a path.
type PathEvent struct {
	EventBase
	Target  StateID   `json:"target"`
	States  []StateID `json:"states"`
	Score   int       `json:"score"`
	Attempt int       `json:"attempt"`
}

// NavigationEvent reports the end of an OpenState call.
type NavigationEvent struct {
	EventBase
	Target   string        `json:"target"`
	Outcome  Outcome       `json:"outcome"`
	Attempts int           `json:"attempts"`
	Duration time.Duration `json:"duration"`
}

// StateEvent reports an active-set change.
type StateEvent struct {
	EventBase
	StateID StateID `json:"state_id"`
	Active  bool    `json:"active"`
	Hidden  bool    `json:"hidden,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTransition   func(context.Context, *TransitionEvent)
	OnPathAttempt  func(context.Context, *PathEvent)
	OnNavigation   func(context.Context, *NavigationEvent)
	OnStateChanged func(context.Context, *StateEvent)
}

// Merge returns hooks calling h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransition:   chain(h.OnTransition, other.OnTransition),
		OnPathAttempt:  chain(h.OnPathAttempt, other.OnPathAttempt),
		OnNavigation:   chain(h.OnNavigation, other.OnNavigation),
		OnStateChanged: chain(h.OnStateChanged, other.OnStateChanged),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
