package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventValidated   EventType = "validated"
	EventSynthesized EventType = "synthesized"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp   time.Time `json:"timestamp"`
	Type        EventType `json:"type"`
	Fingerprint uint64    `json:"fingerprint"`
}

// ValidationEvent is emitted after an automaton has been classified.
type ValidationEvent struct {
	EventBase
	Outcome Outcome `json:"outcome"`
	States  int     `json:"states"`
}

// SynthesisEvent is emitted after a regex synthesis attempt.
type SynthesisEvent struct {
	EventBase
	Code     Code          `json:"code,omitempty"` // set when synthesis was refused
	Length   int           `json:"length"`
	Duration time.Duration `json:"duration"`
	Cached   bool          `json:"cached,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for pipeline observability.
type LifecycleHooks struct {
	OnValidated   func(context.Context, *ValidationEvent)
	OnSynthesized func(context.Context, *SynthesisEvent)
}

// Merge returns hooks calling h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnValidated: func(ctx context.Context, e *ValidationEvent) {
			if h.OnValidated != nil {
				h.OnValidated(ctx, e)
			}
			if other.OnValidated != nil {
				other.OnValidated(ctx, e)
			}
		},
		OnSynthesized: func(ctx context.Context, e *SynthesisEvent) {
			if h.OnSynthesized != nil {
				h.OnSynthesized(ctx, e)
			}
			if other.OnSynthesized != nil {
				other.OnSynthesized(ctx, e)
			}
		},
	}
}
