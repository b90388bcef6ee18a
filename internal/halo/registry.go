// Package halo implements the HALO session engine: an in-memory registry of
// behavioral-telemetry sessions, each accumulating friction, hesitation and
// pace signals and answering rolling-summary queries.
//
// The registry lives for the process lifetime. Sessions are created lazily on
// first reference, are never removed, and remain addressable after End —
// ending only reads the summary.
package halo

import (
	"errors"
	"sync"
)

// ErrSessionNotFound is returned by End for a session the registry has
// never seen.
var ErrSessionNotFound = errors.New("session not found")

// Summary is the computed view of a session at a point in time. The average
// fields are nil when no value for that signal has been recorded.
type Summary struct {
	EventsCount       int      `json:"events_count"`
	AverageFriction   *float64 `json:"average_friction"`
	AverageHesitation *float64 `json:"average_hesitation"`
	AveragePace       *float64 `json:"average_pace"`
}

// SessionSummary pairs a session ID with its current summary. Used by
// Snapshot for observers such as the live stream.
type SessionSummary struct {
	SessionID string  `json:"session_id"`
	Summary   Summary `json:"summary"`
}

// Registry holds all session accumulators. The registry mutex guards only
// the map structure; each session carries its own lock, so recording against
// different sessions does not contend on a single lock.
//
// The engine performs no input validation. Identifier and signal checks are
// the caller layer's job and happen before anything reaches the registry.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*sessionState),
	}
}

// Start creates an empty accumulator for id if one does not already exist.
// Starting an existing session is a no-op and never resets accumulated
// state. Start always succeeds.
func (r *Registry) Start(id string) {
	r.getOrCreate(id)
}

// Record applies one event to the session, creating it first if needed
// (idempotent-start semantics), and returns the rolling summary including
// this event. The count increment, the appends and the summary read happen
// as one critical section under the session lock, so concurrent Records on
// the same session can never diverge counts from sequence lengths.
func (r *Registry) Record(id string, sig Signals) Summary {
	st := r.getOrCreate(id)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.record(sig)
	return st.summary()
}

// End returns the current summary for id without mutating or removing any
// state. The session remains addressable and can keep accumulating; there
// is no closed state. Unknown sessions yield ErrSessionNotFound.
func (r *Registry) End(id string) (Summary, error) {
	r.mu.RLock()
	st, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return Summary{}, ErrSessionNotFound
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	return st.summary(), nil
}

// Len reports the number of sessions ever started or touched.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Snapshot returns the current summary of every known session. Each summary
// is computed under its session lock; the snapshot as a whole is not a
// single atomic cut across sessions.
func (r *Registry) Snapshot() []SessionSummary {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	states := make([]*sessionState, 0, len(r.sessions))
	for id, st := range r.sessions {
		ids = append(ids, id)
		states = append(states, st)
	}
	r.mu.RUnlock()

	result := make([]SessionSummary, len(states))
	for i, st := range states {
		st.mu.Lock()
		result[i] = SessionSummary{SessionID: ids[i], Summary: st.summary()}
		st.mu.Unlock()
	}
	return result
}

// getOrCreate resolves the accumulator for id, inserting exactly one new
// instance under the write lock when two callers race on first touch.
func (r *Registry) getOrCreate(id string) *sessionState {
	r.mu.RLock()
	st, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return st
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok := r.sessions[id]; ok {
		return st
	}
	st = &sessionState{}
	r.sessions[id] = st
	return st
}
