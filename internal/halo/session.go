package halo

import "sync"

// Signals carries the optional numeric measurements attached to one event.
// A nil field means the signal was absent and is not recorded (not zero-filled).
type Signals struct {
	Friction   *float64
	Hesitation *float64
	Pace       *float64
}

// sessionState is the mutable per-session accumulator. All fields are
// protected by mu; the registry only hands out pointers, never copies.
type sessionState struct {
	mu sync.Mutex

	eventCount       int
	frictionValues   []float64
	hesitationValues []float64
	paceValues       []float64
}

// record applies one event: the count always advances, each present signal
// is appended to its sequence. Caller must hold mu.
func (s *sessionState) record(sig Signals) {
	s.eventCount++

	if sig.Friction != nil {
		s.frictionValues = append(s.frictionValues, *sig.Friction)
	}
	if sig.Hesitation != nil {
		s.hesitationValues = append(s.hesitationValues, *sig.Hesitation)
	}
	if sig.Pace != nil {
		s.paceValues = append(s.paceValues, *sig.Pace)
	}
}

// summary computes the rolling summary over everything recorded so far.
// Caller must hold mu.
func (s *sessionState) summary() Summary {
	return Summary{
		EventsCount:       s.eventCount,
		AverageFriction:   mean(s.frictionValues),
		AverageHesitation: mean(s.hesitationValues),
		AveragePace:       mean(s.paceValues),
	}
}

// mean returns the unweighted arithmetic mean, or nil when no values have
// been recorded. The nil marker is deliberate: an empty sequence must not
// read as an average of zero.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}
