// Package validate is the caller-side validation layer for the HALO engine.
// Every shape and range check happens here, before a request touches the
// registry; the engine itself trusts its inputs.
package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// SessionID checks that id is a non-empty string after trimming whitespace.
func SessionID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("Invalid session_id: must be a non-empty string.")
	}
	return nil
}

// EventType checks that eventType is a non-empty string after trimming.
func EventType(eventType string) error {
	if strings.TrimSpace(eventType) == "" {
		return errors.New("Invalid event_type: must be a non-empty string.")
	}
	return nil
}

// TimestampPtr checks a decoded timestamp field: it must be present,
// finite and non-negative.
func TimestampPtr(ts *float64) error {
	if ts == nil {
		return errors.New("Invalid timestamp: must be a number.")
	}
	return Timestamp(*ts)
}

// Timestamp checks that ts is finite and non-negative.
func Timestamp(ts float64) error {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return errors.New("Invalid timestamp: must be a finite number.")
	}
	if ts < 0 {
		return errors.New("Invalid timestamp: must be >= 0.")
	}
	return nil
}

// Signal checks an optional signal value. A nil value is valid (the signal
// is simply absent); a present value must be finite and non-negative.
func Signal(name string, value *float64) error {
	if value == nil {
		return nil
	}
	if math.IsNaN(*value) || math.IsInf(*value, 0) {
		return fmt.Errorf("Invalid %s: must be a finite number.", name)
	}
	if *value < 0 {
		return fmt.Errorf("Invalid %s: must be >= 0.", name)
	}
	return nil
}
