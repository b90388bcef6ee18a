package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// APIVersion is reported in every response's meta block.
const APIVersion = "1.0.0"

// ServiceName identifies this service in the root and status endpoints.
const ServiceName = "titan-x-core"

// Envelope is the uniform response format (TRF-1). Every endpoint returns
// it, success or failure. Data is never null: it defaults to an empty
// object.
type Envelope struct {
	OK        bool    `json:"ok"`
	SessionID *string `json:"session_id"`
	Event     *string `json:"event"`
	Data      any     `json:"data"`
	Msg       *string `json:"msg"`
	Meta      Meta    `json:"meta"`
}

type Meta struct {
	Version   string  `json:"version"`
	Timestamp float64 `json:"timestamp"`
}

type envelopeOpt func(*Envelope)

func withSession(id string) envelopeOpt {
	return func(e *Envelope) { e.SessionID = &id }
}

func withEvent(name string) envelopeOpt {
	return func(e *Envelope) { e.Event = &name }
}

func withData(data any) envelopeOpt {
	return func(e *Envelope) { e.Data = data }
}

func withMsg(msg string) envelopeOpt {
	return func(e *Envelope) { e.Msg = &msg }
}

func failure() envelopeOpt {
	return func(e *Envelope) { e.OK = false }
}

func newEnvelope(opts ...envelopeOpt) Envelope {
	e := Envelope{
		OK:   true,
		Data: map[string]any{},
		Meta: Meta{
			Version:   APIVersion,
			Timestamp: float64(time.Now().UnixNano()) / 1e9,
		},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func writeEnvelope(w http.ResponseWriter, status int, opts ...envelopeOpt) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(newEnvelope(opts...))
}
