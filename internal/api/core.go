package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/titanx/halo-core/internal/halo"
	"github.com/titanx/halo-core/internal/validate"
)

type StartSessionRequest struct {
	SessionID string         `json:"session_id"`
	UserID    *string        `json:"user_id"`
	Metadata  map[string]any `json:"metadata"`
}

type EventContext struct {
	Page    *string        `json:"page"`
	Element *string        `json:"element"`
	Extra   map[string]any `json:"extra"`
}

type EventRequest struct {
	SessionID  string        `json:"session_id"`
	EventType  string        `json:"event_type"`
	Timestamp  *float64      `json:"timestamp"`
	Friction   *float64      `json:"friction"`
	Hesitation *float64      `json:"hesitation"`
	Pace       *float64      `json:"pace"`
	Context    *EventContext `json:"context"`
}

type EndSessionRequest struct {
	SessionID string         `json:"session_id"`
	Metadata  map[string]any `json:"metadata"`
	// IncludeSummary defaults to true when omitted.
	IncludeSummary *bool `json:"include_summary"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeEnvelope(w, http.StatusBadRequest, failure(), withMsg("Invalid request body."))
		return false
	}
	return true
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, withData(map[string]any{
		"service": ServiceName,
		"version": APIVersion,
		"status":  "running",
	}))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, withMsg("ok"))
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validate.SessionID(req.SessionID); err != nil {
		writeEnvelope(w, http.StatusOK, failure(), withMsg(err.Error()))
		return
	}

	s.registry.Start(req.SessionID)
	s.metrics.SessionsStarted.Inc()
	s.broadcaster.SessionStarted(req.SessionID)

	s.log.Info("session started", "session_id", req.SessionID)

	data := map[string]any{"user_id": req.UserID}
	writeEnvelope(w, http.StatusOK,
		withSession(req.SessionID),
		withEvent("session_started"),
		withData(data),
	)
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := validate.SessionID(req.SessionID)
	if err == nil {
		err = validate.EventType(req.EventType)
	}
	if err == nil {
		err = validate.TimestampPtr(req.Timestamp)
	}
	if err == nil {
		err = validate.Signal("friction", req.Friction)
	}
	if err == nil {
		err = validate.Signal("hesitation", req.Hesitation)
	}
	if err == nil {
		err = validate.Signal("pace", req.Pace)
	}
	if err != nil {
		writeEnvelope(w, http.StatusOK, failure(),
			withSession(req.SessionID),
			withEvent(req.EventType),
			withMsg(err.Error()),
		)
		return
	}

	rolling := s.registry.Record(req.SessionID, halo.Signals{
		Friction:   req.Friction,
		Hesitation: req.Hesitation,
		Pace:       req.Pace,
	})
	s.metrics.EventsRecorded.Inc()
	s.broadcaster.EventRecorded(req.SessionID, req.EventType, rolling)

	s.log.Info("event recorded",
		"session_id", req.SessionID,
		"event_type", req.EventType,
		"events_count", rolling.EventsCount,
	)

	writeEnvelope(w, http.StatusOK,
		withSession(req.SessionID),
		withEvent(req.EventType),
		withData(rolling),
	)
}

func (s *Server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var req EndSessionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := validate.SessionID(req.SessionID); err != nil {
		writeEnvelope(w, http.StatusOK, failure(), withMsg(err.Error()))
		return
	}

	summary, err := s.registry.End(req.SessionID)
	if err != nil {
		if errors.Is(err, halo.ErrSessionNotFound) {
			writeEnvelope(w, http.StatusOK, failure(),
				withSession(req.SessionID),
				withMsg("Session not found."),
			)
			return
		}
		writeEnvelope(w, http.StatusInternalServerError, failure(), withMsg(err.Error()))
		return
	}

	s.metrics.SessionsEnded.Inc()
	s.broadcaster.SessionEnded(req.SessionID, summary)

	s.log.Info("session ended",
		"session_id", req.SessionID,
		"events_count", summary.EventsCount,
	)

	if req.IncludeSummary != nil && !*req.IncludeSummary {
		writeEnvelope(w, http.StatusOK,
			withSession(req.SessionID),
			withEvent("session_ended"),
		)
		return
	}

	writeEnvelope(w, http.StatusOK,
		withSession(req.SessionID),
		withEvent("session_ended"),
		withData(summary),
	)
}
