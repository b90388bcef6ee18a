package stream

import (
	"github.com/titanx/halo-core/internal/halo"
)

type MessageType string

const (
	MsgSnapshot       MessageType = "snapshot"
	MsgSessionStarted MessageType = "session_started"
	MsgEventRecorded  MessageType = "event_recorded"
	MsgSessionEnded   MessageType = "session_ended"
)

type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

type SnapshotPayload struct {
	Sessions []halo.SessionSummary `json:"sessions"`
}

type SessionStartedPayload struct {
	SessionID string `json:"session_id"`
}

type EventRecordedPayload struct {
	SessionID string       `json:"session_id"`
	EventType string       `json:"event_type"`
	Summary   halo.Summary `json:"summary"`
}

type SessionEndedPayload struct {
	SessionID string       `json:"session_id"`
	Summary   halo.Summary `json:"summary"`
}
