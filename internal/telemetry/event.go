package telemetry

import (
	"time"
)

type event struct {
	id          string
	eventType   EventType
	userID      string
	time        time.Time
	executionID string
	command     string
	version     string
	data        []EventData
}

// EventData holds additional event information
type EventData struct {
	Key   EventDataKey
	Value interface{}
}

// EventType is a CLI event type
type EventType string

// set of supported CLI event types
const (
	EventTypeCommandStart    EventType = "COMMAND_START"
	EventTypeCommandComplete EventType = "COMMAND_COMPLETE"
	EventTypeCommandError    EventType = "COMMAND_ERROR"
)

// EventDataKey is the key of an event's additional information
type EventDataKey string

// set of supported event data keys
const (
	EventDataKeyErr    EventDataKey = "err"
	EventDataKeyStatus EventDataKey = "status"
)
