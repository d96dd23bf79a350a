package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommandApply EventType = "command_apply"
	EventLineDone     EventType = "line_done"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommandEvent describes one command folded over the message.
type CommandEvent struct {
	EventBase
	Family    Family    `json:"family"`
	Token     string    `json:"token"`
	Direction Direction `json:"direction"`
	Before    string    `json:"before"`
	After     string    `json:"after"`
}

// LineEvent describes the outcome of one message/command pair.
type LineEvent struct {
	EventBase
	Direction Direction `json:"direction"`
	Commands  int       `json:"commands"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnCommandApply func(context.Context, *CommandEvent)
	OnLineDone     func(context.Context, *LineEvent)
}
