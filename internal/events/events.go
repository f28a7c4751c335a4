// Package events carries rollcall's notification surface over NATS so
// operator frontends (the watch command, a dashboard) can subscribe
// without linking the daemon.
package events

import (
	"context"
	"time"

	"github.com/alfredjeanlab/rollcall/internal/model"
)

// Event topic constants
const (
	TopicStatus          = "rollcall.status"
	TopicConnection      = "rollcall.connection"
	TopicProgressShown   = "rollcall.progress.shown"
	TopicProgressUpdated = "rollcall.progress.updated"
	TopicProgressHidden  = "rollcall.progress.hidden"
	TopicScanMatched     = "rollcall.scan.matched"
	TopicScanEnrolled    = "rollcall.scan.enrolled"
)

// Event types

type Status struct {
	EventID string    `json:"event_id"`
	Text    string    `json:"text"`
	At      time.Time `json:"at"`
}

type Connection struct {
	EventID string    `json:"event_id"`
	Text    string    `json:"text"`
	Healthy bool      `json:"healthy"`
	At      time.Time `json:"at"`
}

type Progress struct {
	EventID string `json:"event_id"`
	Title   string `json:"title,omitempty"`
	Text    string `json:"text,omitempty"`
}

type Scan struct {
	EventID string        `json:"event_id"`
	Student model.Student `json:"student"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

// Message is one delivered event with the concrete topic it arrived on.
type Message struct {
	Topic string
	Data  []byte
}

// Subscriber is the interface for receiving event payloads.
type Subscriber interface {
	Subscribe(topic string) (<-chan Message, func(), error)
	Close() error
}
