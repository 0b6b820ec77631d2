// Package events provides optional MQTT publishing of gesture and
// daemon lifecycle events, with abstraction for testing. Publishing is
// observational only: failures are logged by the caller and never
// affect gesture detection or action dispatch.
package events

import (
	"encoding/json"
	"time"

	"github.com/sweeney/button-daemon/internal/gesture"
)

// Topic is the MQTT topic for gesture events.
const Topic = "input/button/gestures"

// TopicSystem is the MQTT topic for daemon lifecycle events.
const TopicSystem = "input/button/system"

// Publisher publishes events to MQTT.
type Publisher interface {
	// Publish sends a gesture event to the broker.
	Publish(ev gesture.Event) error

	// PublishSystem sends a daemon lifecycle event to the broker.
	PublishSystem(ev SystemEvent) error

	// Close disconnects from the broker.
	Close() error
}

// ConnectionStatus reports whether the MQTT connection is active.
type ConnectionStatus interface {
	IsConnected() bool
}

// SystemEvent is a daemon lifecycle event.
type SystemEvent struct {
	Timestamp time.Time
	Event     string // "STARTUP" or "SHUTDOWN"
	Reason    string // e.g. "SIGTERM" (shutdown only)
	Retained  bool
}

// Payload is the MQTT message payload for a gesture event.
type Payload struct {
	Button ButtonPayload `json:"button"`
}

// ButtonPayload contains the gesture details.
type ButtonPayload struct {
	Timestamp string `json:"timestamp"`
	Gesture   string `json:"gesture"`
	Count     int    `json:"count,omitempty"`
	HeldMs    int64  `json:"held_ms,omitempty"`
}

// FormatPayload creates the JSON payload for a gesture event.
func FormatPayload(ev gesture.Event) ([]byte, error) {
	payload := Payload{
		Button: ButtonPayload{
			Timestamp: ev.Timestamp.UTC().Format(time.RFC3339),
			Gesture:   string(ev.Kind),
			Count:     ev.Count,
			HeldMs:    ev.Held.Milliseconds(),
		},
	}
	return json.Marshal(payload)
}

// SystemPayload is the MQTT message payload for a lifecycle event.
type SystemPayload struct {
	System SystemPayloadInner `json:"system"`
}

// SystemPayloadInner contains the lifecycle event details.
type SystemPayloadInner struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
	Reason    string `json:"reason,omitempty"`
}

// FormatSystemPayload creates the JSON payload for a lifecycle event.
func FormatSystemPayload(ev SystemEvent) ([]byte, error) {
	payload := SystemPayload{
		System: SystemPayloadInner{
			Timestamp: ev.Timestamp.UTC().Format(time.RFC3339),
			Event:     ev.Event,
			Reason:    ev.Reason,
		},
	}
	return json.Marshal(payload)
}
