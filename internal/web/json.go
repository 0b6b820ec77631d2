package web

import (
	"encoding/json"
	"time"

	"github.com/sweeney/button-daemon/internal/status"
)

// StatusJSON is the JSON representation of the daemon status.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Last          *LastJSON  `json:"last_gesture,omitempty"`
	Counts        CountsJSON `json:"gesture_counts"`
	UptimeSeconds int64      `json:"uptime_seconds"`
	StartTime     string     `json:"start_time"`
	Timestamp     string     `json:"timestamp"`
	MQTT          MQTTStatus `json:"mqtt"`
	Config        ConfigJSON `json:"config"`
}

// LastJSON is the JSON representation of the most recent gesture.
type LastJSON struct {
	Gesture string `json:"gesture"`
	Count   int    `json:"count,omitempty"`
	HeldMs  int64  `json:"held_ms,omitempty"`
	At      string `json:"at"`
}

// CountsJSON is the JSON representation of gesture counts.
type CountsJSON struct {
	Down  int `json:"down"`
	Up    int `json:"up"`
	Click int `json:"click"`
	Hold  int `json:"hold"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Enabled   bool   `json:"enabled"`
	Connected bool   `json:"connected"`
	Broker    string `json:"broker,omitempty"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	Pin             int    `json:"pin"`
	ConfigPath      string `json:"config_path"`
	ClickWindowMs   int64  `json:"click_window_ms"`
	HoldThresholdMs int64  `json:"hold_threshold_ms"`
	ClickCountLimit uint   `json:"click_count_limit"`
	FullTime        bool   `json:"full_time"`
	OffsetTime      bool   `json:"offset_time"`
	HTTPAddr        string `json:"http_addr"`
}

func formatJSON(snap status.Snapshot) []byte {
	sj := StatusJSON{
		Status: StatusInner{
			Counts: CountsJSON{
				Down:  snap.Counts.Down,
				Up:    snap.Counts.Up,
				Click: snap.Counts.Click,
				Hold:  snap.Counts.Hold,
			},
			UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
			StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
			Timestamp:     snap.Now.UTC().Format(time.RFC3339),
			MQTT: MQTTStatus{
				Enabled:   snap.Config.Broker != "",
				Connected: snap.MQTTConnected,
				Broker:    snap.Config.Broker,
			},
			Config: ConfigJSON{
				Pin:             snap.Config.Pin,
				ConfigPath:      snap.Config.ConfigPath,
				ClickWindowMs:   snap.Config.ClickWindowMs,
				HoldThresholdMs: snap.Config.HoldThresholdMs,
				ClickCountLimit: snap.Config.ClickCountLimit,
				FullTime:        snap.Config.FullTime,
				OffsetTime:      snap.Config.OffsetTime,
				HTTPAddr:        snap.Config.HTTPAddr,
			},
		},
	}

	if snap.Last != nil {
		sj.Status.Last = &LastJSON{
			Gesture: string(snap.Last.Kind),
			Count:   snap.Last.Count,
			HeldMs:  snap.Last.HeldMs,
			At:      snap.Last.At.UTC().Format(time.RFC3339),
		}
	}

	data, _ := json.MarshalIndent(sj, "", "  ")
	return data
}
