// Package action maps classified gestures to the commands configured
// for them: symbolic name computation, config lookup with _OTHER
// fallback, path resolution, and argument assembly.
package action

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sweeney/button-daemon/internal/config"
	"github.com/sweeney/button-daemon/internal/gesture"
)

// maxNamed caps the click counts and hold seconds that get their own
// CLICK_<n>/HOLD_<n>S keys; anything larger falls back to the _OTHER
// keys directly.
const maxNamed = 99

// Fallback keys for clicks and holds without an exact match.
const (
	ClickOtherKey = "CLICK_OTHER"
	HoldOtherKey  = "HOLD_OTHER"
)

// Command is a fully resolved action invocation.
type Command struct {
	// Path is the absolute path of the command to launch.
	Path string
	// Args are the arguments to pass, without the command itself.
	Args []string
}

// Resolver computes action bindings for gestures from a configuration
// file. The file is consulted fresh on every resolution.
type Resolver struct {
	Config config.File
	Mode   gesture.TimeMode
}

// Name computes the symbolic configuration key for a gesture.
func (r *Resolver) Name(ev gesture.Event) (string, error) {
	switch ev.Kind {
	case gesture.Down:
		return "DOWN", nil
	case gesture.Up:
		return "UP", nil
	case gesture.Click:
		if ev.Count <= maxNamed {
			return fmt.Sprintf("CLICK_%d", ev.Count), nil
		}
		return ClickOtherKey, nil
	case gesture.Hold:
		s := r.Mode.Seconds(int(ev.Held.Milliseconds()))
		if s <= maxNamed {
			return fmt.Sprintf("HOLD_%dS", s), nil
		}
		return HoldOtherKey, nil
	}
	return "", fmt.Errorf("unknown gesture kind %q", ev.Kind)
}

// Resolve looks up the command bound to the gesture. A nil Command with
// a nil error means no action is configured — that is not an error.
func (r *Resolver) Resolve(ev gesture.Event) (*Command, error) {
	name, err := r.Name(ev)
	if err != nil {
		return nil, err
	}

	entry, ok := r.Config.Lookup(name)
	if !ok {
		// Clicks and holds fall back to their _OTHER key; DOWN and UP
		// have no fallback.
		switch ev.Kind {
		case gesture.Click:
			entry, ok = r.Config.Lookup(ClickOtherKey)
		case gesture.Hold:
			entry, ok = r.Config.Lookup(HoldOtherKey)
		}
	}
	if !ok || entry.Value == "" {
		log.Debugf("action: no command for %s", name)
		return nil, nil
	}

	path := entry.Value
	if !filepath.IsAbs(path) {
		// Relative commands resolve against the config file's
		// directory, so a config can ship with its scripts as a
		// portable bundle.
		path = filepath.Join(filepath.Dir(r.Config.Path), path)
	}

	return &Command{Path: path, Args: r.arguments(ev, entry.Args)}, nil
}

// arguments assembles the argv tail: explicit config args verbatim,
// otherwise positional values synthesized from the gesture so simple
// scripts still learn what happened.
func (r *Resolver) arguments(ev gesture.Event, configured string) []string {
	if configured != "" {
		return strings.Fields(configured)
	}
	switch ev.Kind {
	case gesture.Click:
		return []string{strconv.Itoa(ev.Count)}
	case gesture.Hold:
		return []string{
			strconv.Itoa(ev.Count),
			strconv.FormatInt(ev.Held.Milliseconds(), 10),
		}
	}
	return nil
}
