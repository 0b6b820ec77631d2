// Package config reads the line-oriented action configuration file.
// Lookups open and scan the file fresh every time so that edits take
// effect without restarting the daemon — deliberate, not an oversight.
//
// Format: '#' starts a comment; a line is NAME [VALUE [ARGS...]] with
// fields separated by runs of spaces and tabs. ARGS is the raw
// remainder of the line. The first line whose NAME matches wins.
package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// MaxValueLen bounds a single VALUE or ARGS field. Oversized fields are
// logged and do not satisfy a lookup.
const MaxValueLen = 4096

const whitespace = " \t"

// Entry is a configured value with its optional trailing arguments.
// A key present with an empty Value is a deliberate no-op, distinct
// from the key being absent.
type Entry struct {
	Value string
	Args  string
}

// File is a handle to a configuration file path.
type File struct {
	Path string
}

// Lookup scans the file for the first line whose NAME equals key.
// The boolean reports whether the key was present; recoverable parse
// problems are logged and never returned as errors, since a broken
// config file must not disable button detection.
func (f File) Lookup(key string) (Entry, bool) {
	file, err := os.Open(f.Path)
	if err != nil {
		log.Debugf("config: open %s: %v", f.Path, err)
		return Entry{}, false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name, value, args := parseLine(scanner.Text())
		if name != key {
			continue
		}
		if len(value) >= MaxValueLen || len(args) >= MaxValueLen {
			log.Warnf("config: too long value set in %s on line %d", f.Path, lineNo)
			continue
		}
		return Entry{Value: value, Args: args}, true
	}
	if err := scanner.Err(); err != nil {
		log.Warnf("config: reading %s: %v", f.Path, err)
	}
	return Entry{}, false
}

// LookupUint returns the unsigned integer value configured for key, or
// def when the key is absent, empty, or unparsable.
func (f File) LookupUint(key string, def uint) uint {
	entry, ok := f.Lookup(key)
	if !ok || entry.Value == "" {
		return def
	}
	n, err := strconv.ParseUint(entry.Value, 10, 32)
	if err != nil {
		log.Warnf("config: %s: %s is not an unsigned number: %q", f.Path, key, entry.Value)
		return def
	}
	return uint(n)
}

// parseLine splits one configuration line into NAME, VALUE, and the
// raw ARGS remainder. Comment and blank lines come back as an empty
// name, as does content too short to be an entry (a single stray
// character is ignored, not a syntax error).
func parseLine(line string) (name, value, args string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimLeft(line, whitespace)
	if len(strings.TrimRight(line, whitespace)) < 2 {
		return "", "", ""
	}

	rest := ""
	if i := strings.IndexAny(line, whitespace); i >= 0 {
		name, rest = line[:i], strings.TrimLeft(line[i:], whitespace)
	} else {
		name = line
	}
	if rest == "" {
		return name, "", ""
	}

	if i := strings.IndexAny(rest, whitespace); i >= 0 {
		value = rest[:i]
		args = strings.TrimLeft(rest[i:], whitespace)
	} else {
		value = rest
	}
	return name, value, args
}
