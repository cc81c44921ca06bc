// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"fmt"
	"strconv"
	"strings"
)

// A Level is the importance or severity of a measurement event.
// The higher the level, the more severe the event.
//
// Levels are spaced ten apart so that sinks with finer-grained schemes can
// place their own levels in between. The zero Level is not a valid level;
// option structs use it to mean "the default".
type Level int

// Names for common levels.
const (
	LevelVerbose     Level = 10
	LevelDebug       Level = 20
	LevelInformation Level = 30
	LevelWarning     Level = 40
	LevelError       Level = 50
	LevelFatal       Level = 60
)

// String returns a name for the level.
// If the level has a name, then that name in uppercase is returned.
// If the level is between named values, then an offset from the
// nearest lower name is appended:
//
//	LevelWarning.String() => "WARNING"
//	(LevelWarning+2).String() => "WARNING+2"
func (l Level) String() string {
	str := func(base string, val Level) string {
		if val == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, val)
	}

	switch {
	case l <= 0:
		return fmt.Sprintf("!BADLEVEL(%d)", int(l))
	case l < LevelDebug:
		return str("VERBOSE", l-LevelVerbose)
	case l < LevelInformation:
		return str("DEBUG", l-LevelDebug)
	case l < LevelWarning:
		return str("INFORMATION", l-LevelInformation)
	case l < LevelError:
		return str("WARNING", l-LevelWarning)
	case l < LevelFatal:
		return str("ERROR", l-LevelError)
	default:
		return str("FATAL", l-LevelFatal)
	}
}

// Level returns the receiver.
// It implements Leveler.
func (l Level) Level() Level { return l }

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts the output of String, case-insensitively, as well as the
// short names "trace", "info" and "warn".
func (l *Level) UnmarshalText(data []byte) error {
	lv, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = lv
	return nil
}

// ParseLevel parses a level name such as "debug" or "WARNING+1".
func ParseLevel(s string) (Level, error) {
	name, offset := s, 0
	if i := strings.IndexAny(s, "+-"); i > 0 {
		n, err := strconv.Atoi(s[i:])
		if err != nil {
			return 0, fmt.Errorf("measure: level %q: bad offset: %w", s, err)
		}
		name, offset = s[:i], n
	}
	var base Level
	switch strings.ToLower(name) {
	case "verbose", "trace":
		base = LevelVerbose
	case "debug":
		base = LevelDebug
	case "information", "info":
		base = LevelInformation
	case "warning", "warn":
		base = LevelWarning
	case "error":
		base = LevelError
	case "fatal":
		base = LevelFatal
	default:
		return 0, fmt.Errorf("measure: unknown level %q", s)
	}
	return base + Level(offset), nil
}

// A Leveler reports a Level.
//
// Level implements Leveler, so a constant level can be used wherever a
// Leveler is required.
type Leveler interface {
	Level() Level
}

func or(l, def Level) Level {
	if l == 0 {
		return def
	}
	return l
}
