// Package temporal provides the rich temporal value used by juggle's
// date, date_time and timestamp coercions.
//
// Time wraps time.Time and adds a constructor that accepts the
// heterogeneous inputs a datastore can hand back: an existing Time or
// time.Time, epoch seconds as an integer, float or numeric string, or
// text in a small fixed set of layouts.
package temporal

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Layout is the fixed text rendering used by date_time coercion.
const Layout = "2006-01-02 15:04:05"

// layouts are the accepted text inputs, tried in order.
var layouts = []string{
	Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time is a moment in time. The zero value is the zero time.Time.
type Time struct {
	time.Time
}

// FromTime wraps a time.Time.
func FromTime(t time.Time) Time {
	return Time{Time: t}
}

// FromUnix returns the Time for the given epoch seconds, in UTC.
func FromUnix(sec int64) Time {
	return Time{Time: time.Unix(sec, 0).UTC()}
}

// New constructs a Time from heterogeneous input. Accepted inputs:
//
//   - Time / *Time / time.Time: passed through unchanged
//   - int, int32, int64, uint, uint64: epoch seconds
//   - float32, float64: epoch seconds, fraction discarded
//   - string: epoch seconds if all digits (optional leading minus),
//     otherwise parsed against the accepted layouts in UTC
//
// Any other input, or text matching no layout, is an error.
func New(v any) (Time, error) {
	switch t := v.(type) {
	case Time:
		return t, nil
	case *Time:
		return *t, nil
	case time.Time:
		return Time{Time: t}, nil
	case int:
		return FromUnix(int64(t)), nil
	case int32:
		return FromUnix(int64(t)), nil
	case int64:
		return FromUnix(t), nil
	case uint:
		return FromUnix(int64(t)), nil
	case uint64:
		return FromUnix(int64(t)), nil
	case float32:
		return FromUnix(int64(t)), nil
	case float64:
		return FromUnix(int64(t)), nil
	case string:
		return parse(t)
	default:
		return Time{}, fmt.Errorf("cannot construct time from %T", v)
	}
}

// parse interprets text as epoch seconds or layout-formatted time.
func parse(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Time{}, fmt.Errorf("cannot parse empty string as time")
	}

	if isDigits(s) {
		sec, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Time{}, fmt.Errorf("parse epoch %q: %w", s, err)
		}
		return FromUnix(sec), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return Time{Time: t}, nil
		}
	}

	return Time{}, fmt.Errorf("cannot parse %q as time", s)
}

// isDigits reports whether s is an optionally-signed run of digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
		if s == "" {
			return false
		}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the fixed Layout form.
func (t Time) String() string {
	return t.Format(Layout)
}

// Marshaling renders the Layout form in every codec. Snapshots decode
// back as plain scalars and re-coerce through the record's schema, so no
// unmarshal counterparts are needed.

// MarshalJSON renders the Layout form, shadowing the embedded
// time.Time rendering.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(Layout))
}

// MarshalYAML renders the Layout form.
func (t Time) MarshalYAML() (any, error) {
	return t.Format(Layout), nil
}

// MarshalText renders the Layout form.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.Format(Layout)), nil
}

// EncodeMsgpack renders the Layout form.
func (t Time) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(t.Format(Layout))
}
