// Package testing provides test utilities for juggle.
package testing

import "github.com/zoobzio/juggle"

// UserFields returns the canonical user fixture schema mapping.
func UserFields() map[string]juggle.Type {
	return map[string]juggle.Type{
		"born_at":   juggle.TypeDate,
		"seen_at":   juggle.TypeDateTime,
		"logged_at": juggle.TypeTimestamp,
		"age":       juggle.TypeInteger,
		"score":     juggle.TypeFloat,
		"active":    juggle.TypeBoolean,
		"name":      juggle.TypeString,
		"tags":      juggle.TypeArray,
	}
}

// UserSchema registers and returns a fresh user schema under the given
// record type name.
func UserSchema(recordType string) *juggle.Schema {
	s := juggle.NewSchema(UserFields())
	juggle.Register(recordType, s)
	return s
}

// UserRaw returns raw datastore-shaped values for the user fixture,
// everything as text the way a TEXT-column store would hand it back.
func UserRaw() map[string]any {
	return map[string]any{
		"born_at":   "1990-05-01 00:00:00",
		"seen_at":   "2024-03-09T12:30:00Z",
		"logged_at": "2024-03-09 12:30:00",
		"age":       "7",
		"score":     "98.5",
		"active":    "1",
		"name":      "alice",
		"tags":      `["a","b"]`,
	}
}
