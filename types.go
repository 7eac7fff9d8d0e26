package juggle

import "strings"

// Type represents a declared logical field type.
// Use these constants in schemas: juggle.TypeInteger, juggle.TypeDate, etc.
type Type string

const (
	// TypeBoolean applies host truthiness rules: 0, "0", "" and empty
	// composites become false, everything else true.
	TypeBoolean Type = "boolean"

	// TypeInteger yields int64, truncating floats toward zero and parsing
	// numeric strings.
	TypeInteger Type = "integer"

	// TypeFloat yields float64.
	TypeFloat Type = "float"

	// TypeString yields string; booleans render as "1"/"".
	TypeString Type = "string"

	// TypeArray yields an ordered ([]any) or keyed (map[string]any)
	// composite; scalars wrap as singletons.
	TypeArray Type = "array"

	// TypeDate yields a rich temporal value (temporal.Time).
	TypeDate Type = "date"

	// TypeDateTime yields "YYYY-MM-DD HH:MM:SS" text.
	TypeDateTime Type = "date_time"

	// TypeTimestamp yields int64 epoch seconds.
	TypeTimestamp Type = "timestamp"
)

// aliases maps loose type tokens to their canonical form.
var aliases = map[string]Type{
	"bool":     TypeBoolean,
	"int":      TypeInteger,
	"double":   TypeFloat,
	"datetime": TypeDateTime,
}

// validTypes contains all canonical types the dispatch table recognizes.
var validTypes = map[Type]bool{
	TypeBoolean:   true,
	TypeInteger:   true,
	TypeFloat:     true,
	TypeString:    true,
	TypeArray:     true,
	TypeDate:      true,
	TypeDateTime:  true,
	TypeTimestamp: true,
}

// Normalize maps an aliased or loose type token to its canonical Type.
// Matching is case-insensitive. Unknown tokens pass through unchanged
// and fail later at dispatch.
func Normalize(token string) Type {
	t := strings.ToLower(token)
	if canonical, ok := aliases[t]; ok {
		return canonical
	}
	return Type(t)
}

// IsValidType returns true if t is one of the eight canonical types.
func IsValidType(t Type) bool {
	return validTypes[t]
}
