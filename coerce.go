package juggle

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/zoobzio/juggle/temporal"
)

// coerceFunc converts a non-nil raw value into its logical form.
type coerceFunc func(v any) (any, error)

// coercions is the closed dispatch table. Exactly the eight canonical
// types are registered; anything else reaching dispatch is a schema bug.
var coercions = map[Type]coerceFunc{
	TypeBoolean:   coerceBoolean,
	TypeInteger:   coerceInteger,
	TypeFloat:     coerceFloat,
	TypeString:    coerceString,
	TypeArray:     coerceArray,
	TypeDate:      coerceDate,
	TypeDateTime:  coerceDateTime,
	TypeTimestamp: coerceTimestamp,
}

// Coerce converts v into the logical form of the canonical type t.
//
// A nil value short-circuits to nil without dispatching. An unknown type
// returns a ConfigError wrapping ErrUnknownType. A value that cannot be
// interpreted under t returns a CoerceError wrapping ErrCoerce.
//
// Coercion is idempotent: coercing an already-coerced value yields an
// equal value.
func Coerce(t Type, v any) (any, error) {
	return coerceValue(t, "", v)
}

// coerceValue is Coerce with field context for error reporting.
func coerceValue(t Type, field string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	fn, ok := coercions[t]
	if !ok {
		return nil, newConfigError(ErrUnknownType, t, field)
	}

	out, err := fn(v)
	if err != nil {
		return nil, newCoerceError(t, field, v, err)
	}
	return out, nil
}

// coerceBoolean applies host truthiness rules. It is total: every
// non-nil input maps to true or false.
func coerceBoolean(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		return t != "" && t != "0", nil
	case int:
		return t != 0, nil
	case int8:
		return t != 0, nil
	case int16:
		return t != 0, nil
	case int32:
		return t != 0, nil
	case int64:
		return t != 0, nil
	case uint:
		return t != 0, nil
	case uint8:
		return t != 0, nil
	case uint16:
		return t != 0, nil
	case uint32:
		return t != 0, nil
	case uint64:
		return t != 0, nil
	case float32:
		return t != 0, nil
	case float64:
		return t != 0, nil
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false, nil
		}
	}

	// Everything else (structs, non-nil pointers) juggles to true.
	return true, nil
}

// coerceInteger yields int64. Floats truncate toward zero; numeric
// strings parse, float strings truncate after parsing.
func coerceInteger(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return int64(1), nil
		}
		return int64(0), nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		return int64(t), nil
	case float32:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case json.Number:
		return parseInteger(t.String())
	case string:
		return parseInteger(t)
	default:
		return nil, fmt.Errorf("cannot convert %T to integer", v)
	}
}

// parseInteger parses an integer or float string, truncating the latter.
func parseInteger(s string) (any, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as integer", s)
	}
	return int64(f), nil
}

// coerceFloat yields float64.
func coerceFloat(v any) (any, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return float64(1), nil
		}
		return float64(0), nil
	case int:
		return float64(t), nil
	case int8:
		return float64(t), nil
	case int16:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint:
		return float64(t), nil
	case uint8:
		return float64(t), nil
	case uint16:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as float", t.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as float", t)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to float", v)
	}
}

// coerceString stringifies. Numbers render in natural decimal form;
// booleans render as "1"/"" per host cast rules.
func coerceString(v any) (any, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		if t {
			return "1", nil
		}
		return "", nil
	case int:
		return strconv.FormatInt(int64(t), 10), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case json.Number:
		return t.String(), nil
	case temporal.Time:
		return t.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// coerceArray yields an ordered or keyed composite. Composites pass
// through; JSON-shaped strings decode; other scalars wrap as singletons.
func coerceArray(v any) (any, error) {
	switch t := v.(type) {
	case []any:
		return t, nil
	case map[string]any:
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if len(s) > 0 && (s[0] == '[' || s[0] == '{') {
			var decoded any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				return decoded, nil
			}
		}
		return []any{t}, nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v, nil
	}

	return []any{v}, nil
}

// coerceDate yields a rich temporal value, passing one through unchanged.
func coerceDate(v any) (any, error) {
	if t, ok := v.(temporal.Time); ok {
		return t, nil
	}
	t, err := temporal.New(v)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// coerceDateTime renders the fixed "YYYY-MM-DD HH:MM:SS" text form.
func coerceDateTime(v any) (any, error) {
	t, err := temporal.New(v)
	if err != nil {
		return nil, err
	}
	return t.Format(temporal.Layout), nil
}

// coerceTimestamp renders integer epoch seconds.
func coerceTimestamp(v any) (any, error) {
	t, err := temporal.New(v)
	if err != nil {
		return nil, err
	}
	return t.Unix(), nil
}
