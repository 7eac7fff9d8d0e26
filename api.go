// Package juggle provides an attribute type-juggling pipeline for
// map-backed records: every read and write of a declared field passes
// through a coercion step that converts heterogeneous raw values
// (datastore text, user input, native values) into the field's declared
// logical type, and converges raw storage to the canonical form before
// serialization.
//
// # Types
//
// Eight canonical type tokens are recognized, plus case-insensitive
// aliases (bool, int, double, datetime):
//
//   - boolean: host truthiness (0, "0", "", empty composites → false)
//   - integer: int64, floats truncate toward zero
//   - float: float64
//   - string: booleans render "1"/"", numbers in natural decimal form
//   - array: []any or map[string]any, scalars wrap as singletons
//   - date: rich temporal value (temporal.Time)
//   - date_time: "YYYY-MM-DD HH:MM:SS" text
//   - timestamp: int64 epoch seconds
//
// Unknown tokens are accepted by runtime schema mutation and fail only at
// dispatch with a configuration error; the declarative surfaces
// (ScanSchema, LoadConfig) reject them up front.
//
// # Basic Usage
//
//	juggle.SchemaFor("user").Set(map[string]juggle.Type{
//	    "born_at": juggle.TypeDate,
//	    "age":     juggle.TypeInteger,
//	    "active":  juggle.TypeBoolean,
//	})
//
//	user := juggle.NewRecord("user", map[string]any{"age": "7"})
//	age, _ := user.Get("age")          // int64(7); raw storage untouched
//	_ = user.Set("active", "1")        // raw storage now holds true
//
//	snap, _ := user.Snapshot(ctx)      // fully coerced, persistence-ready
//	data, _ := user.Store(ctx, json.New())
//
// # Semantics
//
// Reads re-derive the logical value on every access and never mutate raw
// storage. Writes store the value verbatim, then overwrite the entry with
// its coerced form. Snapshot walks every schema field present in raw
// storage and converges it, catching writes that bypassed Set. Nil values
// always pass through untouched, and fields absent from the schema are
// never touched.
//
// # Interceptors
//
// Coercion is the first link of an ordered interceptor chain. Sibling
// interceptors hook the same read/write/store points and see coerced
// values:
//
//	user := juggle.NewRecord("user", nil,
//	    juggle.WithInterceptors(
//	        juggle.Hashing(map[string]juggle.HashAlgo{"password": juggle.HashArgon2}),
//	        juggle.Purging("password_confirm"),
//	    ))
//
// # Schemas
//
// Schemas are record-type-global: SchemaFor returns the shared schema for
// a type name, and mutations (Set, Add, Remove, Merge, SetEnabled) affect
// subsequent coercion for every record of that type. WithSchema overrides
// the shared schema for a single instance. Schemas can also be derived
// from struct tags (ScanSchema) or YAML (LoadConfig).
//
// # Codec Providers
//
// Snapshots marshal through the Codec interface; json, yaml and msgpack
// subpackages provide implementations, and Zstd wraps any codec with
// compression.
package juggle
