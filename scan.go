package juggle

import "github.com/zoobzio/sentinel"

func init() {
	// Register the coerce tag with sentinel
	sentinel.Tag("coerce")
}

// ScanSchema derives a schema from T's `coerce:"..."` struct tags.
//
//	type User struct {
//	    Age    int    `coerce:"integer"`
//	    Active bool   `coerce:"bool"`
//	    BornAt string `coerce:"date"`
//	}
//
// Unlike runtime schema mutation, the scan surface is declarative and
// checkable, so unknown type tokens are rejected here rather than at
// dispatch.
func ScanSchema[T any]() (*Schema, error) {
	spec := sentinel.Scan[T]()

	fields := make(map[string]Type, len(spec.Fields))
	for _, field := range spec.Fields {
		token, ok := field.Tags["coerce"]
		if !ok {
			continue
		}
		t := Normalize(token)
		if !IsValidType(t) {
			return nil, newConfigError(ErrInvalidSchema, t, field.Name)
		}
		fields[field.Name] = t
	}

	return NewSchema(fields), nil
}

// RegisterScan derives a schema from T's tags and registers it as the
// shared schema for recordType.
func RegisterScan[T any](recordType string) (*Schema, error) {
	s, err := ScanSchema[T]()
	if err != nil {
		return nil, err
	}
	Register(recordType, s)
	return s, nil
}
