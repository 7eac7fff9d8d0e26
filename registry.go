package juggle

import "sync"

var (
	schemas   = make(map[string]*Schema)
	schemasMu sync.RWMutex
)

// SchemaFor returns the shared schema for a record type, creating an
// empty enabled schema on first use. Every Record constructed for the
// same type name shares the returned schema, so mutations affect
// subsequent coercion across all of them.
func SchemaFor(recordType string) *Schema {
	// Fast path: read-lock cache check
	schemasMu.RLock()
	if s, ok := schemas[recordType]; ok {
		schemasMu.RUnlock()
		return s
	}
	schemasMu.RUnlock()

	// Slow path: create and register with write-lock
	schemasMu.Lock()
	defer schemasMu.Unlock()

	// Double-check pattern
	if s, ok := schemas[recordType]; ok {
		return s
	}

	s := NewSchema(nil)
	schemas[recordType] = s
	return s
}

// Register replaces the shared schema for a record type.
func Register(recordType string, s *Schema) {
	schemasMu.Lock()
	defer schemasMu.Unlock()
	schemas[recordType] = s
}

// Reset clears the schema registry.
// This is primarily useful for test isolation.
func Reset() {
	schemasMu.Lock()
	defer schemasMu.Unlock()
	schemas = make(map[string]*Schema)
}
