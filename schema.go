package juggle

import "sync"

// Schema is the declared field→type mapping for one record type, plus the
// interception on/off flag. A Schema is shared by every Record of its
// type unless a record is constructed with a per-instance override.
//
// Schemas are safe for concurrent use. Mutation through Set/Add/Remove/
// Merge is visible to all records sharing the schema on their next
// coercion.
//
// Definition is permissive: arbitrary type tokens are accepted here and
// validated only when dispatch reaches them. Use ScanSchema or LoadConfig
// for surfaces that reject unknown tokens up front.
type Schema struct {
	mu      sync.RWMutex
	fields  map[string]Type
	enabled bool
}

// NewSchema creates an enabled schema with the given fields.
// Tokens are normalized; a nil map yields an empty schema.
func NewSchema(fields map[string]Type) *Schema {
	s := &Schema{
		fields:  make(map[string]Type, len(fields)),
		enabled: true,
	}
	for name, typ := range fields {
		s.fields[name] = Normalize(string(typ))
	}
	return s
}

// Fields returns a copy of the current mapping. Empty if none defined.
func (s *Schema) Fields() map[string]Type {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Type, len(s.fields))
	for name, typ := range s.fields {
		out[name] = typ
	}
	return out
}

// Set replaces the mapping wholesale.
func (s *Schema) Set(fields map[string]Type) *Schema {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields = make(map[string]Type, len(fields))
	for name, typ := range fields {
		s.fields[name] = Normalize(string(typ))
	}
	return s
}

// Add merges a single entry. The type defaults to string when omitted.
func (s *Schema) Add(name string, typ ...Type) *Schema {
	t := TypeString
	if len(typ) > 0 {
		t = Normalize(string(typ[0]))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[name] = t
	return s
}

// Remove subtracts the named entries. Unknown names are ignored.
func (s *Schema) Remove(names ...string) *Schema {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range names {
		delete(s.fields, name)
	}
	return s
}

// Merge unions fields into the mapping; incoming entries overwrite
// existing ones on key collision.
func (s *Schema) Merge(fields map[string]Type) *Schema {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, typ := range fields {
		s.fields[name] = Normalize(string(typ))
	}
	return s
}

// Type returns the declared type for name and whether it is present.
func (s *Schema) Type(name string) (Type, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	typ, ok := s.fields[name]
	return typ, ok
}

// Coercible returns true iff interception is enabled, the schema is
// non-empty and name is a schema key.
func (s *Schema) Coercible(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.enabled || len(s.fields) == 0 {
		return false
	}
	_, ok := s.fields[name]
	return ok
}

// Enabled reports the interception flag.
func (s *Schema) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled flips the interception flag. The pipeline is a no-op for
// records of this type while false.
func (s *Schema) SetEnabled(enabled bool) *Schema {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	return s
}

// Len returns the number of declared fields.
func (s *Schema) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.fields)
}
