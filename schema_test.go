package juggle

import (
	"reflect"
	"testing"
)

func TestSchema_SetGet(t *testing.T) {
	s := NewSchema(nil)

	if got := s.Fields(); len(got) != 0 {
		t.Errorf("empty schema Fields() = %v", got)
	}

	s.Set(map[string]Type{"age": "int", "born_at": TypeDate})

	want := map[string]Type{"age": TypeInteger, "born_at": TypeDate}
	if got := s.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

func TestSchema_FieldsIsACopy(t *testing.T) {
	s := NewSchema(map[string]Type{"age": TypeInteger})

	fields := s.Fields()
	fields["age"] = TypeFloat
	fields["extra"] = TypeString

	if typ, _ := s.Type("age"); typ != TypeInteger {
		t.Errorf("mutating Fields() copy leaked into schema")
	}
	if _, ok := s.Type("extra"); ok {
		t.Errorf("mutating Fields() copy leaked into schema")
	}
}

func TestSchema_AddDefaultsToString(t *testing.T) {
	s := NewSchema(nil)
	s.Add("name")
	s.Add("age", "int")

	if typ, _ := s.Type("name"); typ != TypeString {
		t.Errorf("Add without type = %q, want string", typ)
	}
	if typ, _ := s.Type("age"); typ != TypeInteger {
		t.Errorf("Add(age, int) = %q, want integer", typ)
	}
}

func TestSchema_Remove(t *testing.T) {
	s := NewSchema(map[string]Type{"a": TypeString, "b": TypeInteger, "c": TypeFloat})

	s.Remove("a", "c", "missing")

	want := map[string]Type{"b": TypeInteger}
	if got := s.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() after Remove = %v, want %v", got, want)
	}
}

func TestSchema_Merge(t *testing.T) {
	s := NewSchema(map[string]Type{"a": TypeString, "b": TypeInteger})

	s.Merge(map[string]Type{"b": "bool", "c": TypeFloat})

	want := map[string]Type{"a": TypeString, "b": TypeBoolean, "c": TypeFloat}
	if got := s.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() after Merge = %v, want %v", got, want)
	}
}

func TestSchema_Coercible(t *testing.T) {
	s := NewSchema(map[string]Type{"age": TypeInteger})

	if !s.Coercible("age") {
		t.Error("declared field should be coercible")
	}
	if s.Coercible("missing") {
		t.Error("undeclared field should not be coercible")
	}

	s.SetEnabled(false)
	if s.Coercible("age") {
		t.Error("disabled schema should not be coercible")
	}
	s.SetEnabled(true)

	s.Set(nil)
	if s.Coercible("age") {
		t.Error("empty schema should not be coercible")
	}
}

func TestSchema_Enabled(t *testing.T) {
	s := NewSchema(nil)
	if !s.Enabled() {
		t.Error("new schema should be enabled")
	}

	s.SetEnabled(false)
	if s.Enabled() {
		t.Error("SetEnabled(false) not applied")
	}
}

func TestSchema_PermissiveTokens(t *testing.T) {
	// Arbitrary tokens are accepted at definition time; only dispatch
	// validates them.
	s := NewSchema(map[string]Type{"weird": "decimal"})

	typ, ok := s.Type("weird")
	if !ok || typ != Type("decimal") {
		t.Errorf("Type(weird) = %q, %v", typ, ok)
	}
	if !s.Coercible("weird") {
		t.Error("unknown-typed field is still coercible; the error surfaces at dispatch")
	}
}
