package juggle

import (
	"errors"
	"testing"
)

type taggedUser struct {
	Name   string `coerce:"string"`
	Age    int    `coerce:"int"`
	Active bool   `coerce:"bool"`
	BornAt string `coerce:"date"`
	Note   string // untagged, left out of the schema
}

func TestScanSchema(t *testing.T) {
	s, err := ScanSchema[taggedUser]()
	if err != nil {
		t.Fatalf("ScanSchema() error: %v", err)
	}

	want := map[string]Type{
		"Name":   TypeString,
		"Age":    TypeInteger,
		"Active": TypeBoolean,
		"BornAt": TypeDate,
	}
	got := s.Fields()
	if len(got) != len(want) {
		t.Fatalf("Fields() = %v, want %v", got, want)
	}
	for name, typ := range want {
		if got[name] != typ {
			t.Errorf("field %s = %q, want %q", name, got[name], typ)
		}
	}

	if _, ok := s.Type("Note"); ok {
		t.Error("untagged field should not be in the schema")
	}
}

type badTagUser struct {
	Price string `coerce:"decimal"`
}

func TestScanSchema_RejectsUnknownTokens(t *testing.T) {
	_, err := ScanSchema[badTagUser]()
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("ScanSchema() error = %v, want ErrInvalidSchema", err)
	}
}

func TestRegisterScan(t *testing.T) {
	Reset()

	s, err := RegisterScan[taggedUser]("tagged_user")
	if err != nil {
		t.Fatalf("RegisterScan() error: %v", err)
	}
	if SchemaFor("tagged_user") != s {
		t.Error("RegisterScan should register the derived schema")
	}
}
