package juggle

import (
	"bytes"
	"encoding/json"
	"testing"
)

// rawJSON is a minimal codec for exercising the zstd wrapper without
// importing the json subpackage (which would create an import cycle).
type rawJSON struct{}

func (rawJSON) ContentType() string             { return "application/json" }
func (rawJSON) Marshal(v any) ([]byte, error)   { return json.Marshal(v) }
func (rawJSON) Unmarshal(d []byte, v any) error { return json.Unmarshal(d, v) }

func TestZstd_ContentType(t *testing.T) {
	c := Zstd(rawJSON{})
	if c.ContentType() != "application/json+zstd" {
		t.Errorf("ContentType() = %q", c.ContentType())
	}
}

func TestZstd_RoundTrip(t *testing.T) {
	c := Zstd(rawJSON{})

	original := map[string]any{"name": "test", "active": true}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	plain, _ := json.Marshal(original)
	if bytes.Equal(data, plain) {
		t.Error("compressed payload should differ from plain encoding")
	}

	restored := map[string]any{}
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored["name"] != "test" || restored["active"] != true {
		t.Errorf("round-trip failed: %+v", restored)
	}
}

func TestZstd_UnmarshalGarbage(t *testing.T) {
	c := Zstd(rawJSON{})

	var v map[string]any
	if err := c.Unmarshal([]byte("not zstd"), &v); err == nil {
		t.Error("Unmarshal() should fail on non-zstd input")
	}
}
