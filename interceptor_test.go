package juggle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestChain_CoercionRunsFirst(t *testing.T) {
	Reset()
	Register("account", NewSchema(map[string]Type{"pin": TypeString}))

	// The pin arrives as a number; coercion must render it as text before
	// the hasher sees it, or hashing would reject the non-string value.
	r := NewRecord("account", nil,
		WithInterceptors(Hashing(map[string]HashAlgo{"pin": HashSHA256})))

	if err := r.Set("pin", 42); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	snap, err := r.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	sum := sha256.Sum256([]byte("42"))
	want := hex.EncodeToString(sum[:])
	if snap["pin"] != want {
		t.Errorf("pin = %v, want sha256 of coerced text %q", snap["pin"], want)
	}
}

func TestChain_OrderIsExplicit(t *testing.T) {
	Reset()
	Register("account", NewSchema(map[string]Type{"secret": TypeString}))

	// Purge before hash: the field is gone by the time the hasher runs.
	r := NewRecord("account", nil,
		WithInterceptors(
			Purging("secret"),
			Hashing(map[string]HashAlgo{"secret": HashSHA256}),
		))
	_ = r.Set("secret", "hunter2")

	snap, err := r.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if _, ok := snap["secret"]; ok {
		t.Error("purged field should not reach the snapshot")
	}
}

func TestPurging(t *testing.T) {
	Reset()
	Register("signup", NewSchema(map[string]Type{"age": TypeInteger}))

	r := NewRecord("signup", nil, WithInterceptors(Purging("password_confirm")))
	_ = r.Set("age", "7")
	_ = r.Set("password_confirm", "secret")

	snap, err := r.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	if _, ok := snap["password_confirm"]; ok {
		t.Error("purged field present in snapshot")
	}
	if snap["age"] != int64(7) {
		t.Errorf("sibling field corrupted by purge: %#v", snap["age"])
	}
}

func TestInterceptor_Names(t *testing.T) {
	if Coercion().Name() != "coerce" {
		t.Errorf("Coercion().Name() = %q", Coercion().Name())
	}
	if Hashing(nil).Name() != "hash" {
		t.Errorf("Hashing().Name() = %q", Hashing(nil).Name())
	}
	if Purging().Name() != "purge" {
		t.Errorf("Purging().Name() = %q", Purging().Name())
	}
}
