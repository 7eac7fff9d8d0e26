package juggle

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := SHA256Hasher()

	a, err := h.Hash([]byte("fingerprint-me"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	b, err := h.Hash([]byte("fingerprint-me"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if a != b {
		t.Error("sha256 should be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("sha256 hex length = %d, want 64", len(a))
	}
}

func TestSHA512Hasher_Deterministic(t *testing.T) {
	h := SHA512Hasher()

	a, err := h.Hash([]byte("fingerprint-me"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	b, err := h.Hash([]byte("fingerprint-me"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}

	if a != b {
		t.Error("sha512 should be deterministic")
	}
	if len(a) != 128 {
		t.Errorf("sha512 hex length = %d, want 128", len(a))
	}
}

func TestArgon2_Format(t *testing.T) {
	h := Argon2()

	hashed, err := h.Hash([]byte("password"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if !strings.HasPrefix(hashed, "$argon2id$v=") {
		t.Errorf("argon2 hash format: %q", hashed)
	}

	// Salted: two hashes of the same input differ
	again, _ := h.Hash([]byte("password"))
	if hashed == again {
		t.Error("argon2 hashes should be salted")
	}
}

func TestBcrypt_Format(t *testing.T) {
	h := Bcrypt()

	hashed, err := h.Hash([]byte("password"))
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if !strings.HasPrefix(hashed, "$2a$") {
		t.Errorf("bcrypt hash format: %q", hashed)
	}
}

func TestHashing_BeforeStore(t *testing.T) {
	Reset()
	Register("login", NewSchema(map[string]Type{"password": TypeString}))

	r := NewRecord("login", nil,
		WithInterceptors(Hashing(map[string]HashAlgo{"password": HashArgon2})))
	_ = r.Set("password", "supersecret")

	snap, err := r.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}

	hashed, _ := snap["password"].(string)
	if !strings.HasPrefix(hashed, "$argon2id$") {
		t.Errorf("password not hashed: %v", snap["password"])
	}
}

func TestHashing_SkipsNilAndAbsent(t *testing.T) {
	Reset()

	r := NewRecord("login", nil,
		WithInterceptors(Hashing(map[string]HashAlgo{"password": HashSHA256})))
	r.SetRaw("other", "x")

	if _, err := r.Snapshot(context.Background()); err != nil {
		t.Fatalf("absent field should be skipped: %v", err)
	}

	r.SetRaw("password", nil)
	if _, err := r.Snapshot(context.Background()); err != nil {
		t.Fatalf("nil field should be skipped: %v", err)
	}
}

func TestHashing_MissingHasher(t *testing.T) {
	Reset()

	r := NewRecord("login", nil,
		WithInterceptors(Hashing(map[string]HashAlgo{"password": HashAlgo("md5")})))
	r.SetRaw("password", "x")

	if _, err := r.Snapshot(context.Background()); !errors.Is(err, ErrMissingHasher) {
		t.Errorf("Snapshot error = %v, want ErrMissingHasher", err)
	}
}

func TestHashing_NonString(t *testing.T) {
	Reset()

	r := NewRecord("login", nil,
		WithInterceptors(Hashing(map[string]HashAlgo{"password": HashSHA256})))
	r.SetRaw("password", 42)

	if _, err := r.Snapshot(context.Background()); err == nil {
		t.Error("hashing a non-string should fail")
	}
}

func TestHashing_SetHasher(t *testing.T) {
	Reset()

	custom := SHA256Hasher()
	ic := Hashing(map[string]HashAlgo{"token": HashAlgo("custom")}).
		SetHasher(HashAlgo("custom"), custom)

	r := NewRecord("session", nil, WithInterceptors(ic))
	r.SetRaw("token", "abc")

	snap, err := r.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	want, _ := custom.Hash([]byte("abc"))
	if snap["token"] != want {
		t.Errorf("custom hasher not used: %v", snap["token"])
	}
}
