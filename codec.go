package juggle

// Codec provides content-type aware marshaling for record snapshots.
// Implementations for JSON, YAML and MessagePack live in subpackages;
// Zstd wraps any of them with compression.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
