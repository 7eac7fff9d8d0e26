package juggle

import "github.com/klauspost/compress/zstd"

// zstdCodec wraps another codec with zstd compression of the encoded
// payload. Encoder and decoder are created without concurrency since
// snapshots are small and records are single-threaded.
type zstdCodec struct {
	inner Codec
}

// Zstd returns a codec that compresses inner's output with zstd and
// decompresses before unmarshaling.
func Zstd(inner Codec) Codec {
	return &zstdCodec{inner: inner}
}

// ContentType returns the wrapped MIME type with a zstd suffix.
func (c *zstdCodec) ContentType() string {
	return c.inner.ContentType() + "+zstd"
}

// Marshal encodes v with the inner codec and compresses the result.
func (c *zstdCodec) Marshal(v any) ([]byte, error) {
	data, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (c *zstdCodec) Unmarshal(data []byte, v any) error {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return err
	}
	defer dec.Close()

	plain, err := dec.DecodeAll(data, nil)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(plain, v)
}
