package juggle

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record wraps a raw attribute store with the interception pipeline.
//
// Reads re-derive the logical value on every access and never mutate raw
// storage. Writes store the value verbatim first, then overwrite the
// entry with its coerced form, so raw storage converges to the canonical
// representation. Snapshot converges every schema field before handing
// out a persistence-ready copy.
//
// Records of the same type share the type's registered schema unless
// constructed with WithSchema. A single Record is not safe for
// concurrent use; the shared schema is.
type Record struct {
	id         string
	recordType string
	schema     *Schema
	raw        map[string]any
	chain      []Interceptor
}

// RecordOption configures a Record at construction.
type RecordOption func(*Record)

// WithSchema overrides the type-level schema for this instance only.
func WithSchema(s *Schema) RecordOption {
	return func(r *Record) { r.schema = s }
}

// WithInterceptors appends sibling interceptors to the chain, in order,
// after the coercion interceptor.
func WithInterceptors(ics ...Interceptor) RecordOption {
	return func(r *Record) { r.chain = append(r.chain, ics...) }
}

// WithID overrides the generated record ID.
func WithID(id string) RecordOption {
	return func(r *Record) { r.id = id }
}

// NewRecord constructs a record over raw attribute values. The schema is
// the shared schema for recordType (see SchemaFor). A nil raw map yields
// an empty store.
func NewRecord(recordType string, raw map[string]any, opts ...RecordOption) *Record {
	if raw == nil {
		raw = make(map[string]any)
	}

	r := &Record{
		id:         uuid.NewString(),
		recordType: recordType,
		schema:     SchemaFor(recordType),
		raw:        raw,
		chain:      []Interceptor{Coercion()},
	}
	for _, opt := range opts {
		opt(r)
	}

	emitRecordCreated(context.Background(), recordType, r.id)
	return r
}

// Load unmarshals a stored snapshot and constructs a record over it.
func Load(ctx context.Context, recordType string, codec Codec, data []byte, opts ...RecordOption) (*Record, error) {
	start := time.Now()
	emitLoadStart(ctx, codec.ContentType(), recordType)

	raw := make(map[string]any)
	if err := codec.Unmarshal(data, &raw); err != nil {
		wrapped := newCodecError(ErrUnmarshal, err)
		emitLoadComplete(ctx, codec.ContentType(), recordType, len(data), time.Since(start), wrapped)
		return nil, wrapped
	}

	r := NewRecord(recordType, raw, opts...)
	emitLoadComplete(ctx, codec.ContentType(), recordType, len(data), time.Since(start), nil)
	return r, nil
}

// ID returns the record's instance identifier.
func (r *Record) ID() string { return r.id }

// RecordType returns the record's type name.
func (r *Record) RecordType() string { return r.recordType }

// Schema returns the schema governing this record.
func (r *Record) Schema() *Schema { return r.schema }

// Get reads a field through the interceptor chain. The raw stored value
// is never mutated; the logical value is re-derived on each call. Fields
// absent from the schema, nil values, and disabled interception all pass
// the stored value through unchanged.
func (r *Record) Get(field string) (any, error) {
	v := r.raw[field]
	for _, ic := range r.chain {
		var err error
		v, err = ic.OnRead(r, field, v)
		if err != nil {
			emitCoerceError(context.Background(), r.recordType, r.id, field, err)
			return nil, err
		}
	}
	return v, nil
}

// Set writes a field. The value is stored verbatim first; if it is
// non-nil and the field is coercible, the chain then re-derives the
// coerced form and overwrites the entry. A nil value is stored as-is
// with no re-coercion.
func (r *Record) Set(field string, v any) error {
	r.raw[field] = v
	if v == nil {
		return nil
	}

	for _, ic := range r.chain {
		w, err := ic.OnWrite(r, field, r.raw[field])
		if err != nil {
			emitCoerceError(context.Background(), r.recordType, r.id, field, err)
			return err
		}
		r.raw[field] = w
	}
	return nil
}

// Raw returns the stored value for field, bypassing the chain.
func (r *Record) Raw(field string) (any, bool) {
	v, ok := r.raw[field]
	return v, ok
}

// SetRaw stores a value verbatim, bypassing the chain. Snapshot converges
// fields written this way.
func (r *Record) SetRaw(field string, v any) {
	r.raw[field] = v
}

// PurgeRaw removes a field from raw storage, bypassing the chain.
func (r *Record) PurgeRaw(field string) {
	delete(r.raw, field)
}

// Snapshot runs every interceptor's BeforeStore hook, converging raw
// storage in place, then returns a persistence-ready copy. Fails fast on
// the first field error; fields converged before the failure remain
// converged.
func (r *Record) Snapshot(ctx context.Context) (map[string]any, error) {
	start := time.Now()
	emitSnapshotStart(ctx, r.recordType, r.id)

	for _, ic := range r.chain {
		if err := ic.BeforeStore(r); err != nil {
			emitSnapshotComplete(ctx, r.recordType, r.id, time.Since(start), err)
			return nil, err
		}
	}

	out := make(map[string]any, len(r.raw))
	for field, v := range r.raw {
		out[field] = v
	}

	emitSnapshotComplete(ctx, r.recordType, r.id, time.Since(start), nil)
	return out, nil
}

// Store produces a persistence-ready snapshot and marshals it.
func (r *Record) Store(ctx context.Context, codec Codec) ([]byte, error) {
	start := time.Now()
	emitStoreStart(ctx, codec.ContentType(), r.recordType)

	snap, err := r.Snapshot(ctx)
	if err != nil {
		emitStoreComplete(ctx, codec.ContentType(), r.recordType, 0, time.Since(start), err)
		return nil, err
	}

	data, err := codec.Marshal(snap)
	if err != nil {
		wrapped := newCodecError(ErrMarshal, err)
		emitStoreComplete(ctx, codec.ContentType(), r.recordType, 0, time.Since(start), wrapped)
		return nil, wrapped
	}

	emitStoreComplete(ctx, codec.ContentType(), r.recordType, len(data), time.Since(start), nil)
	return data, nil
}
