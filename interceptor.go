package juggle

// Interceptor transforms attribute values at a record's read, write and
// serialize boundaries. Interceptors run in an explicit configured order;
// the coercion interceptor is always first, so downstream interceptors
// (hashing, purging) operate on already-coerced values.
type Interceptor interface {
	// Name identifies the interceptor in errors and signals.
	Name() string

	// OnRead transforms a raw value on its way to the caller.
	// It must not mutate record storage.
	OnRead(r *Record, field string, v any) (any, error)

	// OnWrite transforms a just-written value; the result replaces the
	// raw storage entry. The verbatim value is already stored when
	// OnWrite runs, so v is never stale.
	OnWrite(r *Record, field string, v any) (any, error)

	// BeforeStore converges raw storage ahead of serialization. It may
	// mutate record storage in place via SetRaw/PurgeRaw.
	BeforeStore(r *Record) error
}

// coercionInterceptor is the head of every chain: it applies declared-type
// coercion per the record's schema.
type coercionInterceptor struct{}

// Coercion returns the type-coercion interceptor.
func Coercion() Interceptor {
	return coercionInterceptor{}
}

func (coercionInterceptor) Name() string { return "coerce" }

// OnRead re-derives the logical value on every access without touching
// raw storage. Nil and non-coercible fields pass through unchanged.
func (coercionInterceptor) OnRead(r *Record, field string, v any) (any, error) {
	return coerceField(r, field, v)
}

// OnWrite re-derives the coerced form of the just-written value so raw
// storage converges to the canonical representation.
func (coercionInterceptor) OnWrite(r *Record, field string, v any) (any, error) {
	return coerceField(r, field, v)
}

// BeforeStore walks every schema field present in raw storage and applies
// the write-time coercion, catching fields written through paths that
// bypassed OnWrite. Fails fast on the first error; fields already
// converged stay converged.
func (coercionInterceptor) BeforeStore(r *Record) error {
	schema := r.Schema()
	if !schema.Enabled() {
		return nil
	}

	for field, typ := range schema.Fields() {
		v, ok := r.Raw(field)
		if !ok || v == nil {
			continue
		}
		coerced, err := coerceValue(typ, field, v)
		if err != nil {
			return err
		}
		r.SetRaw(field, coerced)
	}
	return nil
}

// coerceField applies schema-declared coercion to one value.
func coerceField(r *Record, field string, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	schema := r.Schema()
	if !schema.Coercible(field) {
		return v, nil
	}
	typ, _ := schema.Type(field)
	return coerceValue(typ, field, v)
}
