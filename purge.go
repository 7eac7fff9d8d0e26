package juggle

// PurgeInterceptor removes configured fields from raw storage before a
// record is stored. Use it for attributes that must never reach the
// persistence layer (confirmation fields, transient UI state).
type PurgeInterceptor struct {
	fields []string
}

// Purging returns a purge interceptor for the named fields.
func Purging(fields ...string) *PurgeInterceptor {
	return &PurgeInterceptor{fields: fields}
}

// Name identifies the interceptor.
func (p *PurgeInterceptor) Name() string { return "purge" }

// OnRead passes values through; purging happens only at store time.
func (p *PurgeInterceptor) OnRead(_ *Record, _ string, v any) (any, error) {
	return v, nil
}

// OnWrite passes values through.
func (p *PurgeInterceptor) OnWrite(_ *Record, _ string, v any) (any, error) {
	return v, nil
}

// BeforeStore drops every configured field from raw storage.
func (p *PurgeInterceptor) BeforeStore(r *Record) error {
	for _, field := range p.fields {
		r.PurgeRaw(field)
	}
	return nil
}
