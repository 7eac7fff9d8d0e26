package juggle

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for pipeline events.
var (
	SignalRecordCreated    = capitan.NewSignal("juggle.record.created", "Record constructed")
	SignalSnapshotStart    = capitan.NewSignal("juggle.snapshot.start", "Snapshot convergence beginning")
	SignalSnapshotComplete = capitan.NewSignal("juggle.snapshot.complete", "Snapshot convergence finished")
	SignalStoreStart       = capitan.NewSignal("juggle.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("juggle.store.complete", "Store operation finished")
	SignalLoadStart        = capitan.NewSignal("juggle.load.start", "Load operation beginning")
	SignalLoadComplete     = capitan.NewSignal("juggle.load.complete", "Load operation finished")
	SignalCoerceError      = capitan.NewSignal("juggle.coerce.error", "Field coercion failed")
)

// Keys for typed event data.
var (
	KeyRecordType  = capitan.NewStringKey("record_type")
	KeyRecordID    = capitan.NewStringKey("record_id")
	KeyField       = capitan.NewStringKey("field")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitRecordCreated emits an event when a record is constructed.
func emitRecordCreated(ctx context.Context, recordType, id string) {
	capitan.Emit(ctx, SignalRecordCreated,
		KeyRecordType.Field(recordType),
		KeyRecordID.Field(id),
	)
}

// emitSnapshotStart emits an event when snapshot convergence begins.
func emitSnapshotStart(ctx context.Context, recordType, id string) {
	capitan.Emit(ctx, SignalSnapshotStart,
		KeyRecordType.Field(recordType),
		KeyRecordID.Field(id),
	)
}

// emitSnapshotComplete emits an event when snapshot convergence finishes.
func emitSnapshotComplete(ctx context.Context, recordType, id string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyRecordType.Field(recordType),
		KeyRecordID.Field(id),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSnapshotComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSnapshotComplete, fields...)
	}
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType, recordType string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyRecordType.Field(recordType),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, recordType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyRecordType.Field(recordType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, contentType, recordType string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
		KeyRecordType.Field(recordType),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, recordType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyRecordType.Field(recordType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}

// emitCoerceError emits an event when a field fails coercion.
func emitCoerceError(ctx context.Context, recordType, id, field string, err error) {
	capitan.Error(ctx, SignalCoerceError,
		KeyRecordType.Field(recordType),
		KeyRecordID.Field(id),
		KeyField.Field(field),
		KeyError.Field(err),
	)
}
