package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-memo-backend/internal/objectid"
	"github.com/tbourn/go-memo-backend/internal/repo"
	"github.com/tbourn/go-memo-backend/internal/validation"
)

var tracer = otel.Tracer("github.com/tbourn/go-memo-backend/internal/services")

// Payload is an inbound create/update body for records of type T. Payloads
// carry `validate` tags and build an unpersisted record.
type Payload[T any] interface {
	Record() *T
}

// Resource implements create/list/get/update/delete for one document-backed
// record type. Every failure it returns is an *Error.
//
// Payloads are validated before any identifier is decoded or the store is
// touched, and malformed ids never reach the store.
type Resource[T any, P repo.Document[T], In Payload[T]] struct {
	// Name is the singular resource name used in messages ("memo").
	Name string
	// Coll is the persistence accessor for the resource.
	Coll *repo.Collection[T, P]
}

// NewResource builds a Resource named name over coll.
func NewResource[T any, P repo.Document[T], In Payload[T]](name string, coll *repo.Collection[T, P]) *Resource[T, P, In] {
	return &Resource[T, P, In]{Name: name, Coll: coll}
}

// Create validates in and stores a new record built from it.
func (s *Resource[T, P, In]) Create(ctx context.Context, in In) (P, error) {
	ctx, span := s.start(ctx, "create")
	defer span.End()

	if err := check(in); err != nil {
		return nil, record(span, err)
	}
	rec, err := s.Coll.Create(ctx, P(in.Record()))
	if err != nil {
		return nil, record(span, Internal("failed to create "+s.Name, err))
	}
	span.SetAttributes(attribute.String("record.id", rec.Metadata().WireID()))
	return rec, nil
}

// List returns every record. The slice is never nil.
func (s *Resource[T, P, In]) List(ctx context.Context) ([]P, error) {
	ctx, span := s.start(ctx, "list")
	defer span.End()

	recs, err := s.Coll.List(ctx)
	if err != nil {
		return nil, record(span, Internal("failed to list "+s.Name+"s", err))
	}
	span.SetAttributes(attribute.Int("record.count", len(recs)))
	return recs, nil
}

// Get returns the record with the external id rawID.
func (s *Resource[T, P, In]) Get(ctx context.Context, rawID string) (P, error) {
	ctx, span := s.start(ctx, "get")
	defer span.End()

	id, err := s.decode(rawID)
	if err != nil {
		return nil, record(span, err)
	}
	rec, err := s.Coll.Get(ctx, id)
	if err != nil {
		return nil, record(span, Internal("failed to get "+s.Name, err))
	}
	if rec == nil {
		return nil, record(span, NotFound(s.Name))
	}
	return rec, nil
}

// Update validates in, then replaces the mutable fields of the record with
// the external id rawID and returns the updated record.
func (s *Resource[T, P, In]) Update(ctx context.Context, rawID string, in In) (P, error) {
	ctx, span := s.start(ctx, "update")
	defer span.End()

	if err := check(in); err != nil {
		return nil, record(span, err)
	}
	id, err := s.decode(rawID)
	if err != nil {
		return nil, record(span, err)
	}
	rec, err := s.Coll.Update(ctx, id, P(in.Record()))
	if err != nil {
		return nil, record(span, Internal("failed to update "+s.Name, err))
	}
	if rec == nil {
		return nil, record(span, NotFound(s.Name))
	}
	return rec, nil
}

// Delete removes the record with the external id rawID.
func (s *Resource[T, P, In]) Delete(ctx context.Context, rawID string) error {
	ctx, span := s.start(ctx, "delete")
	defer span.End()

	id, err := s.decode(rawID)
	if err != nil {
		return record(span, err)
	}
	deleted, err := s.Coll.Delete(ctx, id)
	if err != nil {
		return record(span, Internal("failed to delete "+s.Name, err))
	}
	if !deleted {
		return record(span, NotFound(s.Name))
	}
	return nil
}

func (s *Resource[T, P, In]) start(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, s.Name+"."+op, trace.WithAttributes(
		attribute.String("resource", s.Name),
		attribute.String("collection", s.Coll.Name()),
	))
}

func (s *Resource[T, P, In]) decode(rawID string) (primitive.ObjectID, error) {
	id, err := objectid.Decode(rawID)
	if err != nil {
		return id, BadRequest("invalid "+s.Name+" id", err)
	}
	return id, nil
}

// check runs the validation layer over in.
func check(in any) error {
	err := validation.Struct(in)
	if err == nil {
		return nil
	}
	var fe validation.FieldErrors
	if errors.As(err, &fe) {
		return Invalid(fe, err)
	}
	return Internal("failed to validate request", err)
}

// record marks span as failed for server-side errors only; client errors are
// expected outcomes.
func record(span trace.Span, err error) error {
	var se *Error
	if errors.As(err, &se) {
		span.SetAttributes(attribute.String("error.kind", se.Kind.String()))
		if se.Kind != KindInternal {
			return err
		}
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
