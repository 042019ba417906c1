package repo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tbourn/go-memo-backend/internal/domain"
)

// Document is the pointer constraint satisfied by every persisted record type:
// it exposes the shared metadata and the client-mutable fields.
type Document[T any] interface {
	*T
	Metadata() *domain.Meta
	Fields() map[string]any
}

// Collection is the persistence accessor for one record type bound to one
// store collection. It is safe for concurrent use and performs no retries.
type Collection[T any, P Document[T]] struct {
	name   string
	driver Driver
	now    func() time.Time
}

// NewCollection binds record type T to the named collection of d.
func NewCollection[T any, P Document[T]](d Driver, name string) *Collection[T, P] {
	return &Collection[T, P]{name: name, driver: d, now: now}
}

// now returns the current UTC time at the store's millisecond precision, so
// the values returned by the accessor equal those later read back.
func now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// Name returns the bound collection name.
func (c *Collection[T, P]) Name() string { return c.name }

// Create stores rec with a store-assigned id and fresh timestamps, then
// re-reads it by that id and returns the re-read copy. Any id or timestamps
// already present on rec are discarded.
//
// If the re-read finds nothing the store violated read-your-writes (or lost a
// race with a concurrent delete); that is reported as ErrInconsistentRead.
func (c *Collection[T, P]) Create(ctx context.Context, rec P) (P, error) {
	start := time.Now()

	ts := c.now()
	meta := rec.Metadata()
	meta.ID = primitive.NilObjectID
	meta.CreatedAt, meta.UpdatedAt = ts, ts

	id, err := c.driver.InsertOne(ctx, c.name, rec)
	if err != nil {
		return nil, c.fail("create", start, err)
	}
	raw, err := c.driver.FindOne(ctx, c.name, id)
	if err != nil {
		return nil, c.fail("create", start, err)
	}
	if raw == nil {
		log.Error().
			Str("collection", c.name).
			Str("id", id.Hex()).
			Msg("inserted document not visible on re-read")
		return nil, c.fail("create", start, errors.Wrapf(ErrInconsistentRead, "id %s", id.Hex()))
	}
	out, err := c.decode(raw)
	if err != nil {
		return nil, c.fail("create", start, err)
	}
	observe(c.name, "create", "ok", start)
	return out, nil
}

// List returns every record of the collection in store order.
func (c *Collection[T, P]) List(ctx context.Context) ([]P, error) {
	start := time.Now()
	raws, err := c.driver.Find(ctx, c.name)
	if err != nil {
		return nil, c.fail("list", start, err)
	}
	out := make([]P, 0, len(raws))
	for _, raw := range raws {
		rec, err := c.decode(raw)
		if err != nil {
			return nil, c.fail("list", start, err)
		}
		out = append(out, rec)
	}
	observe(c.name, "list", "ok", start)
	return out, nil
}

// Get returns the record with id, or nil when none exists.
func (c *Collection[T, P]) Get(ctx context.Context, id primitive.ObjectID) (P, error) {
	start := time.Now()
	raw, err := c.driver.FindOne(ctx, c.name, id)
	if err != nil {
		return nil, c.fail("get", start, err)
	}
	return c.found("get", start, raw)
}

// Update replaces the client-mutable fields of the record with id by those of
// rec, stamps updated_at, and returns the post-update image produced by the
// same atomic store operation. It returns nil when no record has id.
func (c *Collection[T, P]) Update(ctx context.Context, id primitive.ObjectID, rec P) (P, error) {
	start := time.Now()
	set := bson.M{}
	for k, v := range rec.Fields() {
		set[k] = v
	}
	set["updated_at"] = c.now()

	raw, err := c.driver.FindOneAndSet(ctx, c.name, id, set)
	if err != nil {
		return nil, c.fail("update", start, err)
	}
	return c.found("update", start, raw)
}

// Delete removes the record with id and reports whether one was removed.
func (c *Collection[T, P]) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	start := time.Now()
	deleted, err := c.driver.DeleteOne(ctx, c.name, id)
	if err != nil {
		return false, c.fail("delete", start, err)
	}
	observe(c.name, "delete", outcome(deleted), start)
	return deleted, nil
}

func (c *Collection[T, P]) found(op string, start time.Time, raw bson.Raw) (P, error) {
	if raw == nil {
		observe(c.name, op, "absent", start)
		return nil, nil
	}
	rec, err := c.decode(raw)
	if err != nil {
		return nil, c.fail(op, start, err)
	}
	observe(c.name, op, "ok", start)
	return rec, nil
}

func (c *Collection[T, P]) decode(raw bson.Raw) (P, error) {
	var v T
	if err := bson.Unmarshal(raw, &v); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	return P(&v), nil
}

func (c *Collection[T, P]) fail(op string, start time.Time, err error) error {
	observe(c.name, op, "error", start)
	return &StoreError{Op: op, Collection: c.name, Err: errors.WithStack(err)}
}

func outcome(found bool) string {
	if found {
		return "ok"
	}
	return "absent"
}
