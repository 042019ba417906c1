// Package domain defines the document records managed by the service and the
// pure mapping from each record to its JSON wire shape.
//
// Records carry store-facing BSON tags only. The wire shape (hex `_id`,
// integer-millisecond timestamps) is produced by each record's View method, so
// nothing outside this package depends on how a driver encodes a document.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tbourn/go-memo-backend/internal/objectid"
)

// Meta is the persistence metadata shared by every stored record.
//
// A zero ID means the record has never been persisted. CreatedAt and
// UpdatedAt are assigned by the persistence layer, never by clients.
type Meta struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Metadata exposes the embedded metadata for the persistence layer.
func (m *Meta) Metadata() *Meta { return m }

// Persisted reports whether the record was read from or written to the store.
func (m Meta) Persisted() bool { return !m.ID.IsZero() }

// WireID returns the external identifier, or "" for unpersisted records.
func (m Meta) WireID() string {
	if !m.Persisted() {
		return ""
	}
	return objectid.Encode(m.ID)
}

// Millis converts t to integer milliseconds since the Unix epoch.
func Millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
