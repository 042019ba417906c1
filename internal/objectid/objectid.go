// Package objectid converts document identifiers between the store's native
// ObjectID and the 24-character hexadecimal form used in URLs and JSON.
package objectid

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HexLen is the length of the external identifier representation.
const HexLen = 24

// ErrBadFormat is returned by Decode when the input is not a syntactically
// valid identifier. It never means "not found".
var ErrBadFormat = errors.New("malformed identifier")

// Decode parses the external hex form of an identifier.
func Decode(s string) (primitive.ObjectID, error) {
	if len(s) != HexLen {
		return primitive.NilObjectID, fmt.Errorf("%w: want %d hex characters, got %d", ErrBadFormat, HexLen, len(s))
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q is not hexadecimal", ErrBadFormat, s)
	}
	return id, nil
}

// Encode renders id in its external lowercase hex form.
func Encode(id primitive.ObjectID) string { return id.Hex() }
