package domain

import (
	"fmt"
	"strconv"
)

// The failure categories the presentation layer knows how to map onto HTTP
// status codes. Services wrap these with context via fmt.Errorf and %w.
var (
	ErrNotFound   error = fmt.Errorf("not found")
	ErrConflict   error = fmt.Errorf("conflict")
	ErrBadRequest error = fmt.Errorf("bad request")
)

// Lookup is a reference to an entity, either by its numeric id or by its
// natural key (name, or derived identifier for classification systems).
// Request tokens are parsed once at the API boundary and passed down.
type Lookup struct {
	ID  uint
	Key string
}

// ParseLookup turns a request token into a Lookup. Integer parseable tokens
// resolve by id, anything else by natural key.
func ParseLookup(token string) Lookup {
	if id, err := strconv.ParseUint(token, 10, 32); err == nil {
		return Lookup{ID: uint(id)}
	}

	return Lookup{Key: token}
}

// ByID returns true when the lookup refers to a numeric id.
func (l Lookup) ByID() bool {
	return l.Key == ""
}

func (l Lookup) String() string {
	if l.ByID() {
		return strconv.FormatUint(uint64(l.ID), 10)
	}

	return l.Key
}
