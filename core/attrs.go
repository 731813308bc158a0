package core

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Attrs is the open attribute bag carried by every Node and Edge:
// arbitrary named values attached by the application. Keys that collide
// with the reserved structural field names are rejected at insertion time.
type Attrs map[string]any

// reservedAttrKeys are the structural field names that may never be used
// as attribute keys; they are addressed through the typed API instead.
var reservedAttrKeys = map[string]struct{}{
	"name":          {},
	"start":         {},
	"end":           {},
	"incoming":      {},
	"outgoing":      {},
	"bidirectional": {},
}

// validateAttrs rejects any reserved key with ErrReservedAttribute.
func validateAttrs(a Attrs) error {
	for k := range a {
		if _, reserved := reservedAttrKeys[k]; reserved {
			return fmt.Errorf("%w: %q", ErrReservedAttribute, k)
		}
	}

	return nil
}

// Clone returns an independent shallow copy of the bag. Values are shared;
// the map itself is fresh.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Matches reports whether the bag is a superset of want: every key in want
// must be present with an equal value. Values are compared structurally,
// so slice- and map-valued attributes are supported.
func (a Attrs) Matches(want Attrs) bool {
	for k, wv := range want {
		hv, ok := a[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(hv, wv) {
			return false
		}
	}

	return true
}

// Float64 reads a numeric attribute, coercing strings and integer kinds.
// The second return is false when the key is absent or not coercible.
func (a Attrs) Float64(key string) (float64, bool) {
	v, ok := a[key]
	if !ok {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}

	return f, true
}

// String reads a string attribute, coercing scalar kinds.
// The second return is false when the key is absent or not coercible.
func (a Attrs) String(key string) (string, bool) {
	v, ok := a[key]
	if !ok {
		return "", false
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", false
	}

	return s, true
}
