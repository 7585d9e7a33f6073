package querycache

import (
	"strconv"
	"strings"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// Key identifies one cached query result. Two keys address the same entry
// iff entity type, filter, and page all compare equal. An empty Filter means
// "unfiltered"; it is a distinct key from any non-empty filter.
type Key struct {
	Entity string
	Filter string
	Page   int
}

// NewPageKey builds the key for one page of an entity listing.
func NewPageKey(entity, filter string, page int) Key {
	return Key{Entity: entity, Filter: filter, Page: page}
}

// String serializes the key into the entity::filter::page form used by the
// backing store. Entity names and filters must not contain the separator;
// filters come from user search boxes, which the command layer already
// restricts to plain text.
func (k Key) String() string {
	var b strings.Builder
	b.Grow(len(k.Entity) + len(k.Filter) + 8)
	b.WriteString(k.Entity)
	b.WriteString(KeySeparator)
	b.WriteString(k.Filter)
	b.WriteString(KeySeparator)
	b.WriteString(strconv.Itoa(k.Page))
	return b.String()
}

// EntityPrefix returns the store-key prefix shared by every entry of an
// entity type, regardless of filter or page. Used for invalidation scans.
func EntityPrefix(entity string) string {
	return entity + KeySeparator
}

// ListPrefix returns the store-key prefix shared by every page of one
// (entity, filter) listing.
func ListPrefix(entity, filter string) string {
	return entity + KeySeparator + filter + KeySeparator
}
