package querycache

import "time"

// Status describes the freshness of a cache entry at read time.
// Staleness is metadata, not deletion: a Stale or Error entry is still
// servable, it is merely eligible for a background refetch.
type Status int

const (
	// StatusFresh marks an entry inside its staleness window.
	StatusFresh Status = iota
	// StatusStale marks an entry past its staleness window but still retained.
	StatusStale
	// StatusFetching marks an entry whose background refresh is in flight.
	StatusFetching
	// StatusError marks an entry whose most recent fetch failed. Data from
	// the previous successful fetch, if any, is preserved.
	StatusError
)

// String implements fmt.Stringer for log fields.
func (s Status) String() string {
	switch s {
	case StatusFresh:
		return "fresh"
	case StatusStale:
		return "stale"
	case StatusFetching:
		return "fetching"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is the unit of storage in the query cache: the last known result for
// a key together with its freshness metadata.
type Entry struct {
	Key       Key
	Data      any
	FetchedAt time.Time
	Status    Status
	Err       error
}

// HasData reports whether the entry carries a usable result. An Error entry
// from a failed refresh keeps the previous data and still reports true.
func (e Entry) HasData() bool {
	return e.Data != nil
}
