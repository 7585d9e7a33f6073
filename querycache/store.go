package querycache

// EntryStore is the storage backend the cache policy layer sits on. It owns
// sharding, capacity eviction, and the retention sweep; the policy layer owns
// freshness, coalescing, and error recording.
//
// Set re-arms the retention window for the key, so re-writing an unchanged
// entry on read is how the cache implements expire-after-last-read.
type EntryStore interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Delete(key string)
	ScanKeys() []string
}
