package kvstore

// Store is the key-value persistence surface the planner core writes
// through. Keys are namespaced strings like "myday:2024-05-15". A missing
// key is reported via ok=false, never as an error.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}
