package session

// KV is the persistence port for session state. Implementations store plain
// strings by key; Get returns an empty string for absent keys.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
