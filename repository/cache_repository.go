package repository

// CacheRepository caches serialized plan responses keyed by a request
// fingerprint. Misses are not errors.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
