package usecase

import "time"

const (
	// DefaultPageSize is applied when a list request omits a limit.
	DefaultPageSize = 20

	// MaxPageSize caps list requests.
	MaxPageSize = 100

	// RecordCacheTTL is how long cached record pairs are kept. Records are
	// immutable once written, so the TTL only bounds cache size.
	RecordCacheTTL = 1 * time.Hour
)
