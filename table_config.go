package htable

import "go.uber.org/zap"

// ============================================================================
// Configuration
// ============================================================================

// TableConfig defines configurable options for Table initialization.
// The probe strategy and initial capacity are constructor arguments; the
// options here tune everything else.
type TableConfig struct {
	// keyHash replaces the built-in polynomial primary hash.
	// If nil, the built-in hash is used. Its result is reduced modulo the
	// table capacity, so it may use the full 64-bit range.
	keyHash HashFunc

	// logger receives resize events at debug level.
	// If nil, a no-op logger is used.
	logger *zap.Logger
}

// WithKeyHasher sets a custom primary hash function for the table.
// Pass nil to keep the built-in polynomial hash.
//
// Usage:
//
//	t := New[int](64, Linear, WithKeyHasher(XXHash))
//
// Notes:
//   - The secondary hash used by DoubleHash is never replaced, so the
//     probe step stays in [1, 8].
//   - A poor hasher degrades to long probe walks but never breaks lookups.
func WithKeyHasher(keyHash HashFunc) func(*TableConfig) {
	return func(c *TableConfig) {
		if keyHash != nil {
			c.keyHash = keyHash
		}
	}
}

// WithLogger configures the logger used to report growth.
func WithLogger(logger *zap.Logger) func(*TableConfig) {
	return func(c *TableConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newTableConfig(options []func(*TableConfig)) TableConfig {
	c := TableConfig{}
	for _, o := range options {
		o(&c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}
