package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables per-binding invocation statistics.
	EnableMetrics bool

	// RecoverFromPanic converts a panicking action into a *PanicError.
	// When false the panic unwinds through Dispatch.
	RecoverFromPanic bool

	// Metrics, when non-nil, is shared instead of allocating a new
	// collector. Implies EnableMetrics.
	Metrics *Metrics
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithSharedMetrics returns a copy of the config recording into m.
func (c Config) WithSharedMetrics(m *Metrics) Config {
	c.EnableMetrics = true
	c.Metrics = m
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(enabled bool) Config {
	c.RecoverFromPanic = enabled
	return c
}
