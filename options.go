package rmisearch

type options struct {
	logger *Logger
}

// Option configures constructor behavior.
//
// The search hot path itself has no configuration surface; options cover the
// selection layer only.
type Option func(*options)

// WithLogger configures the logger used during strategy construction.
// The strategies themselves never log. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() *options {
	return &options{
		logger: NoopLogger(),
	}
}
