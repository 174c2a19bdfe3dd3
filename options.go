package byteview

import "go.uber.org/zap"

// logger is the package-level sink for the handful of non-hot-path
// events this package reports: HPR allocation/release tracing at Debug
// level. Refcount overflow is not logged; it is only checked by the
// debug assertions (see WithInlineAssertions). Construction, slicing and
// comparison never log - only allocation lifecycle does.
var logger = zap.NewNop().Sugar()

// SetLogger replaces the package-level logger. Passing nil restores the
// no-op logger.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}

// options holds the configured options after applying a number of
// Option funcs.
type options struct {
	inlineAssertions bool
}

// Option describes an option which affects package-wide behavior.
type Option func(*options)

// WithInlineAssertions enables debug-only consistency checks (refcount
// overflow, inline/long branch mismatches). They are off by default
// since they run on otherwise hot paths; tests enable them via
// Configure.
func WithInlineAssertions(enabled bool) Option {
	return func(o *options) {
		o.inlineAssertions = enabled
	}
}

var current = applyOptions()

// Configure applies package-wide options. It is not safe to call
// concurrently with ByteView construction.
func Configure(opts ...Option) {
	current = applyOptions(opts...)
}

func applyOptions(opt ...Option) options {
	o := options{
		inlineAssertions: false,
	}
	for _, fn := range opt {
		fn(&o)
	}
	return o
}

func debugAssert(cond bool, msg string) {
	if current.inlineAssertions && !cond {
		panic("byteview: assertion failed: " + msg)
	}
}
