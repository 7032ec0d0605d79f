package assistant

import (
	"time"

	"github.com/minhyannv/chat-tools-go/pkg/intent"
	loggerpkg "github.com/minhyannv/chat-tools-go/pkg/logger"
)

// Option configures optional dependencies of an Assistant.
type Option func(*deps)

type deps struct {
	classify    intent.ClassifierFunc
	extractCity intent.CityExtractorFunc
	clock       func() time.Time
	logger      loggerpkg.Logger
	debug       bool
}

// WithClassifier replaces the default intent heuristic.
func WithClassifier(fn intent.ClassifierFunc) Option {
	return func(d *deps) {
		d.classify = fn
	}
}

// WithCityExtractor replaces the default city heuristic.
func WithCityExtractor(fn intent.CityExtractorFunc) Option {
	return func(d *deps) {
		d.extractCity = fn
	}
}

// WithClock injects the time source consulted for time questions.
func WithClock(clock func() time.Time) Option {
	return func(d *deps) {
		d.clock = clock
	}
}

// WithLogger injects a logger dependency.
func WithLogger(l loggerpkg.Logger) Option {
	return func(d *deps) {
		d.logger = l
	}
}

// WithDebug toggles debug logging.
func WithDebug(enabled bool) Option {
	return func(d *deps) {
		d.debug = enabled
	}
}
