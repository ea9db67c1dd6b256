package aranet

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures device discovery.
type Options struct {
	// SearchTimeout is the total time allowed to find an advertising
	// device before Connect fails with SearchTimeout.
	SearchTimeout time.Duration
	// PollInterval is how often the set of seen peripherals is inspected
	// for a name match.
	PollInterval time.Duration
	// NamePrefix is the advertised-name prefix a peripheral must carry to
	// be considered a match.
	NamePrefix string
	// Logger receives structured discovery and transport logs. A quiet
	// default logger is used when nil.
	Logger *logrus.Logger
}

// DefaultOptions returns the discovery defaults.
func DefaultOptions() *Options {
	return &Options{
		SearchTimeout: 10 * time.Second,
		PollInterval:  time.Second,
		NamePrefix:    "Aranet4",
	}
}
