package repeater

import (
	"github.com/benbjohnson/clock"

	"github.com/edgemount/go-rtlink/auxlink"
	"github.com/edgemount/go-rtlink/logger"
)

// Config represents the configuration parameters for one repeater link.
type Config struct {
	// index identifies the physical link and its hardware register bank.
	index uint8

	// routingEnabled selects the functional implementation (true) or the
	// inert no-op implementation used on nodes built without multi-hop
	// routing capability (false). Defaults to true.
	routingEnabled bool

	// link provides the physical-layer receive signal for the link.
	link LinkStatus

	// transport provides the aux packet channel layered on the link.
	transport auxlink.Transport

	// trigger drives the timestamp-broadcast hardware handshake.
	trigger TSCTrigger

	// clock provides the monotonic clock used for every deadline.
	// Defaults to the wall clock; tests substitute a mock.
	clock clock.Clock

	// logger provides a logger instance for link events and errors.
	logger logger.Logger
}

// NewConfig creates a repeater configuration for the link with the given
// index, applying the provided functional options.
//
// The aux channel number is derived from the index; the repeater for link n
// always talks on channel n+1.
//
// Returns a pointer to the initialized Config and an error if any option
// failed to apply.
func NewConfig(index uint8, opts ...Option) (*Config, error) {
	cfg := &Config{
		index:          index,
		routingEnabled: true,
		clock:          clock.New(),
		logger:         logger.GetLogger(),
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// Option represents a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error { return o.applyFunc(cfg) }

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{
		name:      name,
		applyFunc: f,
	}
}

// WithLinkStatus sets the physical-layer link status source.
func WithLinkStatus(link LinkStatus) Option {
	return newOptFunc("WithLinkStatus", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.link = link

		return nil
	})
}

// WithTransport sets the aux channel transport.
func WithTransport(transport auxlink.Transport) Option {
	return newOptFunc("WithTransport", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.transport = transport

		return nil
	})
}

// WithTSCTrigger sets the timestamp-broadcast trigger.
func WithTSCTrigger(trigger TSCTrigger) Option {
	return newOptFunc("WithTSCTrigger", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.trigger = trigger

		return nil
	})
}

// WithClock sets the monotonic clock used for deadlines.
// It is mainly useful for substituting a mock clock in tests.
func WithClock(clk clock.Clock) Option {
	return newOptFunc("WithClock", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.clock = clk

		return nil
	})
}

// WithLogger sets the logger instance used for link events and errors.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.logger = l

		return nil
	})
}

// WithRoutingDisabled selects the inert no-op implementation, for nodes built
// without multi-hop routing capability. Every operation of such a repeater
// succeeds without touching the link.
func WithRoutingDisabled() Option {
	return newOptFunc("WithRoutingDisabled", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.routingEnabled = false

		return nil
	})
}
