package chtable

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Table at construction.
type Option func(*config)

type config struct {
	log    logrus.FieldLogger
	growth func(capacity int) int
}

func defaultConfig() config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return config{
		log:    l,
		growth: DoublePrime,
	}
}

// WithLogger sets the logger used to trace rehashes and allocation
// failures. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithGrowth replaces the function choosing the capacity to grow to. The
// result must be larger than its argument.
func WithGrowth(fn func(capacity int) int) Option {
	return func(c *config) {
		if fn != nil {
			c.growth = fn
		}
	}
}
