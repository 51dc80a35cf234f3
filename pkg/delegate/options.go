// ABOUTME: Functional options shared by Delegate and Signal constructors
// ABOUTME: Zero-value registries behave as if built with no options

package delegate

const defaultName = "delegate"

// Option configures a registry.
type Option func(*config)

type config struct {
	name string
}

func newConfig(opts []Option) config {
	c := config{name: defaultName}
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = defaultName
	}
	return c
}

// WithName sets the label used for the registry in debug logs and handle
// strings.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
