package bencode

// DefaultMaxDepth bounds list/dictionary nesting unless WithMaxDepth says
// otherwise. Real metainfo files nest four or five levels.
const DefaultMaxDepth = 512

type config struct {
	maxDepth      int
	lenientInts   bool
	allowTrailing bool
}

// Option configures a Decoder.
type Option func(*config)

// WithMaxDepth sets the maximum container nesting. Values below one fall
// back to DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		c.maxDepth = n
	}
}

// WithLenientIntegers accepts any integer or length token a generic signed
// decimal parse accepts, such as "03" or "+3".
func WithLenientIntegers() Option {
	return func(c *config) { c.lenientInts = true }
}

// WithTrailingData allows bytes after the top-level value.
func WithTrailingData() Option {
	return func(c *config) { c.allowTrailing = true }
}

func newConfig(opts []Option) config {
	c := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
