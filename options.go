package mllwriter

// Options holds construction-time configuration shared by the concrete
// writers. The zero value selects each writer's defaults.
type Options struct {
	// IndentSize is the number of whitespaces per indent step. Zero selects
	// the writer's default (4 for HTML, 2 for XML and JSON).
	IndentSize int

	// IndentSteps is the initial indent level, for writing fragments that
	// will be embedded in an already-indented document.
	IndentSteps int

	// RawValues disables escaping of property values and text, writing
	// caller input verbatim.
	RawValues bool

	// SelfClosing makes the XML writer emit single tags as "<tag/>" instead
	// of "<tag>".
	SelfClosing bool
}

// Option configures a writer at construction time.
type Option func(*Options)

// NewOptions applies opts to a zero Options value. The writer packages use
// it in their constructors.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithIndentSize sets the number of whitespaces per indent step.
func WithIndentSize(n int) Option {
	return func(o *Options) { o.IndentSize = n }
}

// WithIndent sets the initial indent level.
func WithIndent(steps int) Option {
	return func(o *Options) { o.IndentSteps = steps }
}

// WithRawValues disables escaping of property values and text.
func WithRawValues() Option {
	return func(o *Options) { o.RawValues = true }
}

// WithSelfClosing makes the XML writer emit single tags as "<tag/>".
func WithSelfClosing() Option {
	return func(o *Options) { o.SelfClosing = true }
}
