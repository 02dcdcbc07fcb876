package oaskema

import (
	"log/slog"

	js "github.com/reoring/oaskema/jsonschema"
)

// Hook is consulted before the built-in rules for every node, the root and
// all nested nodes alike. Returning ErrUnsupported defers to the built-in
// rules; any other error aborts the conversion. A returned fragment is
// adopted verbatim without recursing into the node, so a hook that needs
// its children converted must do that itself (Converter.Convert).
type Hook func(n Node) (*js.Schema, error)

// Options bundles converter settings.
type Options struct {
	Hook     Hook
	Resolver TypeResolver
	Version  OpenAPIVersion
	// MaxDepth bounds node nesting; 0 means unbounded.
	MaxDepth int
	// FallbackType is inserted where a fragment would otherwise have no
	// shape keyword. Defaults to "string".
	FallbackType string
	// Logger receives debug records. Nil disables logging.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithHook installs an extension hook.
func WithHook(h Hook) Option { return func(o *Options) { o.Hook = h } }

// WithResolver sets the TypeResolver used for Callable nodes.
func WithResolver(r TypeResolver) Option { return func(o *Options) { o.Resolver = r } }

// WithOpenAPIVersion selects the nullability rendering.
func WithOpenAPIVersion(v OpenAPIVersion) Option { return func(o *Options) { o.Version = v } }

// WithMaxDepth bounds the nesting depth accepted by the converter.
func WithMaxDepth(n int) Option { return func(o *Options) { o.MaxDepth = n } }

// WithFallbackType overrides the type inserted into shapeless fragments.
func WithFallbackType(typ string) Option { return func(o *Options) { o.FallbackType = typ } }

// WithLogger enables debug logging.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// Converter translates Node trees into schema documents. It holds no
// mutable state and is safe for concurrent use.
type Converter struct {
	opts Options
}

// New returns a Converter configured by opts.
func New(opts ...Option) *Converter {
	o := Options{}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Resolver == nil {
		o.Resolver = ReflectResolver{}
	}
	if o.FallbackType == "" {
		o.FallbackType = js.TypeString
	}
	return &Converter{opts: o}
}

// Convert translates n into a new schema document. Failures are reported as
// *UnconvertibleError.
func (c *Converter) Convert(n Node) (*js.Schema, error) {
	return c.convert(n, rootPath, 0)
}

// Convert is shorthand for New(opts...).Convert(n).
func Convert(n Node, opts ...Option) (*js.Schema, error) {
	return New(opts...).Convert(n)
}

// MustConvert is like Convert but panics on error. Intended for schemas
// declared at package initialization.
func MustConvert(n Node, opts ...Option) *js.Schema {
	s, err := Convert(n, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (c *Converter) debug(msg string, args ...any) {
	if c.opts.Logger != nil {
		c.opts.Logger.Debug(msg, args...)
	}
}
