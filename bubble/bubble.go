// Package bubble lays out a message as a cowsay-style speech bubble.
//
// The pipeline is Wrap, then NewLayout, then Layout.String, and Render ties
// them together with tab expansion and the trailing mascot.
package bubble

import (
	"strings"

	"github.com/fwojciec/pap"
	"github.com/fwojciec/pap/grapheme"
)

// Interface compliance check.
var _ pap.Renderer = (*Renderer)(nil)

// tabStop is the number of spaces a tab expands to.
const tabStop = 4

// Measure returns the display width of s in columns.
type Measure func(s string) int

// Option configures rendering.
type Option func(*config)

type config struct {
	measure Measure
}

// WithMeasure sets the width function used for wrapping and padding.
// If nil or not set, grapheme.Count is used.
func WithMeasure(m Measure) Option {
	return func(c *config) {
		c.measure = m
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.measure == nil {
		cfg.measure = grapheme.Count
	}
	return cfg
}

// Render draws message in a bubble wrapped at pap.WrapWidth columns,
// followed by a line break and mascot exactly as given.
func Render(message, mascot string, opts ...Option) string {
	cfg := newConfig(opts)
	text := strings.ReplaceAll(message, "\t", strings.Repeat(" ", tabStop))
	layout := NewLayout(Wrap(text, pap.WrapWidth, cfg.measure), cfg.measure)
	return layout.String() + "\n" + mascot
}

// Renderer is a pap.Renderer with fixed options.
type Renderer struct {
	opts []Option
}

// NewRenderer returns a Renderer that applies opts to every call.
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{opts: opts}
}

// Render implements pap.Renderer.
func (r *Renderer) Render(message, mascot string) string {
	return Render(message, mascot, r.opts...)
}
