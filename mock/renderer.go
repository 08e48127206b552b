// Package mock provides function-field test doubles for pap interfaces.
package mock

import "github.com/fwojciec/pap"

// Interface compliance check.
var _ pap.Renderer = (*Renderer)(nil)

// Renderer is a test double for pap.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(message, mascot string) string
}

// Render delegates to RenderFn.
func (r *Renderer) Render(message, mascot string) string {
	return r.RenderFn(message, mascot)
}
