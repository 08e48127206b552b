// Package pap draws a message inside a speech bubble above a mascot.
//
// The root package holds the domain types and interfaces. Rendering lives
// in package bubble; mascots, the excerpt corpus, input handling and shell
// completion live in their own packages and only ever hand plain strings to
// the renderer.
package pap

// WrapWidth is the column budget of a bubble's content.
const WrapWidth = 40

// Renderer draws message in a bubble followed by mascot.
type Renderer interface {
	Render(message, mascot string) string
}

// MascotLoader resolves a MascotSource to the mascot's text.
type MascotLoader interface {
	Load(src MascotSource) (string, error)
}

// Corpus is an ordered set of text lines used to pick a message when the
// user supplies none.
type Corpus []string
