// Package grapheme segments and measures text in user-perceived characters.
package grapheme

import (
	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of s in order.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in s. Each cluster is one
// column: a flag emoji or a letter with combining marks counts once.
func Count(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(s)
}

// Cells returns the number of terminal cells s occupies, counting East Asian
// wide characters and emoji as two.
func Cells(s string) int {
	return rw.StringWidth(s)
}

// IsSpace reports whether cluster is a single ASCII space, the only break
// opportunity the wrapper recognizes.
func IsSpace(cluster string) bool {
	return cluster == " "
}
