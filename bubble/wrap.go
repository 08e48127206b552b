package bubble

import (
	"strings"

	"github.com/fwojciec/pap/grapheme"
)

// word is a run of non-space clusters and the spaces that follow it. The
// first word of a paragraph has empty text when the paragraph is indented.
type word struct {
	text  string
	space string
}

// Wrap splits text into lines of at most width columns as reported by
// measure. Each newline-separated paragraph is wrapped on its own with a
// greedy first fit that breaks only at spaces. A word wider than width is
// placed on a line by itself and never split. Trailing spaces are dropped
// from every line. Empty text yields no lines.
func Wrap(text string, width int, measure Measure) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(splitWords(para), width, measure)...)
	}
	return lines
}

func wrapParagraph(words []word, width int, measure Measure) []string {
	var (
		lines   []string
		line    strings.Builder
		used    int // width of the words on line, trailing spaces included
		pending string
	)
	for i, w := range words {
		n := measure(w.text)
		if i > 0 && used+n > width {
			lines = append(lines, line.String())
			line.Reset()
			used = 0
			pending = ""
		}
		line.WriteString(pending)
		line.WriteString(w.text)
		used += n + measure(w.space)
		pending = w.space
	}
	return append(lines, line.String())
}

// splitWords always returns at least one word so that an empty paragraph
// still produces an empty line.
func splitWords(para string) []word {
	var (
		words []word
		text  strings.Builder
		space strings.Builder
	)
	for _, c := range grapheme.Split(para) {
		if grapheme.IsSpace(c) {
			space.WriteString(c)
			continue
		}
		if space.Len() > 0 {
			words = append(words, word{text: text.String(), space: space.String()})
			text.Reset()
			space.Reset()
		}
		text.WriteString(c)
	}
	return append(words, word{text: text.String(), space: space.String()})
}
