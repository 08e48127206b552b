package bubble

import (
	"strings"

	"github.com/fwojciec/pap/grapheme"
)

// Layout is a wrapped message ready to be framed. Cols is the widest line,
// and every content row is padded to it.
type Layout struct {
	Lines   []string
	Cols    int
	measure Measure
}

// NewLayout measures lines and returns their Layout. A nil measure means
// grapheme.Count.
func NewLayout(lines []string, measure Measure) Layout {
	if measure == nil {
		measure = grapheme.Count
	}
	cols := 0
	for _, l := range lines {
		cols = max(cols, framedWidth(measure, l))
	}
	return Layout{Lines: lines, Cols: cols, measure: measure}
}

// framedWidth returns the width line takes between the frame's inner
// spaces. A leading combining mark fuses with the space before it and a
// trailing prepend character with the space after it, so the line is
// measured in that context rather than on its own.
func framedWidth(measure Measure, line string) int {
	return max(0, measure(" "+line+" ")-2)
}

// String returns the framed bubble: top border, content rows and bottom
// border separated by line breaks, with no trailing line break.
//
// A single line is framed with angle brackets. Multiple lines use slashes
// on the first and last rows and pipes in between. An empty layout renders
// the marker "< >".
func (l Layout) String() string {
	var b strings.Builder
	b.WriteString(" " + strings.Repeat("_", l.Cols+2) + " \n")
	switch len(l.Lines) {
	case 0:
		b.WriteString("< >")
	case 1:
		b.WriteString("< " + l.Lines[0] + " >")
	default:
		last := len(l.Lines) - 1
		for i, line := range l.Lines {
			left, right := "|", "|"
			switch i {
			case 0:
				left, right = "/", `\`
			case last:
				left, right = `\`, "/"
			}
			b.WriteString(left + " " + line + l.pad(line) + " " + right)
			if i != last {
				b.WriteByte('\n')
			}
		}
	}
	b.WriteString("\n " + strings.Repeat("-", l.Cols+2) + " ")
	return b.String()
}

// pad returns the spaces that bring line up to Cols. It never goes
// negative, even if line is wider than Cols.
func (l Layout) pad(line string) string {
	measure := l.measure
	if measure == nil {
		measure = grapheme.Count
	}
	return strings.Repeat(" ", max(0, l.Cols-framedWidth(measure, line)))
}
