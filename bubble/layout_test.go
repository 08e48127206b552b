package bubble_test

import (
	"testing"

	"github.com/fwojciec/pap/bubble"
	"github.com/fwojciec/pap/grapheme"
	"github.com/stretchr/testify/assert"
)

func TestNewLayout(t *testing.T) {
	t.Parallel()

	t.Run("cols is the widest line", func(t *testing.T) {
		t.Parallel()
		l := bubble.NewLayout([]string{"ab", "abcd", "a"}, grapheme.Count)
		assert.Equal(t, 4, l.Cols)
	})

	t.Run("no lines has zero cols", func(t *testing.T) {
		t.Parallel()
		l := bubble.NewLayout(nil, grapheme.Count)
		assert.Equal(t, 0, l.Cols)
		assert.Equal(t, " __ \n< >\n -- ", l.String())
	})

	t.Run("nil measure counts graphemes", func(t *testing.T) {
		t.Parallel()
		l := bubble.NewLayout([]string{flag + flag}, nil)
		assert.Equal(t, 2, l.Cols)
	})

	t.Run("cols measures lines as framed", func(t *testing.T) {
		t.Parallel()
		l := bubble.NewLayout([]string{"\u0301x", "a\u0600"}, grapheme.Count)
		assert.Equal(t, 1, l.Cols)
		assert.Equal(t, " ___ \n/ \u0301x \\\n\\ a\u0600 /\n --- ", l.String())
	})

	t.Run("cols matches widest rendered line", func(t *testing.T) {
		t.Parallel()
		lines := bubble.Wrap("one two three four five six seven eight nine ten eleven twelve", 12, grapheme.Count)
		l := bubble.NewLayout(lines, grapheme.Count)
		widest := 0
		for _, line := range lines {
			widest = max(widest, grapheme.Count(line))
		}
		assert.Equal(t, widest, l.Cols)
	})
}

func TestLayout_String(t *testing.T) {
	t.Parallel()

	t.Run("single empty line", func(t *testing.T) {
		t.Parallel()
		l := bubble.NewLayout([]string{""}, grapheme.Count)
		assert.Equal(t, " __ \n<  >\n -- ", l.String())
	})

	t.Run("line equal to cols gets no padding", func(t *testing.T) {
		t.Parallel()
		l := bubble.NewLayout([]string{"abc", "abc"}, grapheme.Count)
		assert.Equal(t, " _____ \n/ abc \\\n\\ abc /\n ----- ", l.String())
	})

	t.Run("line wider than cols is never padded negatively", func(t *testing.T) {
		t.Parallel()
		l := bubble.Layout{Lines: []string{"abcdef", "x"}, Cols: 2}
		assert.NotPanics(t, func() {
			assert.Equal(t, " ____ \n/ abcdef \\\n\\ x  /\n ---- ", l.String())
		})
	})
}
