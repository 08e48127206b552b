package bubble_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pap/bubble"
	"github.com/fwojciec/pap/grapheme"
	"github.com/stretchr/testify/assert"
)

const flag = "\U0001F1F5\U0001F1F1"

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("empty text yields no lines", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, bubble.Wrap("", 40, grapheme.Count))
	})

	t.Run("short text is one line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello world"}, bubble.Wrap("hello world", 40, grapheme.Count))
	})

	t.Run("breaks at space when next word overflows", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"hello", "world"}, bubble.Wrap("hello world", 5, grapheme.Count))
	})

	t.Run("word that exactly fills the line stays", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"aa bb"}, bubble.Wrap("aa bb", 5, grapheme.Count))
	})

	t.Run("greedy fill packs words", func(t *testing.T) {
		t.Parallel()
		got := bubble.Wrap("the quick brown fox jumps over the lazy dog", 10, grapheme.Count)
		assert.Equal(t, []string{"the quick", "brown fox", "jumps over", "the lazy", "dog"}, got)
	})

	t.Run("long word is not split", func(t *testing.T) {
		t.Parallel()
		got := bubble.Wrap("a bbbbbbbb c", 5, grapheme.Count)
		assert.Equal(t, []string{"a", "bbbbbbbb", "c"}, got)
	})

	t.Run("single long word occupies one line", func(t *testing.T) {
		t.Parallel()
		word := strings.Repeat("x", 60)
		assert.Equal(t, []string{word}, bubble.Wrap(word, 40, grapheme.Count))
	})

	t.Run("drops trailing spaces", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"foo"}, bubble.Wrap("foo   ", 40, grapheme.Count))
		assert.Equal(t, []string{"aaa", "bbb"}, bubble.Wrap("aaa   bbb", 5, grapheme.Count))
	})

	t.Run("keeps leading and interior spaces", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"  foo  bar"}, bubble.Wrap("  foo  bar", 40, grapheme.Count))
	})

	t.Run("whitespace only is one empty line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{""}, bubble.Wrap("   ", 40, grapheme.Count))
	})

	t.Run("newlines start new paragraphs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "", "b"}, bubble.Wrap("a\n\nb", 40, grapheme.Count))
		assert.Equal(t, []string{"a", ""}, bubble.Wrap("a\n", 40, grapheme.Count))
	})

	t.Run("each paragraph wraps on its own", func(t *testing.T) {
		t.Parallel()
		got := bubble.Wrap("one two\nthree", 4, grapheme.Count)
		assert.Equal(t, []string{"one", "two", "three"}, got)
	})

	t.Run("counts grapheme clusters", func(t *testing.T) {
		t.Parallel()
		text := strings.Repeat(flag, 3) + " " + strings.Repeat(flag, 2)
		got := bubble.Wrap(text, 3, grapheme.Count)
		assert.Equal(t, []string{strings.Repeat(flag, 3), strings.Repeat(flag, 2)}, got)
	})

	t.Run("never splits a cluster at a space with a combining mark", func(t *testing.T) {
		t.Parallel()
		got := bubble.Wrap("ab \u0301cd", 2, grapheme.Count)
		assert.Equal(t, []string{"ab \u0301cd"}, got)
	})

	t.Run("measure decides fit", func(t *testing.T) {
		t.Parallel()
		const text = "\u65e5\u672c \u65e5\u672c"
		assert.Equal(t, []string{text}, bubble.Wrap(text, 5, grapheme.Count))
		assert.Equal(t, []string{"\u65e5\u672c", "\u65e5\u672c"}, bubble.Wrap(text, 5, grapheme.Cells))
	})

	t.Run("no line exceeds width unless it is one word", func(t *testing.T) {
		t.Parallel()
		text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."
		for _, width := range []int{1, 7, 13, 40} {
			for _, line := range bubble.Wrap(text, width, grapheme.Count) {
				if grapheme.Count(line) > width {
					assert.NotContains(t, line, " ", "width %d", width)
				}
			}
		}
	})
}
