// Package corpus supplies the text lines pap speaks when it is given no
// message.
package corpus

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/fwojciec/pap"
)

// Excerpt lengths are drawn from a normal distribution with this mean and
// standard deviation, in lines.
const (
	MeanLines   = 3
	StdDevLines = 1
)

//go:embed lines.txt
var lines string

// Default returns the built-in corpus.
func Default() pap.Corpus {
	c, err := Parse(strings.NewReader(lines))
	if err != nil {
		panic(fmt.Sprintf("corpus: parse built-in lines: %v", err))
	}
	return c
}

// Parse reads one corpus entry per non-blank line of r. Trailing whitespace
// is trimmed from each line.
func Parse(r io.Reader) (pap.Corpus, error) {
	var c pap.Corpus
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRightFunc(sc.Text(), unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			continue
		}
		c = append(c, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	return c, nil
}

// Excerpt returns consecutive corpus lines joined by line breaks. The count
// is sampled from N(MeanLines, StdDevLines) and rounded, the start is
// uniform over the corpus, and the end is clamped to the corpus length. A
// count of zero or less yields an empty excerpt.
func Excerpt(c pap.Corpus, rng *rand.Rand) string {
	if len(c) == 0 {
		return ""
	}
	n := int(math.Round(rng.NormFloat64()*StdDevLines + MeanLines))
	start := rng.IntN(len(c))
	end := min(start+n, len(c))
	if end < start {
		end = start
	}
	return strings.Join(c[start:end], "\n")
}
