// Package input reads and cleans the message text handed to the renderer.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/pap"
	"github.com/fwojciec/pap/grapheme"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Read returns all of r as text with trailing whitespace removed. Bytes
// that are not valid UTF-8 are an error, never replaced.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read input: %w", pap.ErrInvalidUTF8)
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}

// Sanitize returns s as plain text the bubble can measure. ANSI escape
// sequences are stripped, CRLF becomes LF and control characters other than
// tab and newline are dropped. A lone CR rewinds to the start of its line,
// so the characters after it overwrite the ones drawn before, one grapheme
// cluster at a time.
func Sanitize(s string) string {
	s = strings.ReplaceAll(ansi.Strip(s), "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.Map(printable, line)
		if strings.ContainsRune(line, '\r') {
			line = overwrite(strings.Split(line, "\r"))
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// printable keeps tab, CR and everything that is not a C0 control or DEL.
func printable(r rune) rune {
	if r == '\t' || r == '\r' || (r > 0x1F && r != 0x7F) {
		return r
	}
	return -1
}

// overwrite replays the segments of a line split at CRs. Each segment
// replaces the leading clusters of what is already drawn; clusters past its
// end stay.
func overwrite(segments []string) string {
	drawn := grapheme.Split(segments[0])
	for _, seg := range segments[1:] {
		for j, c := range grapheme.Split(seg) {
			if j < len(drawn) {
				drawn[j] = c
			} else {
				drawn = append(drawn, c)
			}
		}
	}
	return strings.Join(drawn, "")
}
