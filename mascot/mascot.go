// Package mascot resolves mascot art from built-in presets, named files in
// a mascot directory, or an arbitrary file.
package mascot

import (
	"embed"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/pap"
)

// Interface compliance check.
var _ pap.MascotLoader = (*Loader)(nil)

// Ext is the file extension of mascot files.
const Ext = ".pap"

//go:embed presets/*.pap
var presets embed.FS

// Presets returns the names of the built-in mascots in sorted order.
func Presets() []string {
	entries, err := presets.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	return names
}

// Preset returns the built-in mascot called name.
func Preset(name string) (string, bool) {
	data, err := presets.ReadFile(path.Join("presets", name+Ext))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Loader loads mascots. Dir is searched recursively for <name>.pap when a
// preset name does not match a built-in mascot; an empty Dir disables the
// search.
type Loader struct {
	Dir string
}

// Load implements pap.MascotLoader. File contents are returned verbatim.
func (l *Loader) Load(src pap.MascotSource) (string, error) {
	if err := src.Validate(); err != nil {
		return "", err
	}
	switch src.Kind {
	case pap.MascotFile:
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return "", fmt.Errorf("read mascot file: %w", err)
		}
		return string(data), nil
	default:
		if m, ok := Preset(src.Name); ok {
			return m, nil
		}
		p, err := l.find(src.Name)
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("read mascot %q: %w", src.Name, err)
		}
		return string(data), nil
	}
}

// find returns the path of the first <name>.pap under l.Dir in lexical
// order.
func (l *Loader) find(name string) (string, error) {
	if l.Dir == "" {
		return "", fmt.Errorf("%q: %w", name, pap.ErrUnknownMascot)
	}
	matches, err := glob(l.Dir, "**/*"+Ext)
	if err != nil {
		return "", err
	}
	for _, m := range matches {
		if path.Base(m) == name+Ext {
			return filepath.Join(l.Dir, filepath.FromSlash(m)), nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, pap.ErrUnknownMascot)
}

// List returns the preset names followed by the sorted, de-duplicated names
// of mascot files under dir. A missing dir contributes no names.
func List(dir string) ([]string, error) {
	names := Presets()
	if dir == "" {
		return names, nil
	}
	matches, err := glob(dir, "**/*"+Ext)
	if err != nil {
		return nil, err
	}
	var found []string
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), Ext)
		if !slices.Contains(names, name) {
			found = append(found, name)
		}
	}
	slices.Sort(found)
	return append(names, slices.Compact(found)...), nil
}

// glob returns the slash-separated paths of regular files under dir that
// match pattern, sorted. A missing dir yields no matches.
func glob(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("access mascot directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("mascot directory %s is not a directory", dir)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(p string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search mascot directory: %w", err)
	}
	slices.Sort(matches)
	return matches, nil
}
