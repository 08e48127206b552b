// Command pap draws a message in a speech bubble above a mascot.
//
// Usage:
//
//	pap [flags] [message...]
//	echo message | pap [flags]
//
// With no arguments and no piped input, pap says a few random lines.
//
// Flags:
//
//	-mascot string       Mascot preset or name (env PAP_MASCOT, default "ascii")
//	-mascot-file string  Path to a mascot file (overrides -mascot)
//	-mascot-dir string   Directory searched for <name>.pap (env PAP_MASCOT_DIR)
//	-measure string      Width measure: graphemes, cells (default "graphemes")
//	-seed uint           Seed for the random excerpt (0 = clock)
//	-list-mascots        Print available mascot names and exit
//	-completion string   Print a completion script for bash, zsh or fish and exit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/pap"
	"github.com/fwojciec/pap/bubble"
	"github.com/fwojciec/pap/completion"
	"github.com/fwojciec/pap/corpus"
	"github.com/fwojciec/pap/input"
	"github.com/fwojciec/pap/mascot"
)

const name = "pap"

func main() {
	home, _ := os.UserHomeDir()
	env := environment{
		mascot:    os.Getenv("PAP_MASCOT"),
		mascotDir: os.Getenv("PAP_MASCOT_DIR"),
		home:      home,
	}
	a := &app{
		stdin:  os.Stdin,
		piped:  !input.IsTerminal(os.Stdin),
		stdout: os.Stdout,
		stderr: os.Stderr,
		corpus: corpus.Default(),
	}
	if err := a.run(os.Args[1:], env); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

// environment carries the env var values run depends on.
type environment struct {
	mascot    string
	mascotDir string
	home      string
}

// app holds the collaborators of a single invocation. Nil renderer and
// loader fields are built from flags.
type app struct {
	stdin  io.Reader
	piped  bool
	stdout io.Writer
	stderr io.Writer
	corpus pap.Corpus

	renderer pap.Renderer
	loader   pap.MascotLoader
}

type flags struct {
	mascot      string
	mascotFile  string
	mascotDir   string
	measure     string
	seed        uint64
	listMascots bool
	shell       string
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.mascot, "mascot", "", "Mascot preset or name (env PAP_MASCOT, default \"ascii\")")
	fs.StringVar(&f.mascotFile, "mascot-file", "", "Path to a mascot file (overrides -mascot)")
	fs.StringVar(&f.mascotDir, "mascot-dir", "", "Directory searched for <name>.pap (env PAP_MASCOT_DIR)")
	fs.StringVar(&f.measure, "measure", "graphemes", "Width measure: graphemes, cells")
	fs.Uint64Var(&f.seed, "seed", 0, "Seed for the random excerpt (0 = clock)")
	fs.BoolVar(&f.listMascots, "list-mascots", false, "Print available mascot names and exit")
	fs.StringVar(&f.shell, "completion", "", "Print a completion script for bash, zsh or fish and exit")
	return fs
}

func (a *app) run(args []string, env environment) error {
	var f flags
	fs := newFlagSet(&f)
	fs.SetOutput(a.stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if f.shell != "" {
		cmd := completion.FromFlagSet(name, fs, map[string][]string{
			"mascot":     mascot.Presets(),
			"measure":    measures,
			"completion": completion.Shells,
		}, "mascot-file", "mascot-dir")
		return completion.Generate(a.stdout, f.shell, cmd)
	}

	dir := resolveMascotDir(f.mascotDir, env.mascotDir, env.home)
	if f.listMascots {
		names, err := mascot.List(dir)
		if err != nil {
			return fmt.Errorf("list mascots: %w", err)
		}
		for _, n := range names {
			fmt.Fprintln(a.stdout, n)
		}
		return nil
	}

	src, err := resolveMascot(f.mascot, f.mascotFile, env.mascot)
	if err != nil {
		return err
	}
	renderer := a.renderer
	if renderer == nil {
		measure, err := resolveMeasure(f.measure)
		if err != nil {
			return err
		}
		renderer = bubble.NewRenderer(bubble.WithMeasure(measure))
	}
	loader := a.loader
	if loader == nil {
		loader = &mascot.Loader{Dir: dir}
	}

	art, err := loader.Load(src)
	if err != nil {
		return fmt.Errorf("load mascot: %w", err)
	}
	msg, err := a.message(fs.Args(), f.seed)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, renderer.Render(input.Sanitize(msg), art))
	return nil
}

// message picks the text to say: positional arguments, then piped stdin
// unless it is empty, then a random corpus excerpt.
func (a *app) message(args []string, seed uint64) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case a.piped:
		msg, err := input.Read(a.stdin)
		if err != nil {
			return "", fmt.Errorf("stdin: %w", err)
		}
		// Empty non-TTY stdin, e.g. /dev/null under cron.
		if msg != "" {
			return msg, nil
		}
	}
	return corpus.Excerpt(a.corpus, newRand(seed)), nil
}
