// Package completion generates shell completion scripts for a command built
// on the standard flag package.
package completion

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fwojciec/pap"
)

// Shells lists the supported shells.
var Shells = []string{"bash", "fish", "zsh"}

// Command describes what to complete.
type Command struct {
	Name  string
	Flags []Flag
}

// Flag is one command-line flag.
type Flag struct {
	Name   string
	Usage  string
	Bool   bool     // takes no value
	File   bool     // value is a path
	Values []string // fixed set of values, if any
}

// FromFlagSet describes the flags of fs in lexical order. values gives the
// fixed choices for a flag and files names flags that take a path.
func FromFlagSet(name string, fs *flag.FlagSet, values map[string][]string, files ...string) Command {
	cmd := Command{Name: name}
	fs.VisitAll(func(f *flag.Flag) {
		fl := Flag{Name: f.Name, Usage: f.Usage, Values: values[f.Name]}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			fl.Bool = true
		}
		for _, file := range files {
			if file == f.Name {
				fl.File = true
			}
		}
		cmd.Flags = append(cmd.Flags, fl)
	})
	return cmd
}

// Generate writes the completion script for shell to w.
func Generate(w io.Writer, shell string, cmd Command) error {
	tmpl, ok := scripts[shell]
	if !ok {
		return fmt.Errorf("%q (want one of %s): %w", shell, strings.Join(Shells, ", "), pap.ErrUnknownShell)
	}
	if err := tmpl.Execute(w, cmd); err != nil {
		return fmt.Errorf("write %s completion: %w", shell, err)
	}
	return nil
}

var funcs = template.FuncMap{
	"join":      strings.Join,
	"ident":     func(s string) string { return strings.NewReplacer("-", "_", ".", "_").Replace(s) },
	"zshquote":  zshQuote,
	"fishquote": fishQuote,
}

// zshQuote escapes s for use inside a single-quoted _arguments spec,
// including the brackets that delimit the description.
func zshQuote(s string) string {
	return strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`).Replace(s)
}

// fishQuote returns s as a single-quoted fish string.
func fishQuote(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

var scripts = map[string]*template.Template{
	"bash": template.Must(template.New("bash").Funcs(funcs).Parse(bashScript)),
	"zsh":  template.Must(template.New("zsh").Funcs(funcs).Parse(zshScript)),
	"fish": template.Must(template.New("fish").Funcs(funcs).Parse(fishScript)),
}

const bashScript = `# bash completion for {{.Name}}
_{{ident .Name}}() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    case "$prev" in
{{- range .Flags}}{{if .Values}}
        -{{.Name}}|--{{.Name}}) COMPREPLY=($(compgen -W "{{join .Values " "}}" -- "$cur")); return ;;
{{- else if .File}}
        -{{.Name}}|--{{.Name}}) COMPREPLY=($(compgen -f -- "$cur")); return ;;
{{- end}}{{end}}
    esac
    if [[ "$cur" == -* ]]; then
        COMPREPLY=($(compgen -W "{{range $i, $f := .Flags}}{{if $i}} {{end}}-{{$f.Name}}{{end}}" -- "$cur"))
    fi
}
complete -o default -F _{{ident .Name}} {{.Name}}
`

const zshScript = `#compdef {{.Name}}

_arguments \
{{- range .Flags}}
  '-{{.Name}}[{{zshquote .Usage}}]{{if not .Bool}}:{{.Name}}:{{if .Values}}({{join .Values " "}}){{else if .File}}_files{{else}} {{end}}{{end}}' \
{{- end}}
  '*:message: '
`

const fishScript = `# fish completion for {{.Name}}
{{- $cmd := .Name}}
{{- range .Flags}}
complete -c {{$cmd}} -o {{.Name}} -d {{fishquote .Usage}}{{if not .Bool}} -r{{if .Values}} -f -a {{fishquote (join .Values " ")}}{{else if .File}} -F{{end}}{{end}}
{{- end}}
`
