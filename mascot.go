package pap

// MascotKind discriminates the variants of MascotSource.
type MascotKind int

const (
	MascotPreset MascotKind = iota // Built-in or named mascot, see Name.
	MascotFile                     // Arbitrary file, see Path.
)

// DefaultMascot is the preset used when nothing else is selected.
const DefaultMascot = "ascii"

// String returns the kind's lowercase name.
func (k MascotKind) String() string {
	switch k {
	case MascotPreset:
		return "preset"
	case MascotFile:
		return "file"
	default:
		return "unknown"
	}
}

// MascotSource says where a mascot comes from. Name is set for
// MascotPreset and Path for MascotFile.
type MascotSource struct {
	Kind MascotKind
	Name string
	Path string
}

// ParseMascotSource builds a MascotSource from a preset name and a file
// path. A non-empty path wins over the name; an empty name selects
// DefaultMascot.
func ParseMascotSource(name, path string) MascotSource {
	if path != "" {
		return MascotSource{Kind: MascotFile, Path: path}
	}
	if name == "" {
		name = DefaultMascot
	}
	return MascotSource{Kind: MascotPreset, Name: name}
}
