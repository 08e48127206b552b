package mock

import "github.com/fwojciec/pap"

// Interface compliance check.
var _ pap.MascotLoader = (*MascotLoader)(nil)

// MascotLoader is a test double for pap.MascotLoader.
// Set LoadFn before calling Load.
type MascotLoader struct {
	LoadFn func(src pap.MascotSource) (string, error)
}

// Load delegates to LoadFn.
func (l *MascotLoader) Load(src pap.MascotSource) (string, error) {
	return l.LoadFn(src)
}
