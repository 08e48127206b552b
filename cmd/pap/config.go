package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/fwojciec/pap"
	"github.com/fwojciec/pap/bubble"
	"github.com/fwojciec/pap/grapheme"
)

// Measure names accepted by -measure.
var measures = []string{"graphemes", "cells"}

// resolveMascot selects the mascot source. An explicit -mascot-file wins,
// then -mascot, then PAP_MASCOT. All env var values are passed in as
// parameters; env is only read in main().
func resolveMascot(mascotFlag, mascotFileFlag, envMascot string) (pap.MascotSource, error) {
	name := mascotFlag
	if name == "" {
		name = envMascot
	}
	src := pap.ParseMascotSource(name, mascotFileFlag)
	if err := src.Validate(); err != nil {
		return pap.MascotSource{}, fmt.Errorf("mascot: %w", err)
	}
	return src, nil
}

// resolveMascotDir returns the directory searched for named mascots:
// -mascot-dir, then PAP_MASCOT_DIR, then ~/.config/pap/mascots. An empty
// home with nothing else set disables the search.
func resolveMascotDir(dirFlag, envDir, home string) string {
	switch {
	case dirFlag != "":
		return dirFlag
	case envDir != "":
		return envDir
	case home != "":
		return filepath.Join(home, ".config", "pap", "mascots")
	default:
		return ""
	}
}

// resolveMeasure maps a -measure value to its width function.
func resolveMeasure(name string) (bubble.Measure, error) {
	switch name {
	case "", "graphemes":
		return grapheme.Count, nil
	case "cells":
		return grapheme.Cells, nil
	default:
		return nil, fmt.Errorf("unknown measure %q: must be \"graphemes\" or \"cells\": %w", name, pap.ErrValidation)
	}
}

// newRand returns the excerpt random source. Seed 0 means seed from the
// clock.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}
