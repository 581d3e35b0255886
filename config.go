package hepmc2lhe

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/gcfg.v1"
)

// Defaults for the initialization-level records. UPCgen listings carry no
// such metadata, so fixed conventions are used unless a convert.cfg next to
// the input overrides them.
const (
	defaultBeamID         = 2212 // proton
	defaultWeightStrategy = 3
	defaultProcessID      = 81
)

// configFileName is the optional run-parameter file looked up in the same
// directory as the input listing.
const configFileName = "convert.cfg"

// InitConfig overrides the constants written to the <init> block.
type InitConfig struct {
	BeamID1        int
	BeamID2        int
	WeightStrategy int
	ProcessID      int
}

// ConfigWrapper is the gcfg layout of a convert.cfg file.
type ConfigWrapper struct {
	Init InitConfig
}

// DefaultConfigWrapper returns a ConfigWrapper with every parameter set to
// its default.
func DefaultConfigWrapper() *ConfigWrapper {
	return &ConfigWrapper{Init: InitConfig{
		BeamID1:        defaultBeamID,
		BeamID2:        defaultBeamID,
		WeightStrategy: defaultWeightStrategy,
		ProcessID:      defaultProcessID,
	}}
}

// readInitConfig loads convert.cfg from dir if present. A missing file
// yields the defaults; a malformed file is an error.
func readInitConfig(dir string) (*InitConfig, error) {
	wrap := DefaultConfigWrapper()
	name := filepath.Join(dir, configFileName)
	if _, err := os.Stat(name); err != nil {
		return &wrap.Init, nil
	}
	if err := gcfg.ReadFileInto(wrap, name); err != nil {
		return nil, fmt.Errorf("hepmc2lhe: failed to parse config file %s: %v", name, err)
	}
	return &wrap.Init, nil
}

const ExampleConfigFile = `[Init]

# PDG ids of the two beam particles. Default is 2212 (proton); heavy-ion
# runs should use the nuclear PDG code, e.g. 1000822080 for Pb.
# BeamID1 = 2212
# BeamID2 = 2212

# LHE weight-strategy code written to the <init> block.
# WeightStrategy = 3

# Subprocess id used for the <init> record and for every event.
# ProcessID = 81`
