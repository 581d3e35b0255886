/*Package hepmc2lhe converts UPCgen HEPMC-style ASCII event listings into
the LHE format read by downstream analysis tools.

UPCgen does not record the photon-photon initial state, so the converter
reconstructs two beam photons per event from the longitudinal momentum and
energy balance of the final-state particles.*/
package hepmc2lhe

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/hbook"

	"github.com/upcgen/hepmc2lhe/hepmc"
	"github.com/upcgen/hepmc2lhe/lhe"
)

const (
	photonID   = 22
	beamStatus = -1
)

// Convert reads the event listing at inPath and writes its LHE rendition
// into the working directory, named after the input with a .lhe extension.
// beamE1 and beamE2 are the beam energies in GeV. It returns the number of
// events written and the output file name.
func Convert(inPath string, beamE1, beamE2 float64) (int, string, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, "", fmt.Errorf("hepmc2lhe: failed to open input file %s: %v", inPath, err)
	}
	defer in.Close()

	dir := filepath.Dir(inPath)
	cfg, err := readInitConfig(dir)
	if err != nil {
		return 0, "", err
	}
	run := lhe.Run{
		BeamID:  [2]int{cfg.BeamID1, cfg.BeamID2},
		BeamE:   [2]float64{beamE1, beamE2},
		Weight:  cfg.WeightStrategy,
		Process: cfg.ProcessID,
		FidXsec: defaultFidXsec,
		TotXsec: defaultTotXsec,
	}
	if fid, tot, found, err := readXsec(dir); err != nil {
		return 0, "", err
	} else if found {
		run.FidXsec, run.TotXsec = fid, tot
	}

	outName := outputName(inPath)
	out, err := os.Create(outName)
	if err != nil {
		return 0, "", fmt.Errorf("hepmc2lhe: failed to create output file %s: %v", outName, err)
	}
	defer out.Close()

	w, err := lhe.NewWriter(out, run)
	if err != nil {
		return 0, "", err
	}

	r := hepmc.NewReader(in)
	mult := hbook.NewH1D(50, 0, 50)
	nEvt := 0
	for {
		ev, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nEvt, "", err
		}
		parts := lheParticles(ev)
		mult.Fill(float64(len(parts)), 1)
		if err := w.WriteEvent(parts); err != nil {
			return nEvt, "", err
		}
		nEvt++
	}

	if err := w.WriteFooter(); err != nil {
		return nEvt, "", err
	}
	if err := out.Close(); err != nil {
		return nEvt, "", fmt.Errorf("hepmc2lhe: failed to close output file %s: %v", outName, err)
	}

	if nEvt > 0 {
		log.Printf("mean event multiplicity: %.2f over %d events",
			mult.XMean(), mult.Entries())
	}
	return nEvt, outName, nil
}

// lheParticles converts a parsed event into its output rows: the two
// reconstructed beam photons followed by the event's own particles in
// listing order.
func lheParticles(ev *hepmc.Event) []lhe.Particle {
	sum := ev.FinalStateSum()
	pz, e := sum.Pz(), sum.E()

	parts := make([]lhe.Particle, 0, len(ev.Particles)+2)
	parts = append(parts, beamPhoton((pz-e)/2), beamPhoton((pz+e)/2))
	for i := range ev.Particles {
		p := &ev.Particles[i]
		parts = append(parts, lhe.Particle{
			ID:      p.ID,
			Status:  p.Status,
			Mothers: motherSlots(p.Status, p.Mother),
			P:       p.P,
		})
	}
	return parts
}

// beamPhoton builds a massless photon moving along the beam axis.
func beamPhoton(pz float64) lhe.Particle {
	return lhe.Particle{
		ID:     photonID,
		Status: beamStatus,
		P:      fmom.NewPxPyPzE(0, 0, pz, math.Abs(pz)),
	}
}

// motherSlots encodes the two LHE mother fields. The reconstructed beam
// photons occupy rows 1 and 2, so primaries point at both of them and
// parsed mother indices shift by two.
func motherSlots(status, mother int) [2]int {
	switch {
	case status <= 0:
		return [2]int{0, 0}
	case mother == 0:
		return [2]int{1, 2}
	}
	return [2]int{mother + 2, 0}
}

// outputName derives the output file name: the input's base name with its
// last extension replaced by .lhe.
func outputName(inPath string) string {
	base := filepath.Base(inPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".lhe"
}
