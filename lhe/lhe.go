/*Package lhe writes Les Houches Event files. The writer emits the run
header and <init> block up front, one <event> block per call, and the
closing root tag on Close.

Field layout follows the LHE conventions of hep-ph/0109068.*/
package lhe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"go-hep.org/x/hep/fmom"
)

const version = "3.0"

// Digits after the decimal point for the two numeric sections of the file.
// Formatting is explicit per value so the precisions cannot leak between
// sections.
const (
	initPrec  = 8
	eventPrec = 10
)

// sci formats x in scientific notation with prec digits after the decimal
// point.
func sci(x float64, prec int) string {
	return strconv.FormatFloat(x, 'e', prec, 64)
}

// Run holds the initialization-level record of a file.
type Run struct {
	BeamID  [2]int     // beam particle PDG ids
	BeamE   [2]float64 // beam energies in GeV
	Weight  int        // weight-strategy code
	Process int        // subprocess id, reused for every event
	FidXsec float64    // fiducial cross section in pb
	TotXsec float64    // total cross section in pb
}

// Particle is a single row of an event record.
type Particle struct {
	ID      int
	Status  int
	Mothers [2]int
	P       fmom.PxPyPzE
}

// A Writer emits a single LHE file.
type Writer struct {
	w   *bufio.Writer
	run Run
}

// NewWriter writes the run header and <init> block to w and returns a
// Writer for the event blocks that follow. The Writer never closes w; the
// caller keeps ownership of the underlying file or buffer.
func NewWriter(w io.Writer, run Run) (*Writer, error) {
	lw := &Writer{w: bufio.NewWriter(w), run: run}
	if err := lw.writeInit(); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *Writer) writeInit() error {
	fmt.Fprintf(lw.w, "<LesHouchesEvents version=%q>\n", version)
	fmt.Fprintf(lw.w, "<!-- \n #Converted from UPCGEN generator HEPMC output \n-->\n")
	fmt.Fprintf(lw.w, "<header>\n</header>\n")
	fmt.Fprintf(lw.w, "<init>\n")
	// beam pdg ids, beam energies, PDF author groups and set ids (none),
	// weight strategy, number of subprocesses
	fmt.Fprintf(lw.w, "%d %d %s %s 0 0 0 0 %d 1\n",
		lw.run.BeamID[0], lw.run.BeamID[1],
		sci(lw.run.BeamE[0], initPrec), sci(lw.run.BeamE[1], initPrec),
		lw.run.Weight,
	)
	// cross section, statistical uncertainty, maximum weight, subprocess id
	fmt.Fprintf(lw.w, "%s %s %s %d\n",
		sci(lw.run.FidXsec, initPrec), sci(0, initPrec),
		sci(lw.run.TotXsec, initPrec), lw.run.Process,
	)
	fmt.Fprintf(lw.w, "</init>\n")
	return lw.w.Flush()
}

// WriteEvent emits one <event> block. The mass column is recomputed from
// the particle's four-momentum.
func (lw *Writer) WriteEvent(parts []Particle) error {
	fmt.Fprintf(lw.w, "<event>\n")
	// particle count, subprocess id, event weight, scale, alpha_em, alpha_s
	fmt.Fprintf(lw.w, "%d %d 1.0 -1.0 -1.0 -1.0\n", len(parts), lw.run.Process)
	for i := range parts {
		p := &parts[i]
		// pdg id, status, mother slots, color flow, momentum, mass,
		// proper lifetime, spin
		fmt.Fprintf(lw.w, "%d %d %d %d 0 0 %s %s %s %s %s 0.0000e+00 9.0000e+00\n",
			p.ID, p.Status, p.Mothers[0], p.Mothers[1],
			sci(p.P.Px(), eventPrec), sci(p.P.Py(), eventPrec),
			sci(p.P.Pz(), eventPrec), sci(p.P.E(), eventPrec),
			sci(p.P.M(), eventPrec),
		)
	}
	fmt.Fprintf(lw.w, "</event>\n")
	return lw.w.Flush()
}

// WriteFooter writes the closing root tag and flushes any buffered output.
func (lw *Writer) WriteFooter() error {
	fmt.Fprintf(lw.w, "</LesHouchesEvents>\n")
	return lw.w.Flush()
}
