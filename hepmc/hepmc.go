/*Package hepmc reads the simplified HEPMC-like ASCII event listings written
by the UPCgen generator. A listing is line oriented: an "E" header per event,
a "U" units line, then one "P" line per particle. Anything else is skipped
until an END_EVENT_LISTING sentinel terminates the scan.*/
package hepmc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-hep.org/x/hep/fmom"
)

// Particle status codes. Every parsed particle starts out final-state and is
// demoted to Decayed when a later particle names it as a mother.
const (
	FinalState = 1
	Decayed    = 2
)

// Particle is a single "P" row of an event.
type Particle struct {
	ID     int // PDG id
	Status int
	Mother int // 1-based index of the mother particle, 0 for primaries
	P      fmom.PxPyPzE
}

// Event is an ordered particle listing. Particle order is listing order.
type Event struct {
	Index     int
	Particles []Particle
}

// FinalStateSum returns the summed four-momentum of the final-state
// particles of the event.
func (ev *Event) FinalStateSum() fmom.PxPyPzE {
	sum := fmom.NewPxPyPzE(0, 0, 0, 0)
	for i := range ev.Particles {
		p := &ev.Particles[i]
		if p.Status == FinalState {
			fmom.IAdd(&sum, &p.P)
		}
	}
	return sum
}

// A Reader scans an event listing line by line.
type Reader struct {
	s    *bufio.Scanner
	done bool
}

func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Read returns the next event in the listing. It returns io.EOF once the
// end-of-listing sentinel is seen or the input is exhausted. Any structural
// violation is returned as an error quoting the offending line.
func (r *Reader) Read() (*Event, error) {
	for r.next() {
		line := r.s.Text()
		if !strings.HasPrefix(line, "E ") {
			continue
		}
		return r.readEvent(line)
	}
	if err := r.s.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// next advances the scan between events. The sentinel is matched as a
// substring of the line, matching the looseness of the listings in the wild.
func (r *Reader) next() bool {
	if r.done {
		return false
	}
	if !r.s.Scan() || strings.Contains(r.s.Text(), "END_EVENT_LISTING") {
		r.done = true
		return false
	}
	return true
}

// line reads a raw line from inside an event body.
func (r *Reader) line() (string, bool) {
	if r.done || !r.s.Scan() {
		r.done = true
		return "", false
	}
	return r.s.Text(), true
}

// readEvent parses one event starting from its header line. Statuses are
// resolved in a single pass after the whole particle list is built.
func (r *Reader) readEvent(header string) (*Event, error) {
	var (
		tag              string
		iEvt, nVtx, nPar int
	)
	if _, err := fmt.Sscan(header, &tag, &iEvt, &nVtx, &nPar); err != nil || tag != "E" || nPar < 0 {
		return nil, fmt.Errorf("hepmc: failed to parse event line: %q", header)
	}

	line, ok := r.line()
	if !ok || !unitsLine(line) {
		return nil, fmt.Errorf("hepmc: failed to parse units line: %q", line)
	}

	ev := &Event{Index: iEvt, Particles: make([]Particle, nPar)}
	for i := 0; i < nPar; i++ {
		line, ok := r.line()
		if !ok {
			return nil, fmt.Errorf("hepmc: event %d truncated after %d of %d particles",
				iEvt, i, nPar)
		}
		p, err := parseParticle(line, i+1)
		if err != nil {
			return nil, err
		}
		ev.Particles[i] = p
	}

	for i := range ev.Particles {
		if m := ev.Particles[i].Mother; m > 0 {
			ev.Particles[m-1].Status = Decayed
		}
	}
	return ev, nil
}

// unitsLine reports whether line is a units declaration. Only the tag is
// checked; the unit values themselves are never used.
func unitsLine(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && fields[0] == "U"
}

// parseParticle parses one "P" line. want is the 1-based position the line
// must declare for itself.
func parseParticle(line string, want int) (Particle, error) {
	var (
		tag                   string
		idx, mom, pdg, status int
		px, py, pz, e, mass   float64
	)
	_, err := fmt.Sscan(line, &tag, &idx, &mom, &pdg, &px, &py, &pz, &e, &mass, &status)
	if err != nil || tag != "P" {
		return Particle{}, fmt.Errorf("hepmc: failed to parse particle line: %q", line)
	}
	if idx != want {
		return Particle{}, fmt.Errorf("hepmc: particle index out of order: %q", line)
	}
	if mom >= idx {
		return Particle{}, fmt.Errorf("hepmc: mother index must precede particle: %q", line)
	}

	// The status and mass fields are read but not propagated: the output
	// status comes from mother-reference demotion alone, and the mass is
	// recomputed from the four-momentum downstream.
	return Particle{
		ID:     pdg,
		Status: FinalState,
		Mother: mom,
		P:      fmom.NewPxPyPzE(px, py, pz, e),
	}, nil
}
