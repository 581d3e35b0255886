package hepmc2lhe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/phil-mansfield/table"
)

// Cross sections used when no xsec.out file accompanies the input, in pb.
const (
	defaultFidXsec = 1.0
	defaultTotXsec = 3.0
)

// xsecFileName is the auxiliary cross-section file written by UPCgen next
// to its event listing.
const xsecFileName = "xsec.out"

// readXsec reads the fiducial and total cross sections (in pb) from the
// xsec.out file in dir. found reports whether the file existed; its absence
// is not an error.
func readXsec(dir string) (fid, tot float64, found bool, err error) {
	name := filepath.Join(dir, xsecFileName)
	if _, err := os.Stat(name); err != nil {
		return 0, 0, false, nil
	}

	cols, err := table.ReadTable(name, []int{0, 1}, nil)
	if err != nil {
		return 0, 0, true, fmt.Errorf("hepmc2lhe: failed to read %s: %v", name, err)
	}
	if len(cols[0]) == 0 {
		return 0, 0, true, fmt.Errorf("hepmc2lhe: no cross sections in %s", name)
	}
	return cols[0][0], cols[1][0], true, nil
}
