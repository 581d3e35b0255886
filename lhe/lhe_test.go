package lhe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hep.org/x/hep/fmom"
)

func TestSci(t *testing.T) {
	assert.Equal(t, "0.00000000e+00", sci(0, 8))
	assert.Equal(t, "1.00000000e+00", sci(1, 8))
	assert.Equal(t, "2.68000000e+03", sci(2680, 8))
	assert.Equal(t, "5.0000000000e-01", sci(0.5, 10))
	assert.Equal(t, "-1.5000000000e-01", sci(-0.15, 10))
}

func testRun() Run {
	return Run{
		BeamID:  [2]int{2212, 2212},
		BeamE:   [2]float64{2680, 2680},
		Weight:  3,
		Process: 81,
		FidXsec: 1,
		TotXsec: 3,
	}
}

// commentBlock is spelled with escape sequences: the trailing spaces after
// "<!--" and the comment text are part of the format and must survive
// editors that trim line ends.
const commentBlock = "<!-- \n #Converted from UPCGEN generator HEPMC output \n-->\n"

func TestWriterInit(t *testing.T) {
	buf := new(bytes.Buffer)
	w, err := NewWriter(buf, testRun())
	require.NoError(t, err)
	require.NoError(t, w.WriteFooter())

	want := "<LesHouchesEvents version=\"3.0\">\n" +
		commentBlock +
		`<header>
</header>
<init>
2212 2212 2.68000000e+03 2.68000000e+03 0 0 0 0 3 1
1.00000000e+00 0.00000000e+00 3.00000000e+00 81
</init>
</LesHouchesEvents>
`
	assert.Equal(t, want, buf.String())
	assert.Contains(t, buf.String(), commentBlock)
}

func TestWriteEvent(t *testing.T) {
	buf := new(bytes.Buffer)
	w, err := NewWriter(buf, testRun())
	require.NoError(t, err)

	parts := []Particle{
		{ID: 22, Status: -1, Mothers: [2]int{0, 0}, P: fmom.NewPxPyPzE(0, 0, -2.25, 2.25)},
		{ID: 22, Status: -1, Mothers: [2]int{0, 0}, P: fmom.NewPxPyPzE(0, 0, 2.75, 2.75)},
		{ID: 443, Status: 2, Mothers: [2]int{1, 2}, P: fmom.NewPxPyPzE(0, 0, 3, 5)},
		{ID: 22, Status: 1, Mothers: [2]int{3, 0}, P: fmom.NewPxPyPzE(0.5, -0.5, 0.5, 1)},
	}
	require.NoError(t, w.WriteEvent(parts))
	require.NoError(t, w.WriteFooter())

	want := `<event>
4 81 1.0 -1.0 -1.0 -1.0
22 -1 0 0 0 0 0.0000000000e+00 0.0000000000e+00 -2.2500000000e+00 2.2500000000e+00 0.0000000000e+00 0.0000e+00 9.0000e+00
22 -1 0 0 0 0 0.0000000000e+00 0.0000000000e+00 2.7500000000e+00 2.7500000000e+00 0.0000000000e+00 0.0000e+00 9.0000e+00
443 2 1 2 0 0 0.0000000000e+00 0.0000000000e+00 3.0000000000e+00 5.0000000000e+00 4.0000000000e+00 0.0000e+00 9.0000e+00
22 1 3 0 0 0 5.0000000000e-01 -5.0000000000e-01 5.0000000000e-01 1.0000000000e+00 5.0000000000e-01 0.0000e+00 9.0000e+00
</event>
`
	assert.Contains(t, buf.String(), want)

	// one <event> block per call
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<event>")))
}

func TestWriterCustomRun(t *testing.T) {
	run := Run{
		BeamID:  [2]int{1000822080, 1000822080},
		BeamE:   [2]float64{522340, 522340},
		Weight:  3,
		Process: 99,
		FidXsec: 2.5,
		TotXsec: 4.5,
	}
	buf := new(bytes.Buffer)
	w, err := NewWriter(buf, run)
	require.NoError(t, err)
	require.NoError(t, w.WriteEvent([]Particle{
		{ID: 22, Status: -1, P: fmom.NewPxPyPzE(0, 0, 1, 1)},
	}))
	require.NoError(t, w.WriteFooter())

	out := buf.String()
	assert.Contains(t, out, "1000822080 1000822080 5.22340000e+05 5.22340000e+05 0 0 0 0 3 1\n")
	assert.Contains(t, out, "2.50000000e+00 0.00000000e+00 4.50000000e+00 99\n")
	// the subprocess id follows the run record in the event summary too
	assert.Contains(t, out, "1 99 1.0 -1.0 -1.0 -1.0\n")
}
