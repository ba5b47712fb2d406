package parser

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLAS = `~Version Information
 VERS.   2.0  : CWLS LOG ASCII STANDARD - VERSION 2.0
 WRAP.   NO   : One line per depth step
~Well Information
 STRT.FT  3600.0000  : START DEPTH
 STOP.FT  3604.0000  : STOP DEPTH
 NULL.    -999.25    : NULL VALUE
 WELL.    KOOCHEL MOUNTAIN #1 : WELL NAME
~Curve Information
 DEPT.FT     : Depth
 GR.GAPI     : Gamma Ray
 DT.US/F     : Sonic Transit Time
 RHOB.G/C3   : Bulk Density
~Parameter Information
 BHT.DEGF  120.0 : BOTTOM HOLE TEMPERATURE
~ASCII Log Data
 3600.0000   45.2000   62.1000    2.4500
 3601.0000  -999.2500  63.0000    2.4600
 3602.0000   88.7000  -999.2500   2.4700
 3603.0000   91.0000   64.5000  -999.2500
 3604.0000   52.3000   65.2000    2.4800
`

func TestParseSampleFile(t *testing.T) {
	log, err := Parse(strings.NewReader(sampleLAS))
	require.NoError(t, err)

	assert.Equal(t, "KOOCHEL MOUNTAIN #1", log.WellName)
	assert.Equal(t, -999.25, log.NullValue)
	assert.Equal(t, "DEPT", log.DepthName)
	assert.Equal(t, []string{"GR", "DT", "RHOB"}, log.CurveNames)
	assert.Empty(t, log.Warnings)

	require.Len(t, log.Table.Depths, 5)
	assert.Equal(t, []float64{3600, 3601, 3602, 3603, 3604}, log.Table.Depths)
}

func TestParseConvertsNullToNaN(t *testing.T) {
	log, err := Parse(strings.NewReader(sampleLAS))
	require.NoError(t, err)

	gr := log.Table.Columns["GR"]
	dt := log.Table.Columns["DT"]
	rhob := log.Table.Columns["RHOB"]
	assert.True(t, math.IsNaN(gr[1]))
	assert.True(t, math.IsNaN(dt[2]))
	assert.True(t, math.IsNaN(rhob[3]))

	// No sentinel value survives ingestion.
	for _, col := range log.Table.Columns {
		for _, v := range col {
			assert.NotEqual(t, -999.25, v)
		}
	}
}

func TestParseRejectsWrappedFiles(t *testing.T) {
	wrapped := strings.Replace(sampleLAS, "WRAP.   NO", "WRAP.   YES", 1)
	_, err := Parse(strings.NewReader(wrapped))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrapped")
}

func TestParseSkipsMalformedRows(t *testing.T) {
	mangled := sampleLAS + " 3605.0000   50.0\n"
	log, err := Parse(strings.NewReader(mangled))
	require.NoError(t, err)
	assert.Len(t, log.Table.Depths, 5)
	require.NotEmpty(t, log.Warnings)
	assert.Contains(t, log.Warnings[0], "row skipped")
}

func TestParseRequiresCurveSection(t *testing.T) {
	_, err := Parse(strings.NewReader("~Well\n NULL. -999.25 : NULL\n"))
	require.Error(t, err)
}

func TestCurveTablePreservesOrder(t *testing.T) {
	log, err := Parse(strings.NewReader(sampleLAS))
	require.NoError(t, err)

	tbl := log.CurveTable()
	assert.Equal(t, []string{"GR", "DT", "RHOB"}, tbl.Names)
	assert.Equal(t, log.Table.Depths, tbl.Depths)
}
