package loader

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-riskmonitor/types"
)

func loadErr(t *testing.T, err error) *LoadError {
	t.Helper()
	var le *LoadError
	require.True(t, errors.As(err, &le), "expected a *LoadError, got %v", err)
	return le
}

func TestLoadValid(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "valid.csv"))
	require.NoError(t, err)
	require.Len(t, ds, 5)

	assert.Equal(t, types.Record{
		Country:      "Nigeria",
		Year:         2019,
		TEIS:         0.72,
		Fatalities:   1250,
		GDPGrowthPct: 2.2,
	}, ds[0])

	// Row order is preserved as read.
	assert.Equal(t, "Colombia", ds[4].Country)
	assert.Equal(t, 2021, ds[4].Year)
}

func TestLoadExtraColumnsAnyOrder(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "extra_columns.csv"))
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Nigeria", ds[0].Country)
	assert.Equal(t, 2.2, ds[0].GDPGrowthPct)
	assert.Equal(t, 700.0, ds[1].Fatalities)
}

func TestLoadMissingFile(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "no_such_file.csv"))
	le := loadErr(t, err)
	assert.Equal(t, StageOpen, le.Stage)
	assert.Empty(t, ds, "a failed load must still hand back an empty, usable Dataset")
}

func TestLoadMissingColumn(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "missing_column.csv"))
	le := loadErr(t, err)
	assert.Equal(t, StageHeader, le.Stage)
	assert.Contains(t, le.Error(), "GDP_growth_pct")
	assert.Empty(t, ds)
}

func TestLoadBadYear(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "bad_year.csv"))
	le := loadErr(t, err)
	assert.Equal(t, StageRow, le.Stage)
	assert.Empty(t, ds)
}

func TestLoadNegativeFatalities(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "negative_fatalities.csv"))
	le := loadErr(t, err)
	assert.Equal(t, StageRow, le.Stage)
}

func TestLoadRaggedRow(t *testing.T) {
	ds, err := Load(filepath.Join("testdata", "ragged.csv"))
	le := loadErr(t, err)
	assert.Equal(t, StageParse, le.Stage)
	assert.Empty(t, ds)
}
