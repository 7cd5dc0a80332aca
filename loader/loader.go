// Package loader reads the country-year source table into memory. It runs
// exactly once at startup; a failed load is reported to the caller as a
// typed error alongside an empty Dataset, so the server can keep serving an
// empty-but-valid dashboard instead of dying.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"go-riskmonitor/types"
)

// Stages a load can fail in, so callers and tests can tell "file missing"
// apart from "file present but malformed".
const (
	StageOpen   = "open"
	StageParse  = "parse"
	StageHeader = "header"
	StageRow    = "row"
)

// LoadError reports why a load produced an empty Dataset.
type LoadError struct {
	Path  string
	Stage string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading dataset %s: %s: %v", e.Path, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

var requiredColumns = []string{"Country", "Year", "TEIS", "fatalities", "GDP_growth_pct"}

// Load reads the CSV at path into a Dataset. On any failure it returns an
// empty Dataset and a *LoadError; it never panics and never returns partial
// data. Extra columns are ignored and column order does not matter.
func Load(path string) (types.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Dataset{}, &LoadError{Path: path, Stage: StageOpen, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return types.Dataset{}, &LoadError{Path: path, Stage: StageParse, Err: err}
	}
	if len(rows) == 0 {
		return types.Dataset{}, &LoadError{Path: path, Stage: StageHeader, Err: fmt.Errorf("file is empty")}
	}

	col := map[string]int{}
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return types.Dataset{}, &LoadError{Path: path, Stage: StageHeader, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	ds := make(types.Dataset, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec, err := parseRow(row, col)
		if err != nil {
			return types.Dataset{}, &LoadError{Path: path, Stage: StageRow, Err: fmt.Errorf("row %d: %w", n+2, err)}
		}
		ds = append(ds, rec)
	}
	return ds, nil
}

func parseRow(row []string, col map[string]int) (types.Record, error) {
	var rec types.Record

	rec.Country = row[col["Country"]]
	if rec.Country == "" {
		return rec, fmt.Errorf("empty Country")
	}

	year, err := strconv.Atoi(row[col["Year"]])
	if err != nil {
		return rec, fmt.Errorf("bad Year %q: %w", row[col["Year"]], err)
	}
	rec.Year = year

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"TEIS", &rec.TEIS},
		{"fatalities", &rec.Fatalities},
		{"GDP_growth_pct", &rec.GDPGrowthPct},
	} {
		v, err := strconv.ParseFloat(row[col[f.name]], 64)
		if err != nil {
			return rec, fmt.Errorf("bad %s %q: %w", f.name, row[col[f.name]], err)
		}
		*f.dst = v
	}

	if rec.Fatalities < 0 {
		return rec, fmt.Errorf("negative fatalities %v", rec.Fatalities)
	}
	return rec, nil
}
