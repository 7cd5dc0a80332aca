// Package processor derives the process-wide constant aggregates from the
// Dataset: the global totals/means, the per-year rollup, and the fitted
// "Structural Drag" regression line. Everything here runs once at startup;
// the results are read-only for the life of the process.
package processor

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"go-riskmonitor/types"
)

// BuildGlobal computes the global KPI baseline and the per-year rollup.
// Yearly has exactly one entry per distinct year, sorted ascending.
func BuildGlobal(ds types.Dataset) types.GlobalAggregate {
	return types.GlobalAggregate{
		TotalFatalities: SumFatalities(ds),
		MeanTEIS:        MeanTEIS(ds),
		Yearly:          YearlyRollup(ds),
	}
}

// SumFatalities totals fatalities over every row.
func SumFatalities(ds types.Dataset) float64 {
	var total float64
	for _, rec := range ds {
		total += rec.Fatalities
	}
	return total
}

// MeanTEIS is the arithmetic mean of TEIS over every row, 0 when there are
// no rows.
func MeanTEIS(ds types.Dataset) float64 {
	if len(ds) == 0 {
		return 0
	}
	var total float64
	for _, rec := range ds {
		total += rec.TEIS
	}
	return total / float64(len(ds))
}

// YearlyRollup groups rows by Year, taking mean TEIS and summed fatalities
// per group, ordered by Year ascending.
func YearlyRollup(ds types.Dataset) []types.YearlySummary {
	type bucket struct {
		teisSum    float64
		fatalities float64
		count      int
	}
	byYear := map[int]*bucket{}
	for _, rec := range ds {
		b, ok := byYear[rec.Year]
		if !ok {
			b = &bucket{}
			byYear[rec.Year] = b
		}
		b.teisSum += rec.TEIS
		b.fatalities += rec.Fatalities
		b.count++
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]types.YearlySummary, 0, len(years))
	for _, y := range years {
		b := byYear[y]
		out = append(out, types.YearlySummary{
			Year:            y,
			MeanTEIS:        b.teisSum / float64(b.count),
			TotalFatalities: b.fatalities,
		})
	}
	return out
}

// MeanTEISByCountry is the unfiltered per-country mean TEIS that colors the
// choropleth. Countries come back sorted by name so the map series is
// deterministic.
func MeanTEISByCountry(ds types.Dataset) ([]string, []float64) {
	type bucket struct {
		sum   float64
		count int
	}
	byCountry := map[string]*bucket{}
	for _, rec := range ds {
		b, ok := byCountry[rec.Country]
		if !ok {
			b = &bucket{}
			byCountry[rec.Country] = b
		}
		b.sum += rec.TEIS
		b.count++
	}

	countries := make([]string, 0, len(byCountry))
	for c := range byCountry {
		countries = append(countries, c)
	}
	sort.Strings(countries)

	means := make([]float64, len(countries))
	for i, c := range countries {
		b := byCountry[c]
		means[i] = b.sum / float64(b.count)
	}
	return countries, means
}

// FitRegression fits GDP growth on TEIS by ordinary least squares over the
// whole Dataset. With fewer than 2 rows there is nothing to fit and OK is
// false, which makes the scatter skip the overlay instead of failing.
func FitRegression(ds types.Dataset) types.RegressionLine {
	if len(ds) < 2 {
		return types.RegressionLine{}
	}

	xs := make([]float64, len(ds))
	ys := make([]float64, len(ds))
	xMin, xMax := ds[0].TEIS, ds[0].TEIS
	for i, rec := range ds {
		xs[i] = rec.TEIS
		ys[i] = rec.GDPGrowthPct
		if rec.TEIS < xMin {
			xMin = rec.TEIS
		}
		if rec.TEIS > xMax {
			xMax = rec.TEIS
		}
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	return types.RegressionLine{
		Slope:     slope,
		Intercept: intercept,
		XMin:      xMin,
		XMax:      xMax,
		OK:        true,
	}
}

// FilterCountry returns the rows whose Country matches exactly. Duplicate
// country names all match together; there is no disambiguation.
func FilterCountry(ds types.Dataset, country string) types.Dataset {
	out := types.Dataset{}
	for _, rec := range ds {
		if rec.Country == country {
			out = append(out, rec)
		}
	}
	return out
}
