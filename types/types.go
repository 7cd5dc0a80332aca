package types

// Record is one row of the source table: one country in one year.
type Record struct {
	Country      string  `json:"country"`
	Year         int     `json:"year"`
	TEIS         float64 `json:"teis"`
	Fatalities   float64 `json:"fatalities"`
	GDPGrowthPct float64 `json:"gdpGrowthPct"`
}

// Dataset is the full table, ordered as read. It is never mutated after load;
// everything derived from it is a copy or an aggregation.
type Dataset []Record

// YearlySummary is one entry of a per-year rollup.
type YearlySummary struct {
	Year            int     `json:"year"`
	MeanTEIS        float64 `json:"meanTeis"`
	TotalFatalities float64 `json:"totalFatalities"`
}

// GlobalAggregate holds the process-wide constants derived from the Dataset
// once at startup.
type GlobalAggregate struct {
	TotalFatalities float64         `json:"totalFatalities"`
	MeanTEIS        float64         `json:"meanTeis"`
	Yearly          []YearlySummary `json:"yearly"`
}

// RegressionLine is the OLS fit of GDP growth on TEIS over the whole Dataset.
// It is the fixed "Structural Drag" baseline and never changes with selection.
// OK is false when there were not enough rows to fit a line, in which case
// the scatter renders no overlay.
type RegressionLine struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	XMin      float64 `json:"xMin"`
	XMax      float64 `json:"xMax"`
	OK        bool    `json:"ok"`
}

// At returns the fitted GDP growth value at x.
func (l RegressionLine) At(x float64) float64 {
	return l.Slope*x + l.Intercept
}
