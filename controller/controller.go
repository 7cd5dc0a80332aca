// Package controller implements the selection-driven recompute/highlight
// protocol: one pure function from an interaction event to the six view
// outputs (three figures, three KPI labels). There are exactly two states,
// the global view and a single-country view, and nothing persists between
// interactions.
package controller

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"go-riskmonitor/charts"
	"go-riskmonitor/processor"
	"go-riskmonitor/types"
)

// GlobalLabel is the selected-region label of the unfiltered view.
const GlobalLabel = "Global View"

// Trigger identifies which of the two interaction surfaces fired.
type Trigger string

const (
	TriggerMapClick Trigger = "map-click"
	TriggerReset    Trigger = "reset"
)

// Event is one user interaction. Location is only meaningful for map clicks;
// a click with no location behaves like the global view.
type Event struct {
	Trigger  Trigger
	Location string
}

// Context is the read-only world the controller computes against: the
// Dataset plus everything precomputed once at startup. It is built in main,
// passed by reference everywhere, and never mutated afterward.
type Context struct {
	Data   types.Dataset
	Global types.GlobalAggregate
	Line   types.RegressionLine

	// GlobalTrendFallback preserves the legacy empty-selection behavior:
	// the trend chart falls back to the global series while the KPIs stay
	// zero. See config.Config.GlobalTrendFallback.
	GlobalTrendFallback bool
}

// NewContext precomputes the global aggregates and regression line for ds.
func NewContext(ds types.Dataset, globalTrendFallback bool) *Context {
	return &Context{
		Data:                ds,
		Global:              processor.BuildGlobal(ds),
		Line:                processor.FitRegression(ds),
		GlobalTrendFallback: globalTrendFallback,
	}
}

// Update recomputes all six view outputs for one interaction. It is pure:
// the same event against the same context yields a deeply equal ViewModel.
func Update(ctx *Context, ev Event) types.ViewModel {
	var (
		label   string
		kpiFat  float64
		kpiTEIS float64
		yearly  []types.YearlySummary
		styles  charts.PointStyles
	)

	if ev.Trigger == TriggerReset || ev.Location == "" {
		// GLOBAL state: baseline KPIs and the neutral scatter styling.
		label = GlobalLabel
		kpiFat = ctx.Global.TotalFatalities
		kpiTEIS = ctx.Global.MeanTEIS
		yearly = ctx.Global.Yearly
		styles = charts.NeutralStyles(len(ctx.Data))
	} else {
		// FILTERED state: KPIs and trend from the matching rows only.
		label = ev.Location
		subset := processor.FilterCountry(ctx.Data, ev.Location)

		// KPIs always come from the subset, even when it is empty. The
		// trend fallback below intentionally does NOT extend to them.
		kpiFat = processor.SumFatalities(subset)
		kpiTEIS = processor.MeanTEIS(subset)

		if len(subset) == 0 && ctx.GlobalTrendFallback {
			yearly = ctx.Global.Yearly
		} else {
			yearly = processor.YearlyRollup(subset)
		}

		styles = charts.HighlightStyles(ctx.Data, ev.Location)
	}

	return types.ViewModel{
		MapFigure:       charts.BuildMap(ctx.Data),
		TrendFigure:     charts.BuildTrend(yearly),
		ScatterFigure:   charts.BuildScatter(ctx.Data, styles, ctx.Line),
		SelectedLabel:   label,
		FatalitiesLabel: FormatFatalities(kpiFat),
		TEISLabel:       FormatTEIS(kpiTEIS),
	}
}

// FormatFatalities renders the fatalities KPI with thousands separators and
// no decimals.
func FormatFatalities(v float64) string {
	return humanize.CommafWithDigits(v, 0)
}

// FormatTEIS renders the TEIS KPI to three decimals.
func FormatTEIS(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
