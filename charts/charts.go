// Package charts builds the three Plotly figures of the dashboard. Builders
// are pure: same inputs, same figure, so a repeated interaction renders a
// deeply identical ViewModel.
package charts

import (
	"go-riskmonitor/processor"
	"go-riskmonitor/types"
)

// MapUIRevision is the stable view-state token threaded through every map
// redraw. Keeping it constant is what preserves zoom/pan across selections.
const MapUIRevision = "constant"

// Scatter point styling. A selection recolors the whole table: everything
// dims to the baseline and only the selected country's rows get the
// highlight, so the selection is always shown against the global cloud.
const (
	NeutralColor     = "steelblue"
	NeutralOpacity   = 0.6
	BaselineColor    = "lightgrey"
	BaselineOpacity  = 0.3
	HighlightColor   = "red"
	HighlightOpacity = 1.0
)

func boolPtr(b bool) *bool { return &b }

// BuildMap builds the choropleth from the unfiltered per-country mean TEIS.
// The map never reacts to selection; only its uirevision keeps the user's
// zoom in place while the other charts change.
func BuildMap(ds types.Dataset) types.Figure {
	countries, means := processor.MeanTEISByCountry(ds)
	return types.Figure{
		Data: []types.Trace{{
			Type:         "choropleth",
			Locations:    countries,
			LocationMode: "country names",
			Z:            means,
			ColorScale:   "Reds",
		}},
		Layout: types.Layout{
			Margin:     &types.Margin{L: 0, R: 0, T: 0, B: 0},
			UIRevision: MapUIRevision,
			Geo: &types.Geo{
				ShowFrame:      false,
				ShowCoastlines: false,
				Projection:     types.Projection{Type: "equirectangular"},
			},
		},
	}
}

// BuildTrend builds the dual-axis temporal chart: fatalities as grey bars on
// the left axis, TEIS as a green line on the right.
func BuildTrend(yearly []types.YearlySummary) types.Figure {
	years := make([]float64, len(yearly))
	fatalities := make([]float64, len(yearly))
	teis := make([]float64, len(yearly))
	for i, y := range yearly {
		years[i] = float64(y.Year)
		fatalities[i] = y.TotalFatalities
		teis[i] = y.MeanTEIS
	}

	return types.Figure{
		Data: []types.Trace{
			{
				Type:    "bar",
				Name:    "Fatalities",
				X:       years,
				Y:       fatalities,
				Marker:  &types.Marker{Color: "#bdc3c7"},
				Opacity: 0.7,
			},
			{
				Type:  "scatter",
				Name:  "TEIS Intensity",
				Mode:  "lines",
				X:     years,
				Y:     teis,
				Line:  &types.Line{Color: "#27ae60", Width: 3},
				YAxis: "y2",
			},
		},
		Layout: types.Layout{
			Margin: &types.Margin{L: 0, R: 0, T: 10, B: 0},
			Legend: &types.Legend{Orientation: "h", Y: 1.1, X: 0.5, XAnchor: "center"},
			PlotBG: "white",
			YAxis:  &types.Axis{Title: "Fatalities", ShowGrid: boolPtr(false)},
			YAxis2: &types.Axis{Title: "TEIS Index", ShowGrid: boolPtr(false), Overlaying: "y", Side: "right"},
		},
	}
}

// PointStyles is the per-row scatter styling for one interaction.
type PointStyles struct {
	Colors    []string
	Opacities []float64
}

// NeutralStyles styles every row with the global-view neutral look.
func NeutralStyles(n int) PointStyles {
	s := PointStyles{Colors: make([]string, n), Opacities: make([]float64, n)}
	for i := range s.Colors {
		s.Colors[i] = NeutralColor
		s.Opacities[i] = NeutralOpacity
	}
	return s
}

// HighlightStyles dims every row to the baseline and highlights the rows of
// the selected country. All rows stay visible; this is a recoloring, not a
// filter.
func HighlightStyles(ds types.Dataset, country string) PointStyles {
	s := PointStyles{Colors: make([]string, len(ds)), Opacities: make([]float64, len(ds))}
	for i, rec := range ds {
		if rec.Country == country {
			s.Colors[i] = HighlightColor
			s.Opacities[i] = HighlightOpacity
		} else {
			s.Colors[i] = BaselineColor
			s.Opacities[i] = BaselineOpacity
		}
	}
	return s
}

// BuildScatter builds the TEIS vs GDP-growth scatter. The global regression
// overlay is drawn first, whenever a line was fit at startup: it is a fixed
// baseline and never recomputed per selection.
func BuildScatter(ds types.Dataset, styles PointStyles, line types.RegressionLine) types.Figure {
	fig := types.Figure{
		Layout: types.Layout{
			XAxis:      &types.Axis{Title: "Risk Intensity (TEIS)", ShowGrid: boolPtr(true), GridColor: "#f0f0f0"},
			YAxis:      &types.Axis{Title: "GDP Growth (%)", ShowGrid: boolPtr(true), GridColor: "#f0f0f0"},
			Margin:     &types.Margin{L: 0, R: 0, T: 10, B: 0},
			PlotBG:     "white",
			ShowLegend: boolPtr(false),
		},
	}

	if line.OK {
		fig.Data = append(fig.Data, types.Trace{
			Type: "scatter",
			Name: "Structural Drag (Global)",
			Mode: "lines",
			X:    []float64{line.XMin, line.XMax},
			Y:    []float64{line.At(line.XMin), line.At(line.XMax)},
			Line: &types.Line{Color: "red", Dash: "dash"},
		})
	}

	xs := make([]float64, len(ds))
	ys := make([]float64, len(ds))
	text := make([]string, len(ds))
	for i, rec := range ds {
		xs[i] = rec.TEIS
		ys[i] = rec.GDPGrowthPct
		text[i] = rec.Country
	}
	fig.Data = append(fig.Data, types.Trace{
		Type: "scatter",
		Name: "Countries",
		Mode: "markers",
		X:    xs,
		Y:    ys,
		Text: text,
		Marker: &types.Marker{
			Size:      8,
			Colors:    styles.Colors,
			Opacities: styles.Opacities,
		},
	})
	return fig
}
