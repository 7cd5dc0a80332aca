package types

import "encoding/json"

// Minimal Plotly-shaped figure encoding. Only the fields the dashboard
// actually sets are modeled; the frontend hands these straight to
// Plotly.react, so JSON keys follow the Plotly schema.

type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace covers the three trace kinds the dashboard emits: choropleth, bar
// and scatter. Unused fields are omitted from the JSON.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	X            []float64 `json:"x,omitempty"`
	Y            []float64 `json:"y,omitempty"`
	Text         []string  `json:"text,omitempty"`
	Locations    []string  `json:"locations,omitempty"`
	LocationMode string    `json:"locationmode,omitempty"`
	Z            []float64 `json:"z,omitempty"`
	ColorScale   string    `json:"colorscale,omitempty"`
	Opacity      float64   `json:"opacity,omitempty"`
	YAxis        string    `json:"yaxis,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
}

// Marker styling. Color and Opacity may be a single value or one value per
// point, which is how the scatter does its context-preserving highlight.
type Marker struct {
	Size      int       `json:"size,omitempty"`
	Color     string    `json:"color,omitempty"`
	Colors    []string  `json:"-"`
	Opacity   float64   `json:"-"`
	Opacities []float64 `json:"-"`
}

// MarshalJSON folds the scalar/array variants back into the single Plotly
// "color"/"opacity" keys.
func (m Marker) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	if m.Size != 0 {
		out["size"] = m.Size
	}
	if m.Colors != nil {
		out["color"] = m.Colors
	} else if m.Color != "" {
		out["color"] = m.Color
	}
	if m.Opacities != nil {
		out["opacity"] = m.Opacities
	} else if m.Opacity != 0 {
		out["opacity"] = m.Opacity
	}
	return json.Marshal(out)
}

// UnmarshalJSON is the inverse: "color" and "opacity" may each be a scalar
// or one value per point.
func (m *Marker) UnmarshalJSON(data []byte) error {
	var raw struct {
		Size    int             `json:"size"`
		Color   json.RawMessage `json:"color"`
		Opacity json.RawMessage `json:"opacity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*m = Marker{Size: raw.Size}

	if len(raw.Color) > 0 {
		if raw.Color[0] == '[' {
			if err := json.Unmarshal(raw.Color, &m.Colors); err != nil {
				return err
			}
		} else if err := json.Unmarshal(raw.Color, &m.Color); err != nil {
			return err
		}
	}
	if len(raw.Opacity) > 0 {
		if raw.Opacity[0] == '[' {
			if err := json.Unmarshal(raw.Opacity, &m.Opacities); err != nil {
				return err
			}
		} else if err := json.Unmarshal(raw.Opacity, &m.Opacity); err != nil {
			return err
		}
	}
	return nil
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Dash  string  `json:"dash,omitempty"`
	Width float64 `json:"width,omitempty"`
}

type Layout struct {
	Margin     *Margin `json:"margin,omitempty"`
	UIRevision string  `json:"uirevision,omitempty"`
	Geo        *Geo    `json:"geo,omitempty"`
	Legend     *Legend `json:"legend,omitempty"`
	PlotBG     string  `json:"plot_bgcolor,omitempty"`
	ShowLegend *bool   `json:"showlegend,omitempty"`
	XAxis      *Axis   `json:"xaxis,omitempty"`
	YAxis      *Axis   `json:"yaxis,omitempty"`
	YAxis2     *Axis   `json:"yaxis2,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Geo struct {
	ShowFrame      bool       `json:"showframe"`
	ShowCoastlines bool       `json:"showcoastlines"`
	Projection     Projection `json:"projection"`
}

type Projection struct {
	Type string `json:"type"`
}

type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	XAnchor     string  `json:"xanchor,omitempty"`
}

type Axis struct {
	Title      string `json:"title,omitempty"`
	ShowGrid   *bool  `json:"showgrid,omitempty"`
	GridColor  string `json:"gridcolor,omitempty"`
	Overlaying string `json:"overlaying,omitempty"`
	Side       string `json:"side,omitempty"`
}

// ViewModel is the full output of one interaction: three figures and three
// KPI labels. It is derived, rendered, and discarded.
type ViewModel struct {
	MapFigure       Figure `json:"mapFigure"`
	TrendFigure     Figure `json:"trendFigure"`
	ScatterFigure   Figure `json:"scatterFigure"`
	SelectedLabel   string `json:"selectedLabel"`
	FatalitiesLabel string `json:"fatalitiesLabel"`
	TEISLabel       string `json:"teisLabel"`
}
