package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerScalarJSON(t *testing.T) {
	data, err := json.Marshal(Marker{Size: 8, Color: "#bdc3c7", Opacity: 0.7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":8,"color":"#bdc3c7","opacity":0.7}`, string(data))

	var m Marker
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "#bdc3c7", m.Color)
	assert.Nil(t, m.Colors)
	assert.Equal(t, 0.7, m.Opacity)
}

func TestMarkerPerPointJSON(t *testing.T) {
	in := Marker{
		Size:      8,
		Colors:    []string{"red", "lightgrey"},
		Opacities: []float64{1.0, 0.3},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":8,"color":["red","lightgrey"],"opacity":[1,0.3]}`, string(data))

	var m Marker
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, in.Colors, m.Colors)
	assert.Equal(t, in.Opacities, m.Opacities)
	assert.Empty(t, m.Color)
}

func TestRegressionLineAt(t *testing.T) {
	line := RegressionLine{Slope: -2.5, Intercept: 4}
	assert.Equal(t, 4.0, line.At(0))
	assert.Equal(t, -1.0, line.At(2))
}
