package acoustic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	points := []FrequencyPoint{
		{Frequency: 100, Absorption: 0.2},
		{Frequency: 200, Absorption: math.NaN(), Singular: true},
		{Frequency: 300, Absorption: 0.9},
		{Frequency: 400, Absorption: 0.4},
	}

	s := Summarize(points)
	assert.Equal(t, FrequencyPoint{Frequency: 300, Absorption: 0.9}, s.Peak)
	assert.InDelta(t, 0.5, s.Mean, 1e-15)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 1, s.Singular)
}

func TestSummarize_AllSingular(t *testing.T) {
	s := Summarize([]FrequencyPoint{{Frequency: 1, Absorption: math.NaN(), Singular: true}})
	assert.Equal(t, FrequencyPoint{}, s.Peak)
	assert.Equal(t, 0.0, s.Mean)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 1, s.Singular)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestSummarize_PorousPeaksAtHighFrequency(t *testing.T) {
	sw := newSweep(t, FrequencyRange{Min: 50, Max: 10000, Step: 50}, glassWool(), Air{L: 0.05})

	s := Summarize(sw.Points())
	assert.Equal(t, 0, s.Singular)
	assert.Greater(t, s.Peak.Frequency, 500)
	assert.Greater(t, s.Peak.Absorption, 0.9)
	assert.LessOrEqual(t, s.Peak.Absorption, 1.0)
}
