package acoustic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func linearPoints(min, max int) []FrequencyPoint {
	var points []FrequencyPoint
	for f := min; f < max; f++ {
		points = append(points, FrequencyPoint{Frequency: f, Absorption: float64(f) / float64(max)})
	}
	return points
}

func TestParseBandKind(t *testing.T) {
	k, err := ParseBandKind("octave")
	require.NoError(t, err)
	assert.Equal(t, BandOctave, k)

	k, err = ParseBandKind("third")
	require.NoError(t, err)
	assert.Equal(t, BandThirdOctave, k)

	_, err = ParseBandKind("sixth")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBandKind_Bands(t *testing.T) {
	octave := BandOctave.Bands()
	require.Len(t, octave, 10)
	assert.Equal(t, 31.5, octave[0].Center)
	assert.Equal(t, 16000.0, octave[9].Center)

	// 1 kHz 帯域
	assert.InDelta(t, 1000/math.Pow(10, 0.15), octave[5].Lower, 1e-9)
	assert.InDelta(t, 1000*math.Pow(10, 0.15), octave[5].Upper, 1e-9)

	third := BandThirdOctave.Bands()
	require.Len(t, third, 30)
	assert.Equal(t, 25.0, third[0].Center)
	assert.Equal(t, 1000.0, third[16].Center)
	assert.InDelta(t, 1000/math.Pow(10, 0.05), third[16].Lower, 1e-9)

	for _, bands := range [][]Band{octave, third} {
		for i, b := range bands {
			// 呼び中心は帯域内にある
			assert.Less(t, b.Lower, b.Center)
			assert.Greater(t, b.Upper, b.Center)
			if i > 0 {
				assert.InEpsilon(t, bands[i-1].Upper, b.Lower, 1e-12)
			}
		}
	}
}

func TestAggregateBands_MeanWithinBand(t *testing.T) {
	points := linearPoints(1, 20000)

	for _, kind := range []BandKind{BandOctave, BandThirdOctave} {
		for _, b := range AggregateBands(kind, points) {
			require.Greater(t, b.Count, 0, "band %g", b.Center)

			var values []float64
			for _, p := range points {
				f := float64(p.Frequency)
				if f >= b.Lower && f <= b.Upper {
					values = append(values, p.Absorption)
				}
			}
			assert.Len(t, values, b.Count)
			assert.GreaterOrEqual(t, b.Mean, floats.Min(values))
			assert.LessOrEqual(t, b.Mean, floats.Max(values))
			assert.InDelta(t, floats.Sum(values)/float64(len(values)), b.Mean, 1e-12)
		}
	}
}

func TestAggregateBands_EmptyBandIsZero(t *testing.T) {
	points := []FrequencyPoint{{Frequency: 1000, Absorption: 0.8}}

	bands := OctaveBands(points)
	for _, b := range bands {
		if b.Center == 1000 {
			assert.Equal(t, 1, b.Count)
			assert.Equal(t, 0.8, b.Mean)
			continue
		}
		assert.Equal(t, 0, b.Count)
		assert.Equal(t, 0.0, b.Mean)
	}

	for _, b := range ThirdOctaveBands(nil) {
		assert.Equal(t, 0.0, b.Mean)
	}
}

func TestAggregateBands_SkipsSingular(t *testing.T) {
	points := []FrequencyPoint{
		{Frequency: 990, Absorption: 0.4},
		{Frequency: 1000, Absorption: math.NaN(), Singular: true},
		{Frequency: 1010, Absorption: 0.6},
	}

	for _, b := range ThirdOctaveBands(points) {
		if b.Center != 1000 {
			continue
		}
		assert.Equal(t, 2, b.Count)
		assert.InDelta(t, 0.5, b.Mean, 1e-15)
	}
}

func TestAggregateBands_FromSweep(t *testing.T) {
	sw := newSweep(t, DefaultFrequencyRange(), glassWool(), Air{L: 0.05})
	points := sw.PointsParallel(4)

	bands := OctaveBands(points)
	for _, b := range bands {
		assert.GreaterOrEqual(t, b.Mean, 0.0)
		assert.LessOrEqual(t, b.Mean, 1.0)
	}
	// 多孔質材は高域ほどよく吸音する
	assert.Greater(t, bands[7].Mean, bands[1].Mean)
}
