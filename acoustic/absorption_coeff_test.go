package acoustic

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectionCoefficient_RigidWall(t *testing.T) {
	r, err := ReflectionCoefficient(Identity(), 413, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), r)

	a, err := AbsorptionCoefficient(Identity(), 413, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, a)
}

func TestReflectionCoefficient_MatchedTermination(t *testing.T) {
	// 表面インピーダンスが Z0 / cosθ なら無反射
	z0 := 413.0
	theta := math.Pi / 3
	zs := complex(z0/math.Cos(theta), 0)

	tm := NewTransferMatrix(zs, 0, 1, 0)
	r, err := ReflectionCoefficient(tm, z0, theta)
	require.NoError(t, err)
	assert.InDelta(t, 0, cmplx.Abs(r), 1e-12)

	a, err := AbsorptionCoefficient(tm, z0, theta)
	require.NoError(t, err)
	assert.InDelta(t, 1, a, 1e-12)
}

func TestReflectionCoefficient_Singular(t *testing.T) {
	z0 := 413.0
	tm := NewTransferMatrix(1, 0, complex(-1/z0, 0), 1)

	r, err := ReflectionCoefficient(tm, z0, 0)
	assert.ErrorIs(t, err, ErrNumericalSingularity)
	assert.True(t, cmplx.IsNaN(r))

	a, err := AbsorptionCoefficient(tm, z0, 0)
	assert.ErrorIs(t, err, ErrNumericalSingularity)
	assert.True(t, math.IsNaN(a))
}

func TestSurfaceImpedance(t *testing.T) {
	zs, err := SurfaceImpedance(NewTransferMatrix(6+2i, 0, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 3+1i, zs)

	_, err = SurfaceImpedance(Identity())
	assert.ErrorIs(t, err, ErrNumericalSingularity)
}
