package acoustic

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascade_OrderMatters(t *testing.T) {
	a := NewTransferMatrix(1, 2i, 0.5, 1)
	b := NewTransferMatrix(3, 0, 1i, 2)

	ab, err := Cascade([]TransferMatrix{a, b})
	require.NoError(t, err)
	ba, err := Cascade([]TransferMatrix{b, a})
	require.NoError(t, err)

	assert.Equal(t, a.Mul(b).At(1, 0), ab.At(1, 0))
	assert.Equal(t, b.Mul(a).At(1, 0), ba.At(1, 0))
	assert.NotEqual(t, ab.At(1, 0), ba.At(1, 0))
}

func TestCascade_Associative(t *testing.T) {
	a := NewTransferMatrix(1+1i, 2, 3, 4i)
	b := NewTransferMatrix(0.5, 1i, -1, 2)
	c := NewTransferMatrix(2, -1i, 0.25, 1+2i)

	abc, err := Cascade([]TransferMatrix{a, b, c})
	require.NoError(t, err)

	grouped := a.Mul(b.Mul(c))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assertComplexInDelta(t, grouped.At(i, j), abc.At(i, j), 1e-12)
		}
	}
}

func TestCascade_Single(t *testing.T) {
	a := NewTransferMatrix(1, 2, 3, 4)
	got, err := Cascade([]TransferMatrix{a})
	require.NoError(t, err)
	assert.Equal(t, a.At(1, 1), got.At(1, 1))
}

func TestCascade_Errors(t *testing.T) {
	_, err := Cascade(nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Cascade([]TransferMatrix{Identity(), NewTransferMatrix(cmplx.Inf(), 0, 0, 1)})
	assert.ErrorIs(t, err, ErrNumericalSingularity)
}
