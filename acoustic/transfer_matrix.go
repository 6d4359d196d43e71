package acoustic

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// 伝達行列（四端子行列）
//
// 層の前面と背面の音圧・粒子速度を関係付ける 2x2 の複素行列。
// 作成後は変更されず、積は常に新しい行列として返す。
// mat.CDense は要素の保持にのみ使い、積と行列式は要素ごとに計算する。
type TransferMatrix struct {
	m *mat.CDense
}

/*
	Args:
		a11, a12, a21, a22: 行列の各要素
*/
func NewTransferMatrix(a11, a12, a21, a22 complex128) TransferMatrix {
	return TransferMatrix{
		m: mat.NewCDense(2, 2, []complex128{
			a11, a12,
			a21, a22,
		}),
	}
}

// 単位行列
func Identity() TransferMatrix {
	return NewTransferMatrix(1, 0, 0, 1)
}

// 集中インピーダンス z の層（孔あき板、板振動）の伝達行列
func LumpedTransferMatrix(z complex128) TransferMatrix {
	return NewTransferMatrix(1, z, 0, 1)
}

// i 行 j 列の要素
func (t TransferMatrix) At(i, j int) complex128 {
	return t.m.At(i, j)
}

/*
行列の積 t * u を計算する。

	Notes:
		積は可換ではない。t が音の入射側、u が背面側の層。
*/
func (t TransferMatrix) Mul(u TransferMatrix) TransferMatrix {
	var a [2][2]complex128
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			a[i][j] = t.m.At(i, 0)*u.m.At(0, j) + t.m.At(i, 1)*u.m.At(1, j)
		}
	}
	return NewTransferMatrix(a[0][0], a[0][1], a[1][0], a[1][1])
}

// すべての要素が有限かどうか
func (t TransferMatrix) IsFinite() bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := t.m.At(i, j)
			if cmplx.IsNaN(v) || math.IsInf(real(v), 0) || math.IsInf(imag(v), 0) {
				return false
			}
		}
	}
	return true
}

// 行列式
func (t TransferMatrix) Det() complex128 {
	return t.m.At(0, 0)*t.m.At(1, 1) - t.m.At(0, 1)*t.m.At(1, 0)
}
