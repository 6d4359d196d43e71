package acoustic

import (
	"fmt"
	"math"
	"math/cmplx"
)

// 分母がこの相対値以下のときは特異とみなす
const singularityTolerance = 1e-12

// 丸め誤差として許容する吸音率の範囲外の幅
const absorptionTolerance = 1e-12

/*
剛壁背後の構造の反射係数を計算する。

	Args:
		t: 構造全体の伝達行列
		z0: 空気の特性インピーダンス, Pa s/m
		theta: 入射角, rad

	Returns:
		反射係数

	Notes:
		R = (T11 cosθ - Z0 T21) / (T11 cosθ + Z0 T21)
*/
func ReflectionCoefficient(t TransferMatrix, z0, theta float64) (complex128, error) {
	a := t.At(0, 0) * complex(math.Cos(theta), 0)
	b := complex(z0, 0) * t.At(1, 0)

	num := a - b
	den := a + b

	scale := cmplx.Abs(a) + cmplx.Abs(b)
	if den == 0 || cmplx.IsNaN(den) || cmplx.IsInf(den) || cmplx.Abs(den) <= singularityTolerance*scale {
		return cmplx.NaN(), fmt.Errorf("%w: reflection denominator %v", ErrNumericalSingularity, den)
	}

	return num / den, nil
}

/*
吸音率を計算する。

	Returns:
		吸音率 α = 1 - |R|^2
*/
func AbsorptionCoefficient(t TransferMatrix, z0, theta float64) (float64, error) {
	r, err := ReflectionCoefficient(t, z0, theta)
	if err != nil {
		return math.NaN(), err
	}
	return absorptionFromReflection(r), nil
}

func absorptionFromReflection(r complex128) float64 {
	a := cmplx.Abs(r)
	return 1 - a*a
}

// 剛壁背後の表面インピーダンス Zs = T11 / T21, Pa s/m
func SurfaceImpedance(t TransferMatrix) (complex128, error) {
	t21 := t.At(1, 0)
	if t21 == 0 {
		return cmplx.Inf(), fmt.Errorf("%w: T21 is zero", ErrNumericalSingularity)
	}
	return t.At(0, 0) / t21, nil
}
