package acoustic

import (
	"math"
	"math/cmplx"
)

// これより大きい |z| では漸近展開を使う
const besselSeriesLimit = 25.0

const besselMaxTerms = 300

/*
第1種ベッセル関数 J_n(z) をべき級数で計算する。

	Args:
		n: 次数（0 以上）
		z: 複素数の引数

	Returns:
		J_n(z)

	Notes:
		J_n(z) = sum_k (-1)^k (z/2)^(2k+n) / (k! (k+n)!)
		|z| が大きいと桁落ちするため besselSeriesLimit 以下で使う。
*/
func besselJ(n int, z complex128) complex128 {
	h := z / 2

	term := complex(1, 0)
	for k := 1; k <= n; k++ {
		term *= h / complex(float64(k), 0)
	}
	sum := term

	q := -h * h
	for k := 1; k < besselMaxTerms; k++ {
		term *= q / complex(float64(k*(k+n)), 0)
		sum += term
		if cmplx.Abs(term) <= 1e-17*cmplx.Abs(sum) && float64(k) > cmplx.Abs(h) {
			break
		}
	}

	return sum
}

/*
J_1(z) / J_0(z) を計算する。

	Notes:
		|z| > besselSeriesLimit では Hankel の漸近展開
			J_v(z) ~ sqrt(2/(pi z)) (P_v cos w - Q_v sin w),  w = z - v pi/2 - pi/4
		を使い、cos w で約分した形で比を求める（J_0, J_1 単体はオーバーフローし得る）。
*/
func besselRatio10(z complex128) complex128 {
	if cmplx.Abs(z) <= besselSeriesLimit {
		return besselJ(1, z) / besselJ(0, z)
	}

	p0, q0 := hankelPQ(0, z)
	p1, q1 := hankelPQ(1, z)
	t := tanSaturated(z - math.Pi/4)

	return (p1*t + q1) / (p0 - q0*t)
}

// Hankel 漸近展開の P_v(z), Q_v(z)
func hankelPQ(nu int, z complex128) (complex128, complex128) {
	mu := float64(4 * nu * nu)

	a := complex(1, 0)
	p := complex(1, 0)
	var q complex128
	zk := complex(1, 0)
	for k := 1; k < 60; k++ {
		a *= complex((mu-float64((2*k-1)*(2*k-1)))/float64(8*k), 0)
		zk *= z
		term := a / zk
		switch k % 4 {
		case 1:
			q += term
		case 2:
			p -= term
		case 3:
			q -= term
		case 0:
			p += term
		}
		if cmplx.Abs(term) < 1e-17 {
			break
		}
	}

	return p, q
}

// 虚部が大きいときに cmplx.Tan が Inf/Inf になるのを避ける
func tanSaturated(z complex128) complex128 {
	switch {
	case imag(z) > 20:
		return complex(0, 1)
	case imag(z) < -20:
		return complex(0, -1)
	default:
		return cmplx.Tan(z)
	}
}
