package acoustic

import (
	"fmt"
	"math"
	"math/cmplx"
)

// 層の種類
type LayerKind string

// 層の種類
const (
	LayerPorous          LayerKind = "porous"
	LayerPerforatedPlate LayerKind = "microperforated_plate"
	LayerPlate           LayerKind = "plate"
	LayerAir             LayerKind = "air"
)

// 文字列から層の種類を取得する。未知の種類は ErrUnsupportedLayerType。
func ParseLayerKind(s string) (LayerKind, error) {
	switch k := LayerKind(s); k {
	case LayerPorous, LayerPerforatedPlate, LayerPlate, LayerAir:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLayerType, s)
	}
}

// 層モデルの計算結果
type LayerResponse struct {
	K complex128     // 波数, rad/m
	Z complex128     // 特性インピーダンス（板・孔あき板は集中インピーダンス）, Pa s/m
	T TransferMatrix // 伝達行列
}

// 吸音構造を構成する1層
//
// Response は周波数ごとに呼ばれる純粋関数で、層の状態を変更しない。
type Layer interface {
	Kind() LayerKind
	Thickness() float64
	Response(f float64, env Environment, theta float64) (LayerResponse, error)
	validate() error
}

// これより減衰の大きい層は伝達行列を cos(kz l) で正規化する
const propagationScaleLimit = 20.0

/*
入射角に応じた伝搬型の伝達行列を作成する。

	Args:
		k: 層内の波数, rad/m
		z: 層の特性インピーダンス, Pa s/m
		kx: 入射角による水平方向の波数（全層で共通）, rad/m
		l: 層の厚さ, m

	Returns:
		伝達行列

	Notes:
		kz = sqrt(k^2 - kx^2)
		T = [[cos(kz l), j z (k/kz) sin(kz l)], [(j/z)(kz/k) sin(kz l), cos(kz l)]]
		|Im(kz l)| が propagationScaleLimit を超える厚い層では cos/sin が溢れるため、
		T / cos(kz l) = [[1, j z (k/kz) tan(kz l)], [(j/z)(kz/k) tan(kz l), 1]] を返す。
		定数倍は反射係数と表面インピーダンスを変えない。
*/
func propagationMatrix(k, z, kx complex128, l float64) (TransferMatrix, error) {
	kz := cmplx.Sqrt(k*k - kx*kx)
	if k == 0 || kz == 0 || z == 0 {
		return TransferMatrix{}, fmt.Errorf("%w: k=%v kz=%v z=%v", ErrNumericalSingularity, k, kz, z)
	}

	kzl := kz * complex(l, 0)

	var c, s complex128
	if math.Abs(imag(kzl)) > propagationScaleLimit {
		c, s = 1, tanSaturated(kzl)
	} else {
		c, s = cmplx.Cos(kzl), cmplx.Sin(kzl)
	}

	t := NewTransferMatrix(
		c, 1i*z*(k/kz)*s,
		(1i/z)*(kz/k)*s, c,
	)
	if !t.IsFinite() {
		return TransferMatrix{}, fmt.Errorf("%w: non-finite transfer matrix (kz l=%v)", ErrNumericalSingularity, kzl)
	}

	return t, nil
}

// 入射角 theta における水平方向の波数 kx = (omega/c) sin(theta)
func horizontalWavenumber(f float64, env Environment, theta float64) complex128 {
	return complex(angularFrequency(f)/env.SoundSpeed()*math.Sin(theta), 0)
}

// 角周波数, rad/s
func angularFrequency(f float64) float64 {
	return 2 * math.Pi * f
}

func checkFrequency(f float64) error {
	if !isFinite(f) || f <= 0 {
		return fmt.Errorf("%w: frequency %g Hz must be positive", ErrInvalidParameter, f)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return fmt.Errorf("%w: %s %g must be positive", ErrInvalidParameter, name, v)
	}
	return nil
}
