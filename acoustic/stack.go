package acoustic

import (
	"fmt"
	"math"
)

// 吸音構造（入射側から背面側へ並んだ層、入射角、外気条件）
//
// 背面は剛壁とする。作成後は変更されない。
type Stack struct {
	layers []Layer
	theta  float64
	env    Environment
}

/*
吸音構造を作成する。

	Args:
		env: 外気条件
		theta: 入射角, rad
		layers: 入射側から順に並べた層

	Returns:
		吸音構造

	Notes:
		いずれかの層が不正な場合はエラーを返し、部分的な構造は返さない。
*/
func NewStack(env Environment, theta float64, layers ...Layer) (*Stack, error) {
	if env.SoundSpeed() <= 0 || env.AirDensity() <= 0 {
		return nil, fmt.Errorf("%w: environment is not initialised", ErrInvalidParameter)
	}
	if !isFinite(theta) || math.Abs(theta) >= math.Pi/2 {
		return nil, fmt.Errorf("%w: angle of incidence %g rad must be less than 90 degrees", ErrInvalidParameter, theta)
	}
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: stack has no layers", ErrInvalidParameter)
	}

	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%w: layer %d is nil", ErrUnsupportedLayerType, i+1)
		}
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i+1, l.Kind(), err)
		}
	}

	ls := make([]Layer, len(layers))
	copy(ls, layers)

	return &Stack{layers: ls, theta: theta, env: env}, nil
}

// 入射角を度で指定して吸音構造を作成する。
func NewStackDegrees(env Environment, angle float64, layers ...Layer) (*Stack, error) {
	return NewStack(env, angle*math.Pi/180, layers...)
}

// 層（入射側から順）の複製
func (s *Stack) Layers() []Layer {
	ls := make([]Layer, len(s.layers))
	copy(ls, s.layers)
	return ls
}

// 入射角, rad
func (s *Stack) Angle() float64 { return s.theta }

// 外気条件
func (s *Stack) Environment() Environment { return s.env }

// 層の総厚さ, m
func (s *Stack) Thickness() float64 {
	var sum float64
	for _, l := range s.layers {
		sum += l.Thickness()
	}
	return sum
}

/*
周波数 f における各層の応答を計算する。

	Returns:
		入射側から順に並んだ各層の応答
*/
func (s *Stack) Responses(f float64) ([]LayerResponse, error) {
	if err := checkFrequency(f); err != nil {
		return nil, err
	}

	rs := make([]LayerResponse, len(s.layers))
	for i, l := range s.layers {
		r, err := l.Response(f, s.env, s.theta)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s) at %g Hz: %w", i+1, l.Kind(), f, err)
		}
		rs[i] = r
	}
	return rs, nil
}

// 周波数 f における構造全体の伝達行列
func (s *Stack) TransferMatrix(f float64) (TransferMatrix, error) {
	rs, err := s.Responses(f)
	if err != nil {
		return TransferMatrix{}, err
	}

	ts := make([]TransferMatrix, len(rs))
	for i, r := range rs {
		ts[i] = r.T
	}
	return Cascade(ts)
}

// 周波数 f における反射係数
func (s *Stack) Reflection(f float64) (complex128, error) {
	t, err := s.TransferMatrix(f)
	if err != nil {
		return 0, err
	}
	return ReflectionCoefficient(t, s.env.Impedance(), s.theta)
}

/*
周波数 f における吸音率

	Notes:
		[-absorptionTolerance, 1+absorptionTolerance] の外に出た値は ErrNonPhysicalResult とする。
		Delany-Bazley は X = ρ0 f / σ が小さい低周波域で負の吸音率を返すことがある。
*/
func (s *Stack) Absorption(f float64) (float64, error) {
	r, err := s.Reflection(f)
	if err != nil {
		return math.NaN(), err
	}

	a := absorptionFromReflection(r)
	if a < -absorptionTolerance || a > 1+absorptionTolerance {
		return math.NaN(), fmt.Errorf("%w: absorption %g at %g Hz", ErrNonPhysicalResult, a, f)
	}
	return a, nil
}

// 周波数 f における表面インピーダンス（剛壁背後）, Pa s/m
func (s *Stack) SurfaceImpedance(f float64) (complex128, error) {
	t, err := s.TransferMatrix(f)
	if err != nil {
		return 0, err
	}
	return SurfaceImpedance(t)
}
