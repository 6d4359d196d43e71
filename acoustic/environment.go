package acoustic

import (
	"fmt"
	"math"
)

// 外気条件と、そこから求まる空気の物性値
type Environment struct {
	temperature float64 // 空気温度, degree C
	pressure    float64 // 大気圧, Pa
	density     float64 // 空気の密度, kg/m3
	soundSpeed  float64 // 音速, m/s
	viscosity   float64 // 粘性係数, Pa s
	prandtl     float64 // プラントル数, -
}

/*
空気温度と大気圧から外気条件を作成する。

	Args:
		temperature: 空気温度, degree C
		pressure: 大気圧, Pa

	Returns:
		外気条件

	Notes:
		絶対温度が 0 K 以下、または大気圧が 0 以下の場合は ErrInvalidParameter を返す。
*/
func NewEnvironment(temperature, pressure float64) (Environment, error) {
	if !isFinite(temperature) || !isFinite(pressure) {
		return Environment{}, fmt.Errorf("%w: temperature and pressure must be finite", ErrInvalidParameter)
	}

	t := temperature + ZeroCelsius
	if t <= 0 {
		return Environment{}, fmt.Errorf("%w: absolute temperature %g K is not positive", ErrInvalidParameter, t)
	}
	if pressure <= 0 {
		return Environment{}, fmt.Errorf("%w: pressure %g Pa is not positive", ErrInvalidParameter, pressure)
	}

	mu := viscosity(t)

	return Environment{
		temperature: temperature,
		pressure:    pressure,
		density:     airDensity(t, pressure),
		soundSpeed:  soundSpeed(temperature),
		viscosity:   mu,
		prandtl:     prandtl(mu),
	}, nil
}

// 標準状態（20 degree C, 101325 Pa）
func StandardEnvironment() Environment {
	env, err := NewEnvironment(20.0, 101325.0)
	if err != nil {
		panic(err)
	}
	return env
}

// 空気温度, degree C
func (e Environment) Temperature() float64 { return e.temperature }

// 大気圧, Pa
func (e Environment) Pressure() float64 { return e.pressure }

// 空気の密度, kg/m3
func (e Environment) AirDensity() float64 { return e.density }

// 音速, m/s
func (e Environment) SoundSpeed() float64 { return e.soundSpeed }

// 粘性係数, Pa s
func (e Environment) Viscosity() float64 { return e.viscosity }

// プラントル数, -
func (e Environment) Prandtl() float64 { return e.prandtl }

// 空気の特性インピーダンス, Pa s/m
func (e Environment) Impedance() float64 {
	return e.density * e.soundSpeed
}

/*
空気の密度を計算する。

	Args:
		t: 絶対温度, K
		p: 大気圧, Pa

	Returns:
		空気の密度, kg/m3
*/
func airDensity(t, p float64) float64 {
	return p / (SpecificGasConstant * t)
}

/*
音速を計算する。

	Args:
		theta: 空気温度, degree C

	Returns:
		音速, m/s
*/
func soundSpeed(theta float64) float64 {
	return SoundSpeedAt0C * math.Sqrt(1.0+theta/ZeroCelsius)
}

/*
粘性係数を計算する。

	Args:
		t: 絶対温度, K

	Returns:
		粘性係数, Pa s

	Notes:
		Sutherland の式
*/
func viscosity(t float64) float64 {
	return SutherlandCoefficient * math.Pow(t, 1.5) / (t + SutherlandTemperature)
}

// プラントル数 Pr = mu cp / kappa
func prandtl(mu float64) float64 {
	return mu * SpecificHeat / ThermalConductivity
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
