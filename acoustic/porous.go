package acoustic

import (
	"fmt"
	"math"
	"math/cmplx"
)

// 多孔質材料のモデル
type PorousModel string

// 多孔質材料のモデル
const (
	PorousJAC          PorousModel = "jac"           // Johnson-Champoux-Allard
	PorousDelanyBazley PorousModel = "delany_bazley" // Delany-Bazley の実験式
)

// 文字列から多孔質モデルを取得する。空文字は JAC。
func ParsePorousModel(s string) (PorousModel, error) {
	switch m := PorousModel(s); m {
	case "":
		return PorousJAC, nil
	case PorousJAC, PorousDelanyBazley:
		return m, nil
	default:
		return "", fmt.Errorf("%w: porous model %q", ErrUnsupportedLayerType, s)
	}
}

// 多孔質吸音材の層
type Porous struct {
	L        float64     // 厚さ, m
	Sigma    float64     // 流れ抵抗率, N s/m4
	Phi      float64     // 多孔度, -
	AlphaInf float64     // 迷路度（トーチュオシティ）, -
	Model    PorousModel // 空の場合は JAC
}

func (p Porous) Kind() LayerKind    { return LayerPorous }
func (p Porous) Thickness() float64 { return p.L }

func (p Porous) model() PorousModel {
	if p.Model == "" {
		return PorousJAC
	}
	return p.Model
}

/*
	Notes:
		Delany-Bazley は流れ抵抗率のみを使うため、多孔度と迷路度は JAC の場合のみ検査する。
*/
func (p Porous) validate() error {
	if err := checkPositive("porous thickness", p.L); err != nil {
		return err
	}
	if err := checkPositive("flow resistivity", p.Sigma); err != nil {
		return err
	}

	switch p.model() {
	case PorousJAC:
		if !isFinite(p.Phi) || p.Phi <= 0 || p.Phi > 1 {
			return fmt.Errorf("%w: porosity %g must be in (0, 1]", ErrInvalidParameter, p.Phi)
		}
		if err := checkPositive("tortuosity", p.AlphaInf); err != nil {
			return err
		}
	case PorousDelanyBazley:
	default:
		return fmt.Errorf("%w: porous model %q", ErrUnsupportedLayerType, p.Model)
	}

	return nil
}

func (p Porous) Response(f float64, env Environment, theta float64) (LayerResponse, error) {
	var k, z complex128
	switch p.model() {
	case PorousJAC:
		k, z = p.jac(f, env)
	case PorousDelanyBazley:
		k, z = p.delanyBazley(f, env)
	default:
		return LayerResponse{}, fmt.Errorf("%w: porous model %q", ErrUnsupportedLayerType, p.Model)
	}

	t, err := propagationMatrix(k, z, horizontalWavenumber(f, env, theta), p.L)
	if err != nil {
		return LayerResponse{}, err
	}

	return LayerResponse{K: k, Z: z, T: t}, nil
}

/*
JAC モデルによる波数と特性インピーダンス

	Args:
		f: 周波数, Hz
		env: 外気条件

	Returns:
		以下のタプル
			(1) 波数, rad/m
			(2) 特性インピーダンス, Pa s/m

	Notes:
		粘性特性長 Λ = sqrt(8 η α∞ / (σ φ))、熱的特性長 Λ' = 2Λ とする。
		等価密度 ρp = ρ0 α∞ (1 - j G1 sqrt(1 + j G2)) / φ
		等価体積弾性率 Kp = γ P0 / φ / (γ - (γ - 1) (1 - j G1' sqrt(1 + j G2'))^-1)
*/
func (p Porous) jac(f float64, env Environment) (complex128, complex128) {
	omega := angularFrequency(f)
	rho0 := env.AirDensity()
	eta := env.Viscosity()
	pr := env.Prandtl()

	lv := math.Sqrt(8 * eta * p.AlphaInf / (p.Sigma * p.Phi))
	lt := 2 * lv

	g1 := p.Sigma * p.Phi / (p.AlphaInf * rho0 * omega)
	g2 := 4 * p.AlphaInf * p.AlphaInf * rho0 * eta * omega / math.Pow(p.Sigma*p.Phi*lv, 2)
	g1t := 8 * eta / (rho0 * pr * lt * lt * omega)
	g2t := rho0 * pr * lt * lt * omega / (16 * eta)

	rhoP := complex(rho0*p.AlphaInf/p.Phi, 0) * (1 - complex(0, g1)*cmplx.Sqrt(complex(1, g2)))

	gamma := complex(HeatCapacityRatio, 0)
	kP := complex(HeatCapacityRatio*env.Pressure()/p.Phi, 0) /
		(gamma - (gamma-1)/(1-complex(0, g1t)*cmplx.Sqrt(complex(1, g2t))))

	k := complex(omega, 0) * cmplx.Sqrt(rhoP/kP)
	z := cmplx.Sqrt(rhoP * kP)

	return k, z
}

/*
Delany-Bazley モデルによる波数と特性インピーダンス

	Notes:
		X = ρ0 f / σ
		k = ω/c (1 + 0.0978 X^-0.7 - j 0.189 X^-0.595)
		Z = ρ0 c (1 + 0.0571 X^-0.754 - j 0.087 X^-0.732)
*/
func (p Porous) delanyBazley(f float64, env Environment) (complex128, complex128) {
	rho0 := env.AirDensity()
	c := env.SoundSpeed()
	x := rho0 * f / p.Sigma

	k := complex(angularFrequency(f)/c, 0) *
		complex(1+0.0978*math.Pow(x, -0.7), -0.189*math.Pow(x, -0.595))
	z := complex(rho0*c, 0) *
		complex(1+0.0571*math.Pow(x, -0.754), -0.087*math.Pow(x, -0.732))

	return k, z
}
