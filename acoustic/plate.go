package acoustic

import (
	"fmt"
	"math"
)

// 振動する弾性板の層
type Plate struct {
	L   float64 // 板厚, m
	Rho float64 // 密度, kg/m3
	E   float64 // ヤング率, Pa
	Nu  float64 // ポアソン比, -
	Eta float64 // 損失係数, -
}

func (p Plate) Kind() LayerKind    { return LayerPlate }
func (p Plate) Thickness() float64 { return p.L }

func (p Plate) validate() error {
	if err := checkPositive("plate thickness", p.L); err != nil {
		return err
	}
	if err := checkPositive("plate density", p.Rho); err != nil {
		return err
	}
	if err := checkPositive("Young's modulus", p.E); err != nil {
		return err
	}
	if !isFinite(p.Nu) || p.Nu <= -1 || p.Nu > 0.5 {
		return fmt.Errorf("%w: Poisson's ratio %g must be in (-1, 0.5]", ErrInvalidParameter, p.Nu)
	}
	if !isFinite(p.Eta) || p.Eta < 0 {
		return fmt.Errorf("%w: loss factor %g must not be negative", ErrInvalidParameter, p.Eta)
	}
	return nil
}

// 面密度 m = ρ L, kg/m2
func (p Plate) SurfaceMass() float64 {
	return p.Rho * p.L
}

// 曲げ剛性 D = E L^3 / (12 (1 - ν^2)), N m
func (p Plate) BendingStiffness() float64 {
	return p.E * p.L * p.L * p.L / (12 * (1 - p.Nu*p.Nu))
}

// コインシデンス限界周波数 fc = c^2 / (2π) sqrt(m / D), Hz
func (p Plate) CriticalFrequency(env Environment) float64 {
	c := env.SoundSpeed()
	return c * c / (2 * math.Pi) * math.Sqrt(p.SurfaceMass()/p.BendingStiffness())
}

/*
	Notes:
		Z = j m ω (1 - (f/fc)^2 (1 + jη) sin^4 θ)
*/
func (p Plate) Response(f float64, env Environment, theta float64) (LayerResponse, error) {
	omega := angularFrequency(f)
	m := p.SurfaceMass()
	r := f / p.CriticalFrequency(env)
	s4 := math.Pow(math.Sin(theta), 4)

	z := complex(0, m*omega) * (1 - complex(r*r*s4, 0)*complex(1, p.Eta))

	return LayerResponse{
		K: complex(omega/env.SoundSpeed(), 0),
		Z: z,
		T: LumpedTransferMatrix(z),
	}, nil
}
