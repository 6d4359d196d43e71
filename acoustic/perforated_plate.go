package acoustic

import (
	"fmt"
	"math"
	"math/cmplx"
)

// 微細穿孔板（MPP）の層
type PerforatedPlate struct {
	L float64 // 板厚, m
	D float64 // 孔径, m
	A float64 // 孔の間隔, m
}

func (p PerforatedPlate) Kind() LayerKind    { return LayerPerforatedPlate }
func (p PerforatedPlate) Thickness() float64 { return p.L }

func (p PerforatedPlate) validate() error {
	if err := checkPositive("plate thickness", p.L); err != nil {
		return err
	}
	if err := checkPositive("hole diameter", p.D); err != nil {
		return err
	}
	if err := checkPositive("hole spacing", p.A); err != nil {
		return err
	}
	if p.D >= p.A {
		return fmt.Errorf("%w: hole diameter %g m must be smaller than hole spacing %g m", ErrInvalidParameter, p.D, p.A)
	}
	return nil
}

// 開口率 φ = (π/4)(d/a)^2
func (p PerforatedPlate) Porosity() float64 {
	return math.Pi / 4 * (p.D / p.A) * (p.D / p.A)
}

func (p PerforatedPlate) Response(f float64, env Environment, theta float64) (LayerResponse, error) {
	z := p.impedance(f, env)
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return LayerResponse{}, fmt.Errorf("%w: perforated plate impedance %v at %g Hz", ErrNumericalSingularity, z, f)
	}

	return LayerResponse{
		K: complex(angularFrequency(f)/env.SoundSpeed(), 0),
		Z: z,
		T: LumpedTransferMatrix(z),
	}, nil
}

/*
Maa のモデルによる微細穿孔板のインピーダンス

	Args:
		f: 周波数, Hz
		env: 外気条件

	Returns:
		インピーダンス, Pa s/m

	Notes:
		s = d sqrt(ρ0 ω / (4η))、x = s sqrt(-j)
		Z = sqrt(2 ρ0 ω η) / (2φ)
		  + j (ω ρ0 / φ) (0.85 d / F(e) + t [1 - 2 J1(x) / (x J0(x))]^-1)
		F(e) は Fok 関数、e = 1.1284 sqrt(φ)
*/
func (p PerforatedPlate) impedance(f float64, env Environment) complex128 {
	omega := angularFrequency(f)
	rho0 := env.AirDensity()
	eta := env.Viscosity()

	phi := p.Porosity()
	s := p.D * math.Sqrt(rho0*omega/(4*eta))
	x := complex(s, 0) * cmplx.Sqrt(-1i)

	inner := 1 / (1 - 2*besselRatio10(x)/x)
	endCorrection := complex(0.85*p.D/fok(1.1284*math.Sqrt(phi)), 0)

	resistance := math.Sqrt(2*rho0*omega*eta) / (2 * phi)
	mass := complex(0, omega*rho0/phi)

	return complex(resistance, 0) + mass*(endCorrection+complex(p.L, 0)*inner)
}

// Fok 関数 F(e)
func fok(e float64) float64 {
	e2 := e * e
	e3 := e2 * e
	e5 := e3 * e2
	e6 := e3 * e3
	e7 := e6 * e
	e8 := e7 * e
	return 1 / (1 - 1.4092*e + 0.33818*e3 + 0.06793*e5 - 0.02287*e6 + 0.03015*e7 - 0.01641*e8)
}
