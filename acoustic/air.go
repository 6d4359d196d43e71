package acoustic

// 空気層
type Air struct {
	L float64 // 厚さ, m
}

func (a Air) Kind() LayerKind    { return LayerAir }
func (a Air) Thickness() float64 { return a.L }

func (a Air) validate() error {
	return checkPositive("air gap thickness", a.L)
}

// k = ω / c、Z = ρ0 c
func (a Air) Response(f float64, env Environment, theta float64) (LayerResponse, error) {
	k := complex(angularFrequency(f)/env.SoundSpeed(), 0)
	z := complex(env.Impedance(), 0)

	t, err := propagationMatrix(k, z, horizontalWavenumber(f, env, theta), a.L)
	if err != nil {
		return LayerResponse{}, err
	}

	return LayerResponse{K: k, Z: z, T: t}, nil
}
