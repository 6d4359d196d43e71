package acoustic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMaterialTable(t *testing.T) {
	table := DefaultMaterialTable()

	m, err := table.Lookup("Plywood")
	require.NoError(t, err)
	assert.Equal(t, Material{Name: "Plywood", Density: 600, YoungsModulus: 4.1e9, PoissonRatio: 0.3, LossFactor: 0.02}, m)

	// 大文字小文字・前後の空白を区別しない
	m, err = table.Lookup("  gypsum BOARD ")
	require.NoError(t, err)
	assert.Equal(t, "Gypsum board", m.Name)
	assert.Equal(t, 800.0, m.Density)

	names := table.Names()
	assert.Len(t, names, 8)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "Steel")
}

func TestMaterialTable_Unknown(t *testing.T) {
	_, err := DefaultMaterialTable().Lookup("unobtainium")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	assert.Contains(t, err.Error(), "unobtainium")
}

func TestMaterial_Plate(t *testing.T) {
	m, err := DefaultMaterialTable().Lookup("steel")
	require.NoError(t, err)

	p := m.Plate(0.002)
	assert.Equal(t, Plate{L: 0.002, Rho: 7850, E: 2.1e11, Nu: 0.3, Eta: 0.0001}, p)
	assert.NoError(t, p.validate())
	assert.InDelta(t, 15.7, p.SurfaceMass(), 1e-12)
}

func TestLoadMaterialTable(t *testing.T) {
	src := "Material;density;youngs_modulus;poisson_ratio;loss_factor\n" +
		"Cork; 240; 3.0e7; 0.0; 0.1\n" +
		"Rubber;1100;5.0e6;0.49;0.3\n"

	table, err := LoadMaterialTable(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"Cork", "Rubber"}, table.Names())

	m, err := table.Lookup("cork")
	require.NoError(t, err)
	assert.Equal(t, 240.0, m.Density)
	assert.Equal(t, 0.1, m.LossFactor)
}

func TestLoadMaterialTable_Invalid(t *testing.T) {
	cases := map[string]string{
		"duplicate": "Material;density;youngs_modulus;poisson_ratio;loss_factor\n" +
			"Steel;7850;2.1e11;0.3;0.0001\n" +
			"steel;7800;2.0e11;0.3;0.0001\n",
		"missing name": "Material;density;youngs_modulus;poisson_ratio;loss_factor\n" +
			";7850;2.1e11;0.3;0.0001\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadMaterialTable(strings.NewReader(src))
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}

	_, err := LoadMaterialTable(strings.NewReader("Material;density\nSteel;heavy\n"))
	assert.Error(t, err)
}
