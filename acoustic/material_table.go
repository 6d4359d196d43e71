package acoustic

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

//go:embed data/materials.csv
var defaultMaterials []byte

// 板材料の物性値（材料表の1行）
type Material struct {
	Name          string  `csv:"Material"`
	Density       float64 `csv:"density"`        // 密度, kg/m3
	YoungsModulus float64 `csv:"youngs_modulus"` // ヤング率, Pa
	PoissonRatio  float64 `csv:"poisson_ratio"`  // ポアソン比, -
	LossFactor    float64 `csv:"loss_factor"`    // 損失係数, -
}

// 厚さ l の板の層を作成する。
func (m Material) Plate(l float64) Plate {
	return Plate{L: l, Rho: m.Density, E: m.YoungsModulus, Nu: m.PoissonRatio, Eta: m.LossFactor}
}

// 材料表
type MaterialTable struct {
	materials map[string]Material
}

/*
セミコロン区切りの材料表を読み込む。

	Args:
		r: 見出し行 Material;density;youngs_modulus;poisson_ratio;loss_factor をもつ CSV

	Returns:
		材料表

	Notes:
		材料名は大文字小文字を区別しない。同じ材料名が複数ある場合はエラー。
*/
func LoadMaterialTable(r io.Reader) (*MaterialTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	var rows []*Material
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("read material table: %w", err)
	}

	t := &MaterialTable{materials: make(map[string]Material, len(rows))}
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: material without a name", ErrInvalidParameter)
		}
		key := strings.ToLower(name)
		if _, ok := t.materials[key]; ok {
			return nil, fmt.Errorf("%w: duplicate material %q", ErrInvalidParameter, name)
		}
		m := *row
		m.Name = name
		t.materials[key] = m
	}

	return t, nil
}

// 組み込みの材料表
func DefaultMaterialTable() *MaterialTable {
	t, err := LoadMaterialTable(bytes.NewReader(defaultMaterials))
	if err != nil {
		panic(err)
	}
	return t
}

// 材料名から物性値を取得する。
func (t *MaterialTable) Lookup(name string) (Material, error) {
	m, ok := t.materials[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return m, nil
}

// 材料名の一覧（昇順）
func (t *MaterialTable) Names() []string {
	names := make([]string, 0, len(t.materials))
	for _, m := range t.materials {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}
