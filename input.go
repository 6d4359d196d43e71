package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"absorption_calc/acoustic"
)

// 吸音構造の計算条件JSONファイル
type stackFile struct {
	Temperature *float64       `json:"temperature"` // 空気温度, degree C（省略時 20）
	Pressure    *float64       `json:"pressure"`    // 大気圧, Pa（省略時 101325）
	Angle       float64        `json:"angle"`       // 入射角, degree
	Frequency   *frequencySpec `json:"frequency"`   // 省略時 1 - 20000 Hz、1 Hz 刻み
	Layers      []layerSpec    `json:"layers"`      // 入射側から順
}

type frequencySpec struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// 層の計算条件
//
// 省略可能な値はポインタで受け取り、省略時は既定値を使う。
type layerSpec struct {
	Type      string  `json:"type"`
	Thickness float64 `json:"thickness"` // 厚さ, m

	// porous
	FlowResistivity float64  `json:"flow_resistivity"` // 流れ抵抗率, N s/m4
	Porosity        *float64 `json:"porosity"`         // 多孔度, -（省略時 0.98）
	Tortuosity      *float64 `json:"tortuosity"`       // 迷路度, -（省略時 1.4）
	Model           string   `json:"model"`            // jac | delany_bazley

	// microperforated_plate
	HoleDiameter float64 `json:"hole_diameter"` // 孔径, m
	HoleSpacing  float64 `json:"hole_spacing"`  // 孔の間隔, m

	// plate
	Material      string   `json:"material"`       // 材料表の材料名
	Density       *float64 `json:"density"`        // 密度, kg/m3
	YoungsModulus *float64 `json:"youngs_modulus"` // ヤング率, Pa（省略時 4.1e9）
	PoissonRatio  *float64 `json:"poisson_ratio"`  // ポアソン比, -（省略時 0.3）
	LossFactor    *float64 `json:"loss_factor"`    // 損失係数, -（省略時 0.1）
}

const (
	defaultTemperature   = 20.0
	defaultPressure      = 101325.0
	defaultPorosity      = 0.98
	defaultTortuosity    = 1.4
	defaultYoungsModulus = 4.1e9
	defaultPoissonRatio  = 0.3
	defaultLossFactor    = 0.1
)

// 計算条件JSONファイルを開く。http で始まる場合は URL から取得する。
func openInput(path string) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		resp, err := http.Get(path)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", path, resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(path)
}

/*
計算条件JSONを読み込む。

	Args:
		r: 計算条件JSON
		materials: 板の材料名を解決する材料表

	Returns:
		以下のタプル
			(1) 吸音構造
			(2) 周波数範囲

	Notes:
		未知のキーはエラーとする。
*/
func readStack(r io.Reader, materials *acoustic.MaterialTable) (*acoustic.Stack, acoustic.FrequencyRange, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var sf stackFile
	if err := dec.Decode(&sf); err != nil {
		return nil, acoustic.FrequencyRange{}, fmt.Errorf("decode stack file: %w", err)
	}

	return sf.build(materials)
}

func (sf stackFile) build(materials *acoustic.MaterialTable) (*acoustic.Stack, acoustic.FrequencyRange, error) {
	env, err := acoustic.NewEnvironment(
		valueOr(sf.Temperature, defaultTemperature),
		valueOr(sf.Pressure, defaultPressure),
	)
	if err != nil {
		return nil, acoustic.FrequencyRange{}, err
	}

	layers := make([]acoustic.Layer, len(sf.Layers))
	for i, ls := range sf.Layers {
		l, err := ls.layer(materials)
		if err != nil {
			return nil, acoustic.FrequencyRange{}, fmt.Errorf("layer %d: %w", i+1, err)
		}
		layers[i] = l
	}

	stack, err := acoustic.NewStackDegrees(env, sf.Angle, layers...)
	if err != nil {
		return nil, acoustic.FrequencyRange{}, err
	}

	rng := acoustic.DefaultFrequencyRange()
	if sf.Frequency != nil {
		rng = acoustic.FrequencyRange{Min: sf.Frequency.Min, Max: sf.Frequency.Max, Step: sf.Frequency.Step}
	}

	return stack, rng, nil
}

// 層の計算条件から層を作成する。
func (ls layerSpec) layer(materials *acoustic.MaterialTable) (acoustic.Layer, error) {
	kind, err := acoustic.ParseLayerKind(ls.Type)
	if err != nil {
		return nil, err
	}

	switch kind {
	case acoustic.LayerPorous:
		model, err := acoustic.ParsePorousModel(ls.Model)
		if err != nil {
			return nil, err
		}
		return acoustic.Porous{
			L:        ls.Thickness,
			Sigma:    ls.FlowResistivity,
			Phi:      valueOr(ls.Porosity, defaultPorosity),
			AlphaInf: valueOr(ls.Tortuosity, defaultTortuosity),
			Model:    model,
		}, nil

	case acoustic.LayerPerforatedPlate:
		return acoustic.PerforatedPlate{L: ls.Thickness, D: ls.HoleDiameter, A: ls.HoleSpacing}, nil

	case acoustic.LayerPlate:
		return ls.plate(materials)

	case acoustic.LayerAir:
		return acoustic.Air{L: ls.Thickness}, nil

	default:
		return nil, fmt.Errorf("%w: %q", acoustic.ErrUnsupportedLayerType, ls.Type)
	}
}

// 材料名が指定された場合は材料表の物性値を使い、明示された値で上書きする。
func (ls layerSpec) plate(materials *acoustic.MaterialTable) (acoustic.Plate, error) {
	p := acoustic.Plate{
		L:   ls.Thickness,
		E:   defaultYoungsModulus,
		Nu:  defaultPoissonRatio,
		Eta: defaultLossFactor,
	}

	if ls.Material != "" {
		if materials == nil {
			return acoustic.Plate{}, fmt.Errorf("%w: %q (no material table)", acoustic.ErrUnknownMaterial, ls.Material)
		}
		m, err := materials.Lookup(ls.Material)
		if err != nil {
			return acoustic.Plate{}, err
		}
		p = m.Plate(ls.Thickness)
	}

	p.Rho = valueOr(ls.Density, p.Rho)
	p.E = valueOr(ls.YoungsModulus, p.E)
	p.Nu = valueOr(ls.PoissonRatio, p.Nu)
	p.Eta = valueOr(ls.LossFactor, p.Eta)

	return p, nil
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
