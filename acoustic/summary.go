package acoustic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// 周波数掃引結果の要約
type Summary struct {
	Peak     FrequencyPoint // 吸音率が最大の周波数
	Mean     float64        // 特異な周波数を除いた平均吸音率, -
	Count    int            // 平均に使った周波数の数
	Singular int            // 特異な周波数の数
}

/*
周波数掃引の結果を要約する。

	Notes:
		すべての周波数が特異な場合、Peak と Mean はゼロ値のまま。
*/
func Summarize(points []FrequencyPoint) Summary {
	values := make([]float64, 0, len(points))
	valid := make([]FrequencyPoint, 0, len(points))
	for _, p := range points {
		if p.Singular {
			continue
		}
		values = append(values, p.Absorption)
		valid = append(valid, p)
	}

	s := Summary{
		Count:    len(values),
		Singular: len(points) - len(values),
	}
	if len(values) == 0 {
		return s
	}

	s.Peak = valid[floats.MaxIdx(values)]
	s.Mean = stat.Mean(values, nil)
	return s
}
