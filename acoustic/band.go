package acoustic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// 帯域の種類
type BandKind string

// 帯域の種類
const (
	BandOctave      BandKind = "octave"
	BandThirdOctave BandKind = "third"
)

// 文字列から帯域の種類を取得する。
func ParseBandKind(s string) (BandKind, error) {
	switch k := BandKind(s); k {
	case BandOctave, BandThirdOctave:
		return k, nil
	default:
		return "", fmt.Errorf("%w: band kind %q", ErrInvalidParameter, s)
	}
}

/*
1オクターブを何分割するか

	Notes:
		オクターブ: 1
		1/3オクターブ: 3
*/
func (k BandKind) fraction() int {
	switch k {
	case BandOctave:
		return 1
	case BandThirdOctave:
		return 3
	default:
		panic("invalid band kind")
	}
}

/*
呼び中心周波数と、1 kHz を基準とした帯域番号

	Notes:
		オクターブ: 31.5 Hz - 16 kHz
		1/3オクターブ: 25 Hz - 20 kHz
*/
func (k BandKind) nominalCenters() ([]float64, int) {
	switch k {
	case BandOctave:
		return []float64{
			31.5, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000,
		}, -5
	case BandThirdOctave:
		return []float64{
			25, 31.5, 40, 50, 63, 80, 100, 125, 160, 200,
			250, 315, 400, 500, 630, 800, 1000, 1250, 1600, 2000,
			2500, 3150, 4000, 5000, 6300, 8000, 10000, 12500, 16000, 20000,
		}, -16
	default:
		panic("invalid band kind")
	}
}

// IEC 61260 のオクターブ比 G = 10^(3/10)
var octaveRatio = math.Pow(10, 0.3)

// 帯域ごとの平均吸音率
type Band struct {
	Center float64 // 呼び中心周波数, Hz
	Lower  float64 // 下限周波数, Hz
	Upper  float64 // 上限周波数, Hz
	Mean   float64 // 帯域内の平均吸音率, -
	Count  int     // 平均に使った周波数の数
}

/*
帯域の定義（中心、下限、上限）を取得する。

	Notes:
		厳密中心 fm = 1000 G^(k/N)、帯域端 fm G^(±1/(2N))
*/
func (k BandKind) Bands() []Band {
	centers, k0 := k.nominalCenters()
	n := float64(k.fraction())
	halfBW := math.Pow(octaveRatio, 1/(2*n))

	bands := make([]Band, len(centers))
	for i, c := range centers {
		fm := 1000 * math.Pow(octaveRatio, float64(k0+i)/n)
		bands[i] = Band{
			Center: c,
			Lower:  fm / halfBW,
			Upper:  fm * halfBW,
		}
	}
	return bands
}

/*
周波数ごとの吸音率を帯域ごとに平均する。

	Args:
		kind: 帯域の種類
		points: 周波数掃引の結果

	Returns:
		帯域ごとの平均吸音率

	Notes:
		特異な周波数は平均から除く。該当する周波数がない帯域は 0 とする。
*/
func AggregateBands(kind BandKind, points []FrequencyPoint) []Band {
	bands := kind.Bands()
	for i := range bands {
		var values []float64
		for _, p := range points {
			f := float64(p.Frequency)
			if p.Singular || f < bands[i].Lower || f > bands[i].Upper {
				continue
			}
			values = append(values, p.Absorption)
		}

		bands[i].Count = len(values)
		if len(values) > 0 {
			bands[i].Mean = stat.Mean(values, nil)
		}
	}
	return bands
}

// オクターブバンドごとの平均吸音率
func OctaveBands(points []FrequencyPoint) []Band {
	return AggregateBands(BandOctave, points)
}

// 1/3オクターブバンドごとの平均吸音率
func ThirdOctaveBands(points []FrequencyPoint) []Band {
	return AggregateBands(BandThirdOctave, points)
}
