package acoustic

import (
	"fmt"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"
)

// 周波数範囲 [Min, Max)、刻み Step, Hz
type FrequencyRange struct {
	Min  int
	Max  int
	Step int
}

// 1 Hz から 20000 Hz まで 1 Hz 刻み
func DefaultFrequencyRange() FrequencyRange {
	return FrequencyRange{Min: 1, Max: 20000, Step: 1}
}

func (r FrequencyRange) validate() error {
	if r.Min <= 0 {
		return fmt.Errorf("%w: minimum frequency %d Hz must be positive", ErrInvalidParameter, r.Min)
	}
	if r.Max <= r.Min {
		return fmt.Errorf("%w: maximum frequency %d Hz must exceed minimum %d Hz", ErrInvalidParameter, r.Max, r.Min)
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: frequency step %d Hz must be positive", ErrInvalidParameter, r.Step)
	}
	return nil
}

// 周波数の数
func (r FrequencyRange) Len() int {
	return (r.Max - r.Min + r.Step - 1) / r.Step
}

// i 番目の周波数, Hz
func (r FrequencyRange) At(i int) int {
	return r.Min + i*r.Step
}

// 1周波数の計算結果
//
// Singular が true の場合、その周波数は数値的に特異か物理的に不正な値で、Absorption は NaN。
type FrequencyPoint struct {
	Frequency  int
	Absorption float64
	Singular   bool
}

// 周波数掃引
//
// 計算は Iter / Points が呼ばれるまで行わない。何度でも最初からやり直せる。
type Sweep struct {
	stack *Stack
	rng   FrequencyRange
}

/*
	Args:
		stack: 吸音構造
		rng: 周波数範囲。Step が 0 の場合は 1 Hz とする。
*/
func NewSweep(stack *Stack, rng FrequencyRange) (*Sweep, error) {
	if stack == nil {
		return nil, fmt.Errorf("%w: stack is nil", ErrInvalidParameter)
	}
	if rng.Step == 0 {
		rng.Step = 1
	}
	if err := rng.validate(); err != nil {
		return nil, err
	}
	return &Sweep{stack: stack, rng: rng}, nil
}

// 周波数範囲
func (s *Sweep) Range() FrequencyRange { return s.rng }

// 周波数の数
func (s *Sweep) Len() int { return s.rng.Len() }

// 1周波数を計算する。特異な場合も掃引は止めない。
func (s *Sweep) point(f int) FrequencyPoint {
	a, err := s.stack.Absorption(float64(f))
	if err != nil {
		log.WithFields(log.Fields{
			"frequency": f,
			"error":     err,
		}).Debug("frequency excluded from sweep")
		return FrequencyPoint{Frequency: f, Absorption: math.NaN(), Singular: true}
	}
	return FrequencyPoint{Frequency: f, Absorption: a}
}

// 掃引のカーソル
type SweepIterator struct {
	sweep *Sweep
	i     int
	cur   FrequencyPoint
}

// 新しいカーソルを返す。
func (s *Sweep) Iter() *SweepIterator {
	return &SweepIterator{sweep: s}
}

// 次の周波数を計算する。終端に達したら false。
func (it *SweepIterator) Next() bool {
	if it.i >= it.sweep.Len() {
		return false
	}
	it.cur = it.sweep.point(it.sweep.rng.At(it.i))
	it.i++
	return true
}

// 直前の Next で計算した結果
func (it *SweepIterator) Point() FrequencyPoint {
	return it.cur
}

// すべての周波数を順に計算する。
func (s *Sweep) Points() []FrequencyPoint {
	points := make([]FrequencyPoint, 0, s.Len())
	it := s.Iter()
	for it.Next() {
		points = append(points, it.Point())
	}
	return points
}

/*
すべての周波数を workers 個の goroutine で計算する。

	Returns:
		入力の周波数順に並んだ結果（Points と同一）

	Notes:
		各周波数は独立で、結果はインデックスで書き込むため順序は保たれる。
		workers が 1 以下の場合は Points と同じ。
*/
func (s *Sweep) PointsParallel(workers int) []FrequencyPoint {
	if workers <= 1 {
		return s.Points()
	}

	n := s.Len()
	points := make([]FrequencyPoint, n)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				points[i] = s.point(s.rng.At(i))
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return points
}

// 特異な周波数の数
func CountSingular(points []FrequencyPoint) int {
	n := 0
	for _, p := range points {
		if p.Singular {
			n++
		}
	}
	return n
}
