package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"absorption_calc/acoustic"
)

// 周波数ごとの吸音率（absorption.csv の1行）
type pointRow struct {
	Frequency  int     `csv:"frequency"`
	Absorption float64 `csv:"absorption"`
	Singular   bool    `csv:"singular"`
}

// 帯域ごとの平均吸音率（*_bands.csv の1行）
type bandRow struct {
	Center     float64 `csv:"center"`
	Lower      float64 `csv:"lower"`
	Upper      float64 `csv:"upper"`
	Absorption float64 `csv:"absorption"`
	Count      int     `csv:"count"`
}

// 計算結果を出力フォルダに CSV として保存する。
type Recorder struct {
	outputDir string
}

// 出力フォルダがなければ作成する。
func NewRecorder(outputDir string) (*Recorder, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, err
	}

	info, err := os.Stat(outputDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("`%s` is not a directory", outputDir)
	}

	return &Recorder{outputDir: outputDir}, nil
}

// 周波数ごとの吸音率を absorption.csv に保存する。
func (r *Recorder) SavePoints(points []acoustic.FrequencyPoint) (string, error) {
	rows := make([]pointRow, len(points))
	for i, p := range points {
		rows[i] = pointRow{Frequency: p.Frequency, Absorption: p.Absorption, Singular: p.Singular}
	}
	return r.save("absorption", "absorption.csv", &rows)
}

// 帯域ごとの平均吸音率を保存する。
func (r *Recorder) SaveBands(kind acoustic.BandKind, bands []acoustic.Band) (string, error) {
	rows := make([]bandRow, len(bands))
	for i, b := range bands {
		rows[i] = bandRow{Center: b.Center, Lower: b.Lower, Upper: b.Upper, Absorption: b.Mean, Count: b.Count}
	}
	return r.save(string(kind)+" bands", bandFileName(kind), &rows)
}

func bandFileName(kind acoustic.BandKind) string {
	switch kind {
	case acoustic.BandThirdOctave:
		return "third_octave_bands.csv"
	default:
		return "octave_bands.csv"
	}
}

func (r *Recorder) save(varname, filename string, rows interface{}) (string, error) {
	path := filepath.Join(r.outputDir, filename)
	log.WithField("path", path).Infof("Save %s", varname)

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := gocsv.MarshalFile(rows, file); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, file.Close()
}
