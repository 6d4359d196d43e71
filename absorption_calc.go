package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"absorption_calc/acoustic"
)

type Config struct {
	InputPath     string
	OutputDataDir string
	Bands         string
	MaterialsPath string
	Workers       int
}

// 材料表を読み込む。パスが空の場合は組み込みの材料表。
func loadMaterials(path string) (*acoustic.MaterialTable, error) {
	if path == "" {
		return acoustic.DefaultMaterialTable(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return acoustic.LoadMaterialTable(file)
}

/*
吸音率計算処理の実行

	Args:
		cfg: 実行条件

	Returns:
		計算結果の要約
*/
func run(cfg Config) (acoustic.Summary, error) {
	// ---- 事前準備 ----

	var kind acoustic.BandKind
	if cfg.Bands != "" && cfg.Bands != "none" {
		k, err := acoustic.ParseBandKind(cfg.Bands)
		if err != nil {
			return acoustic.Summary{}, err
		}
		kind = k
	}

	recorder, err := NewRecorder(cfg.OutputDataDir)
	if err != nil {
		return acoustic.Summary{}, err
	}

	materials, err := loadMaterials(cfg.MaterialsPath)
	if err != nil {
		return acoustic.Summary{}, fmt.Errorf("load materials: %w", err)
	}

	// 計算条件JSONファイルの読み込み
	log.WithField("path", cfg.InputPath).Info("計算条件JSONファイルの読み込み開始")
	in, err := openInput(cfg.InputPath)
	if err != nil {
		return acoustic.Summary{}, err
	}
	defer in.Close()

	stack, rng, err := readStack(in, materials)
	if err != nil {
		return acoustic.Summary{}, err
	}

	sweep, err := acoustic.NewSweep(stack, rng)
	if err != nil {
		return acoustic.Summary{}, err
	}

	// ---- 計算 ----

	log.WithFields(log.Fields{
		"layers":  len(stack.Layers()),
		"min":     sweep.Range().Min,
		"max":     sweep.Range().Max,
		"step":    sweep.Range().Step,
		"workers": cfg.Workers,
	}).Info("周波数掃引開始")
	points := sweep.PointsParallel(cfg.Workers)

	summary := acoustic.Summarize(points)
	if summary.Singular > 0 {
		log.WithField("count", summary.Singular).Warn("singular or non-physical frequencies excluded")
	}

	// ---- 計算結果ファイルの保存 ----

	if _, err := recorder.SavePoints(points); err != nil {
		return acoustic.Summary{}, err
	}

	if kind != "" {
		if _, err := recorder.SaveBands(kind, acoustic.AggregateBands(kind, points)); err != nil {
			return acoustic.Summary{}, err
		}
	}

	return summary, nil
}

func main() {
	var cfg Config
	flag.StringVar(&cfg.InputPath, "input", "", "計算を実行するJSONファイル")
	flag.StringVar(&cfg.OutputDataDir, "o", ".", "出力フォルダ")
	flag.StringVar(&cfg.Bands, "bands", "none", "帯域平均の出力を指定します。 (none, octave, third)")
	flag.StringVar(&cfg.MaterialsPath, "materials", "", "板材料の材料表CSVファイルを指定します。省略時は組み込みの材料表を使います。")
	flag.IntVar(&cfg.Workers, "workers", 0, "周波数掃引の並列数を指定します。0 の場合は逐次計算します。")

	var logLevel string
	flag.StringVar(&logLevel, "log", "ERROR", "ログレベルを指定します。 (Default=ERROR)")

	// 引数を受け取る
	flag.Parse()

	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)

	if cfg.InputPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.WithFields(log.Fields{
		"input":     cfg.InputPath,
		"output":    cfg.OutputDataDir,
		"bands":     cfg.Bands,
		"materials": cfg.MaterialsPath,
		"workers":   cfg.Workers,
	}).Info("flags")

	start := time.Now()

	summary, err := run(cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("peak: %.4f at %d Hz\n", summary.Peak.Absorption, summary.Peak.Frequency)
	fmt.Printf("mean: %.4f (%d frequencies, %d singular)\n", summary.Mean, summary.Count, summary.Singular)

	log.Infof("elapsed_time: %v", time.Since(start))
}
