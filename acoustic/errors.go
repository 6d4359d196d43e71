package acoustic

import "errors"

var (
	// 物理的な前提を満たさない入力（厚さ、角度、流れ抵抗など）
	ErrInvalidParameter = errors.New("invalid parameter")

	// 特定の周波数でゼロ除算またはそれに近い状態になった
	ErrNumericalSingularity = errors.New("numerical singularity")

	// 吸音率が [0, 1] の外に出た（実験式の適用範囲外など）
	ErrNonPhysicalResult = errors.New("non-physical result")

	// 未知の層の種類・モデル
	ErrUnsupportedLayerType = errors.New("unsupported layer type")

	// 材料表に存在しない材料名
	ErrUnknownMaterial = errors.New("unknown material")
)
