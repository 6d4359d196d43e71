package acoustic

import "fmt"

/*
各層の伝達行列を縦続接続する。

	Args:
		ts: 入射側から順に並んだ各層の伝達行列

	Returns:
		構造全体の伝達行列 T1 T2 ... Tn

	Notes:
		積は左から右へ順に計算する。並べ替えると物理的な意味が変わる。
*/
func Cascade(ts []TransferMatrix) (TransferMatrix, error) {
	if len(ts) == 0 {
		return TransferMatrix{}, fmt.Errorf("%w: no transfer matrices to cascade", ErrInvalidParameter)
	}

	// 入射側1層目の場合は、そのまま全体の行列とする
	t := ts[0]

	// 2層目以降は、順に右から乗算
	for _, ti := range ts[1:] {
		t = t.Mul(ti)
	}

	if !t.IsFinite() {
		return TransferMatrix{}, fmt.Errorf("%w: cascaded transfer matrix is not finite", ErrNumericalSingularity)
	}

	return t, nil
}
