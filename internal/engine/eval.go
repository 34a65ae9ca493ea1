package engine

import "qirkat/internal/qirkat"

// 一些权重,可之后慢慢调
const (
	pieceValue     = 100
	advanceBonus   = 2
	centerBonus    = 3
	frozenPenalty  = 4
	mobilityWeight = 2
	tempoBonus     = 5
)

// Evaluate 从白方视角打分:正数白方好,负数黑方好。
// 材料 + 位置 + 行动力 + 先手微利。
func Evaluate(b *qirkat.Board) int {
	score := evaluateMaterialPositional(b)
	score += evaluateMobility(b)
	if b.WhoseMove() == qirkat.White {
		score += tempoBonus
	} else {
		score -= tempoBonus
	}
	return score
}

// 材料加简单位置分:score = 白方 - 黑方
func evaluateMaterialPositional(b *qirkat.Board) int {
	score := 0
	for k := 0; k < qirkat.NumSquares; k++ {
		c := b.Get(k)
		if !c.IsPiece() {
			continue
		}
		val := pieceValue + pieceSquareBonus(c, k)
		if c == qirkat.White {
			score += val
		} else {
			score -= val
		}
	}
	return score
}

// 计算某个棋子的位置加成(从该子方视角,外面再按颜色取正负)。
func pieceSquareBonus(c qirkat.PieceColor, k int) int {
	row, col := qirkat.RowOf(k), qirkat.ColOf(k)

	// 自家方向上的前进距离,0 表示还在家门口
	advance := row
	if c == qirkat.Black {
		advance = qirkat.Rows - 1 - row
	}

	bonus := advance * advanceBonus
	// 顶到对方底线后平步被冻结,小扣一点
	if advance == qirkat.Rows-1 {
		bonus -= frozenPenalty
	}
	// 越靠中路越灵活
	bonus += (2 - abs(col-2)) * centerBonus
	return bonus
}

// 行动力:行棋方当前的着法数,带符号。
func evaluateMobility(b *qirkat.Board) int {
	steps := len(b.Moves()) * mobilityWeight
	if b.WhoseMove() == qirkat.White {
		return steps
	}
	return -steps
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
