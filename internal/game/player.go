package game

import "qirkat/internal/qirkat"

// Player 是一方棋手：轮到自己时给出下一手。
// 返回 nil 表示给不出棋（输入耗尽，或状态已经离开对局态），
// 控制器收到 nil 就退回设置态。
type Player interface {
	Color() qirkat.PieceColor
	NextMove() *qirkat.Move
}

// seeder 由能接受随机种子的棋手实现，seed 命令经它下发。
type seeder interface {
	SetSeed(seed int64)
}
