package qirkat

// PieceColor 表示格子的内容：白子、黑子或空。白方先行。
type PieceColor int8

const (
	Empty PieceColor = iota
	White
	Black
)

// Opposite 返回对方颜色；空格没有对方，原样返回。
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return c
}

// IsPiece 判断是否是棋子（白或黑）。
func (c PieceColor) IsPiece() bool {
	return c == White || c == Black
}

func (c PieceColor) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "Empty"
}

// short 用于棋盘串：w / b / -
func (c PieceColor) short() byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	}
	return '-'
}

// Direction 是“方向标记”：记录一枚棋子最近一次以什么横向方向
// 走进某个格子。跳吃与纵向移动记为 DirNeutral。
type Direction int8

const (
	DirNeutral Direction = iota
	DirLeft
	DirRight
)

// opposite 返回相反的横向方向；DirNeutral 没有相反方向。
func (d Direction) opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNeutral
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	}
	return "Neutral"
}
