package qirkat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPosition = errors.New("invalid position string")
	ErrInvalidColor    = errors.New("invalid color")
)

// parseLayout 解析 25 字符布局串：自底向上逐行，w/b/- 三种记号，
// 大小写不敏感，中间的空白全部忽略。
func parseLayout(layout string) ([NumSquares]PieceColor, error) {
	var grid [NumSquares]PieceColor
	flat := strings.Join(strings.Fields(layout), "")
	if len(flat) != NumSquares {
		return grid, fmt.Errorf("%w: want %d squares, got %d", ErrInvalidPosition, NumSquares, len(flat))
	}
	for i := 0; i < NumSquares; i++ {
		switch flat[i] {
		case 'w', 'W':
			grid[i] = White
		case 'b', 'B':
			grid[i] = Black
		case '-':
			grid[i] = Empty
		default:
			return grid, fmt.Errorf("%w: bad square char %q", ErrInvalidPosition, flat[i])
		}
	}
	return grid, nil
}

// SetPieces 按布局串整体摆子并指定先手方。布局或颜色不合法时
// 返回错误且棋盘保持原样。
func (b *Board) SetPieces(layout string, next PieceColor) error {
	if !next.IsPiece() {
		return fmt.Errorf("%w: next mover is %v", ErrInvalidColor, next)
	}
	grid, err := parseLayout(layout)
	if err != nil {
		return err
	}
	b.resetTo(grid, next)
	return nil
}

// Encode 输出 "wwwww wwwww bb-ww bbbbb bbbbb w" 形式：
// 布局串（行间一个空格）加先手记号，SetPieces 能原样吃回布局部分。
func (b *Board) Encode() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		if row > 0 {
			sb.WriteByte(' ')
		}
		for col := 0; col < Cols; col++ {
			sb.WriteByte(b.squares[indexOf(row, col)].short())
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(b.whoseMove.short())
	return sb.String()
}
