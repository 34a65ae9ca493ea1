package qirkat

import (
	"fmt"
	"strings"
)

// Move 是一手棋：单步（平移或单跳）或者一条连跳链。
// From/To 都是线性下标；tail 指向同一回合里的下一跳，普通走法为 nil。
// 链在构造后不可再修改，遍历永远从链头走到链尾。
type Move struct {
	From int
	To   int
	tail *Move
}

// NewMove 用已经解析好的 (col,row) 坐标对构造一手棋，tail 可为 nil。
// 坐标越界返回 ErrInvalidSquare。文本记法的解析是外层输入适配器的事。
func NewMove(col0, row0, col1, row1 int, tail *Move) (Move, error) {
	from, err := ToIndex(col0, row0)
	if err != nil {
		return Move{}, err
	}
	to, err := ToIndex(col1, row1)
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to, tail: tail}, nil
}

// move 内部构造：调用方保证下标合法。
func move(from, to int) Move {
	return Move{From: from, To: to}
}

// Join 把 next 接到链 m 的末尾，返回新链头；m 本身不被修改。
// m 为 nil 时直接返回 next。
func Join(m, next *Move) *Move {
	if m == nil {
		return next
	}
	return &Move{From: m.From, To: m.To, tail: Join(m.tail, next)}
}

// Tail 返回链上的下一跳；普通走法返回 nil。
func (m Move) Tail() *Move {
	return m.tail
}

// IsJump 判断是否跳吃。跳的线性位移是 ±2/±8/±10/±12，
// 平移是 ±1/±4/±5/±6，两组不相交。
func (m Move) IsJump() bool {
	switch m.To - m.From {
	case 2, -2, 8, -8, 10, -10, 12, -12:
		return true
	}
	return false
}

// JumpedIndex 返回被吃掉的格子：恰好是 From/To 的中点。
// 非跳吃返回 -1。
func (m Move) JumpedIndex() int {
	if !m.IsJump() {
		return -1
	}
	return (m.From + m.To) / 2
}

// IsLeftMove 判断非跳吃走法的列号是否严格变小。
// 斜走（±4/±6）按它携带的横向分量算。
func (m Move) IsLeftMove() bool {
	return !m.IsJump() && ColOf(m.To) < ColOf(m.From)
}

// IsRightMove 判断非跳吃走法的列号是否严格变大。
func (m Move) IsRightMove() bool {
	return !m.IsJump() && ColOf(m.To) > ColOf(m.From)
}

// direction 是这一步的横向标记，makeMove 用它往目标格压栈。
func (m Move) direction() Direction {
	switch {
	case m.IsLeftMove():
		return DirLeft
	case m.IsRightMove():
		return DirRight
	}
	return DirNeutral
}

// LastTo 返回整条链最终落点；普通走法就是 To。
func (m Move) LastTo() int {
	last := m.To
	for t := m.tail; t != nil; t = t.tail {
		last = t.To
	}
	return last
}

// String 输出 "a1-b2" 或链式 "a1-c1-e1"。
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(squareName(m.From))
	sb.WriteByte('-')
	sb.WriteString(squareName(m.To))
	for t := m.tail; t != nil; t = t.tail {
		sb.WriteByte('-')
		sb.WriteString(squareName(t.To))
	}
	return sb.String()
}

// squareName 把线性下标转成 "a1" 这样的记法。
func squareName(k int) string {
	if !ValidIndex(k) {
		return fmt.Sprintf("?%d", k)
	}
	return string([]byte{byte('a' + ColOf(k)), byte('1' + RowOf(k))})
}
