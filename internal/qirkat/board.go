package qirkat

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rows       = 5
	Cols       = 5
	NumSquares = Rows * Cols
)

// 线性下标：index = row*Cols + col，第 0 行在最下面，第 0 列在最左边。
func indexOf(row, col int) int { return row*Cols + col }

// RowOf 返回下标对应的行号（0 = 底行）。
func RowOf(k int) int { return k / Cols }

// ColOf 返回下标对应的列号（0 = 最左列）。
func ColOf(k int) int { return k % Cols }

// ValidIndex 判断线性下标是否在棋盘上。
func ValidIndex(k int) bool { return k >= 0 && k < NumSquares }

// ValidSquare 判断 (col,row) 坐标是否在棋盘上。
func ValidSquare(col, row int) bool {
	return col >= 0 && col < Cols && row >= 0 && row < Rows
}

var ErrInvalidSquare = errors.New("invalid square")

// ToIndex 把 (col,row) 转成线性下标，越界返回 ErrInvalidSquare。
func ToIndex(col, row int) (int, error) {
	if !ValidSquare(col, row) {
		return -1, fmt.Errorf("%w: col=%d row=%d", ErrInvalidSquare, col, row)
	}
	return indexOf(row, col), nil
}

// 初始布局：自底向上逐行，白方占下两行，黑方占上两行，中间一行 bb-ww。
const startingLayout = "wwwww wwwww bb-ww bbbbb bbbbb"

// Board 是完整的对局状态。只能通过 MakeMove/Undo 走子和悔棋，
// 或者用 Clear/SetPieces 整体重置；每次成功变更都会通知观察者。
//
// arrived 是逐格的“到达方向”栈：记录棋子最近一次以什么横向方向
// 走进这个格子，清盘时每格只有一个 DirNeutral。makeMove 每手恰好
// 压一个条目，undo 恰好弹一个，所以 25 + len(history) 恒等于全部
// 栈深之和。
type Board struct {
	squares   [NumSquares]PieceColor
	whoseMove PieceColor
	gameOver  bool
	hash      uint64
	history   []Move
	arrived   [NumSquares][]Direction
	observers []Observer
}

// NewBoard 返回摆好初始布局、白方先行的棋盘。
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear 重置到初始布局，白方先行。
func (b *Board) Clear() {
	grid, err := parseLayout(startingLayout)
	if err != nil {
		panic("qirkat: bad starting layout: " + err.Error())
	}
	b.resetTo(grid, White)
}

// resetTo 整体替换棋盘内容：历史清空，方向栈重新播种，哈希全量重算。
func (b *Board) resetTo(grid [NumSquares]PieceColor, next PieceColor) {
	b.squares = grid
	b.whoseMove = next
	b.history = nil
	for k := range b.arrived {
		b.arrived[k] = []Direction{DirNeutral}
	}
	b.hash = b.calculateHash()
	b.gameOver = !b.hasMoves()
	b.notifyObservers()
}

// Copy 做一份独立快照给搜索用：棋子、轮次、历史、方向栈全部深拷贝，
// 观察者不带过去。
func (b *Board) Copy() *Board {
	nb := &Board{
		squares:   b.squares,
		whoseMove: b.whoseMove,
		gameOver:  b.gameOver,
		hash:      b.hash,
	}
	nb.history = append([]Move(nil), b.history...)
	for k := range b.arrived {
		nb.arrived[k] = append([]Direction(nil), b.arrived[k]...)
	}
	return nb
}

// Get 返回格子内容。下标越界说明调用方有 bug，直接 panic。
func (b *Board) Get(k int) PieceColor {
	if !ValidIndex(k) {
		panic(fmt.Sprintf("qirkat: square index %d out of range", k))
	}
	return b.squares[k]
}

// WhoseMove 返回当前轮到的一方。
func (b *Board) WhoseMove() PieceColor { return b.whoseMove }

// GameOver 返回缓存的终局标志：轮到的一方无棋可走即为真。
// 标志在 Clear/SetPieces/MakeMove 之后重算，Undo 之后必然为假。
func (b *Board) GameOver() bool { return b.gameOver }

// MoveCount 返回已走（未撤销）的手数。
func (b *Board) MoveCount() int { return len(b.history) }

// PieceCount 统计某一方的棋子数。
func (b *Board) PieceCount(c PieceColor) int {
	n := 0
	for k := 0; k < NumSquares; k++ {
		if b.squares[k] == c {
			n++
		}
	}
	return n
}

// set 是唯一的落子写入口，顺带维护增量 Zobrist 哈希。
func (b *Board) set(k int, v PieceColor) {
	b.hash ^= pieceKey(b.squares[k], k) ^ pieceKey(v, k)
	b.squares[k] = v
}

// flipTurn 换边并翻转哈希里的先后手位。
func (b *Board) flipTurn() {
	b.whoseMove = b.whoseMove.Opposite()
	b.hash ^= zobristSide
}

func (b *Board) pushArrival(k int, d Direction) {
	b.arrived[k] = append(b.arrived[k], d)
}

func (b *Board) popArrival(k int) {
	n := len(b.arrived[k])
	if n <= 1 {
		// 栈底的 DirNeutral 是清盘时播种的，弹掉它说明 push/pop 不配对
		panic(fmt.Sprintf("qirkat: direction stack underflow at square %d", k))
	}
	b.arrived[k] = b.arrived[k][:n-1]
}

func (b *Board) lastArrival(k int) Direction {
	return b.arrived[k][len(b.arrived[k])-1]
}

// MakeMove 应用一手棋。不合法时什么都不做并返回 false；
// 调用方要么先问 LegalMove，要么容忍这个静默拒绝。
func (b *Board) MakeMove(m Move) bool {
	if !b.LegalMove(m) {
		return false
	}
	mover := b.squares[m.From]
	if m.IsJump() {
		// 连跳从链头走到链尾：棋子落到 To，吃掉中点，腾出 From。
		for link := &m; link != nil; link = link.tail {
			b.set(link.To, mover)
			b.set(link.JumpedIndex(), Empty)
			b.set(link.From, Empty)
		}
		// 整条链只在最终落点压一个 DirNeutral
		b.pushArrival(m.LastTo(), DirNeutral)
	} else {
		b.pushArrival(m.To, m.direction())
		b.set(m.To, mover)
		b.set(m.From, Empty)
	}
	b.history = append(b.history, m)
	b.flipTurn()
	b.gameOver = !b.hasMoves()
	b.notifyObservers()
	return true
}

// Undo 撤销最近一手。没有历史时返回 false。
func (b *Board) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	m := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.flipTurn()
	mover := b.whoseMove // 撤销之后轮到的一方就是当初走这手的一方
	if m.IsJump() {
		b.popArrival(m.LastTo())
		for link := &m; link != nil; link = link.tail {
			b.set(link.JumpedIndex(), mover.Opposite())
			if link.To != m.From {
				// 链绕回原出发格时不能把它清掉
				b.set(link.To, Empty)
			}
		}
		b.set(m.From, mover)
	} else {
		b.popArrival(m.To)
		b.set(m.From, mover)
		b.set(m.To, Empty)
	}
	b.gameOver = false
	b.notifyObservers()
	return true
}

// String 自上而下渲染棋盘（第 4 行在最上面），格式与 dump 命令一致。
func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		sb.WriteString("  ")
		for col := 0; col < Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.squares[indexOf(row, col)].short())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
