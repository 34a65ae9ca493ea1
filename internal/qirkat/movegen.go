package qirkat

// Moves 枚举当前一方的全部合法单步走法。终局时返回空。
// 有吃必吃：只要场上存在跳吃，就只枚举跳吃。连跳不在这里展开，
// 由搜索方/玩家用 JumpsFrom 逐跳拼接。
func (b *Board) Moves() []Move {
	if b.gameOver {
		return nil
	}
	return b.movesRaw()
}

// movesRaw 绕过终局标志的原始生成器，终局标志本身靠它来重算。
func (b *Board) movesRaw() []Move {
	var moves []Move
	side := b.whoseMove
	if b.JumpPossible() {
		for k := 0; k < NumSquares; k++ {
			if b.squares[k] == side {
				b.jumpsInto(k, &moves)
			}
		}
		return moves
	}
	for k := 0; k < NumSquares; k++ {
		if b.squares[k] == side {
			b.stepsInto(k, &moves)
		}
	}
	return moves
}

// hasMoves 判断当前一方是否还有棋可走。
func (b *Board) hasMoves() bool {
	return len(b.movesRaw()) > 0
}

// stepsInto 枚举 k 处己方棋子的平移走法。
// 走到对面底线的棋子不再平移（跳吃仍然允许）。
func (b *Board) stepsInto(k int, moves *[]Move) {
	c := b.squares[k]
	if c == White && k > 19 {
		return
	}
	if c == Black && k < 5 {
		return
	}
	fwd := Cols
	if c == Black {
		fwd = -Cols
	}
	// 前进一格
	b.tryStep(k, k+fwd, moves)
	// 横移
	if k%Cols < Cols-1 {
		b.tryStep(k, k+1, moves)
	}
	if k%Cols > 0 {
		b.tryStep(k, k-1, moves)
	}
	// 斜线只连在偶数格上
	if k%2 == 0 {
		if k%Cols < Cols-1 {
			b.tryStep(k, k+fwd+1, moves)
		}
		if k%Cols > 0 {
			b.tryStep(k, k+fwd-1, moves)
		}
	}
}

// tryStep 落点必须为空，且不能立刻折返刚才的横向来路。
func (b *Board) tryStep(k, to int, moves *[]Move) {
	if b.squares[to] != Empty {
		return
	}
	m := move(k, to)
	if d := m.direction(); d != DirNeutral && b.lastArrival(k) == d.opposite() {
		return
	}
	*moves = append(*moves, m)
}

// jumpsInto 枚举 k 处棋子（无论哪方）的单跳。八个跳向：
// 四个正交双步，四个斜向双步（仅偶数格），落点为空、中点是对方。
func (b *Board) jumpsInto(k int, moves *[]Move) {
	c := b.squares[k]
	if !c.IsPiece() {
		return
	}
	opp := c.Opposite()
	try := func(to int) {
		if to < 0 || to >= NumSquares {
			return
		}
		if b.squares[(k+to)/2] != opp || b.squares[to] != Empty {
			return
		}
		*moves = append(*moves, move(k, to))
	}
	if k%Cols < 3 {
		try(k + 2)
	}
	if k%Cols > 1 {
		try(k - 2)
	}
	try(k + 2*Cols)
	try(k - 2*Cols)
	if k%2 == 0 {
		if k%Cols < 3 {
			try(k + 12) // 两次 +6，列 +2
			try(k - 8)  // 两次 -4，列 +2
		}
		if k%Cols > 1 {
			try(k - 12)
			try(k + 8)
		}
	}
}

// JumpsFrom 返回 k 处棋子可用的全部单跳，不看轮次。
// 连跳拼接要在推演走完一跳之后继续问落点，所以这里按棋子算而不是按轮次算。
func (b *Board) JumpsFrom(k int) []Move {
	if !ValidIndex(k) {
		return nil
	}
	var moves []Move
	b.jumpsInto(k, &moves)
	return moves
}

// JumpPossibleFrom 判断 k 处棋子（无论哪方）是否至少有一跳。
func (b *Board) JumpPossibleFrom(k int) bool {
	return len(b.JumpsFrom(k)) > 0
}

// JumpPossible 判断当前一方是否存在任何跳吃，“有吃必吃”靠它把关。
func (b *Board) JumpPossible() bool {
	for k := 0; k < NumSquares; k++ {
		if b.squares[k] == b.whoseMove && b.JumpPossibleFrom(k) {
			return true
		}
	}
	return false
}

// LegalMove 判断一手棋是否合法。对链逐跳模拟校验。
func (b *Board) LegalMove(m Move) bool {
	if !ValidIndex(m.From) || b.squares[m.From] != b.whoseMove {
		return false
	}
	if m.IsJump() || m.tail != nil {
		return b.legalChain(m)
	}
	return b.legalStep(m)
}

// legalStep 校验平移：落点为空、无吃可抢、几何位移合法、
// 底线棋子不再平移、不立刻折返横向来路。
func (b *Board) legalStep(m Move) bool {
	if !ValidIndex(m.To) || b.squares[m.To] != Empty {
		return false
	}
	if b.JumpPossible() {
		return false
	}
	c := b.squares[m.From]
	if c == White && m.From > 19 {
		return false
	}
	if c == Black && m.From < 5 {
		return false
	}
	if !stepPattern(c, m.From, m.To) {
		return false
	}
	if d := m.direction(); d != DirNeutral && b.lastArrival(m.From) == d.opposite() {
		return false
	}
	return true
}

// stepPattern 校验平移的几何位移：前进、横移，偶数格可斜走。
func stepPattern(c PieceColor, from, to int) bool {
	fwd := Cols
	if c == Black {
		fwd = -Cols
	}
	switch to - from {
	case fwd:
		return true
	case 1:
		return from%Cols < Cols-1
	case -1:
		return from%Cols > 0
	case fwd + 1: // 斜走携带列 +1
		return from%2 == 0 && from%Cols < Cols-1
	case fwd - 1: // 斜走携带列 -1
		return from%2 == 0 && from%Cols > 0
	}
	return false
}

// jumpPattern 校验单跳的几何位移，和 jumpsInto 的方向守卫一致。
func jumpPattern(from, to int) bool {
	switch to - from {
	case 2:
		return from%Cols < 3
	case -2:
		return from%Cols > 1
	case 2 * Cols, -2 * Cols:
		return true
	case 12, -8:
		return from%2 == 0 && from%Cols < 3
	case -12, 8:
		return from%2 == 0 && from%Cols > 1
	}
	return false
}

// legalChain 逐跳校验连跳链：每跳都是跳吃、首尾相接、
// 中点是还没被吃掉的对方棋子、落点已腾空。
func (b *Board) legalChain(m Move) bool {
	origin := m.From
	opp := b.whoseMove.Opposite()
	var captured []int
	cur := origin
	for link := &m; link != nil; link = link.tail {
		if link.From != cur || !ValidIndex(link.To) || !link.IsJump() {
			return false
		}
		if !jumpPattern(link.From, link.To) {
			return false
		}
		mid := link.JumpedIndex()
		if b.squares[mid] != opp || containsInt(captured, mid) {
			return false
		}
		// 原出发格和先前吃掉的格子都已腾空，可以落
		if b.squares[link.To] != Empty && link.To != origin && !containsInt(captured, link.To) {
			return false
		}
		captured = append(captured, mid)
		cur = link.To
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
