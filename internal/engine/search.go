package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"qirkat/internal/qirkat"
)

const (
	// 一个足够大的值,当成正负无穷
	scoreInf = 1_000_000_000
	// 必胜局面的基准分,加上剩余深度让引擎偏好更快的赢法
	scoreWin = 100_000
)

// 搜索配置
type SearchConfig struct {
	MaxDepth  int           // 最大搜索深度(ply)
	TimeLimit time.Duration // 搜索时间上限(0 表示不限制)
}

// 搜索结果
type SearchResult struct {
	BestMove *qirkat.Move  // 最佳着法,nil 表示无棋可走
	Score    int           // 评估分(正:白方好,负:黑方好)
	WinProb  float32       // 白方胜率估计
	Depth    int           // 实际搜索到的深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
	PV       []qirkat.Move // 主变(这里只放根节点的最佳着法)
}

// Search 带迭代加深的根节点搜索,根节点内部并行。
// 传入的盘面不会被改动:搜索全程跑在自己的副本上。
func (e *Engine) Search(b *qirkat.Board, cfg SearchConfig) SearchResult {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 4
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)

	root := b.Copy()
	moves := TurnMoves(root)
	if len(moves) == 0 {
		return SearchResult{TimeUsed: time.Since(start)}
	}

	// 根着法先洗一遍,同分时走哪手由随机源决定,配种子可复现
	e.rng.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })

	deadline := time.Time{}
	if cfg.TimeLimit > 0 {
		deadline = start.Add(cfg.TimeLimit)
	}

	best := moves[0]
	bestScore := Evaluate(root)
	bestDepth := 0

	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		score, mv, ok := e.alphaBetaRoot(root, moves, depth, -scoreInf, scoreInf, deadline)
		if !ok {
			break
		}
		best = mv
		bestScore = score
		bestDepth = depth
	}

	mv := best
	return SearchResult{
		BestMove: &mv,
		Score:    bestScore,
		WinProb:  winProbFromScore(bestScore),
		Depth:    bestDepth,
		Nodes:    atomic.LoadInt64(&e.nodes),
		TimeUsed: time.Since(start),
		PV:       []qirkat.Move{mv},
	}
}

// 根节点:按行棋方做极大/极小,每个分支并行搜。
func (e *Engine) alphaBetaRoot(root *qirkat.Board, moves []qirkat.Move, depth, alpha, beta int, deadline time.Time) (int, qirkat.Move, bool) {
	// 长链优先,同级保持洗牌后的顺序
	sort.SliceStable(moves, func(i, j int) bool {
		return chainLength(moves[i]) > chainLength(moves[j])
	})

	// 上一轮迭代的最佳着法提到最前面(全局 TT 只在主 goroutine 碰)
	key := root.Hash()
	if entry, ok := e.tt[key]; ok {
		want := entry.Move.String()
		for i := range moves {
			if moves[i].String() == want {
				moves[0], moves[i] = moves[i], moves[0]
				break
			}
		}
	}

	// 先同步生成所有子盘面,并行期间互不相干
	type childNode struct {
		move  qirkat.Move
		board *qirkat.Board
	}
	children := make([]childNode, 0, len(moves))
	for _, mv := range moves {
		cb := root.Copy()
		if !cb.MakeMove(mv) {
			continue
		}
		children = append(children, childNode{move: mv, board: cb})
	}
	if len(children) == 0 {
		return 0, qirkat.Move{}, false
	}

	// 只有一手时没必要并行,局部 Engine 直接跑
	if len(children) == 1 {
		local := newLocalEngine()
		score := local.alphaBeta(children[0].board, depth-1, alpha, beta, deadline)
		if local.nodes != 0 {
			atomic.AddInt64(&e.nodes, local.nodes)
		}
		e.storeTT(key, depth, score, children[0].move)
		return score, children[0].move, true
	}

	type rootResult struct {
		idx   int
		score int
	}
	results := make(chan rootResult, len(children))

	for i := range children {
		i := i
		go func() {
			// 每个 goroutine 自己的 Engine/TT,不加锁也不抢 map
			local := newLocalEngine()
			score := local.alphaBeta(children[i].board, depth-1, alpha, beta, deadline)
			if local.nodes != 0 {
				atomic.AddInt64(&e.nodes, local.nodes)
			}
			results <- rootResult{idx: i, score: score}
		}()
	}

	// 同分取排序靠前的那手,让结果不随调度顺序晃
	side := root.WhoseMove()
	bestIdx := -1
	bestScore := 0
	for range children {
		r := <-results
		if bestIdx < 0 {
			bestIdx, bestScore = r.idx, r.score
			continue
		}
		if side == qirkat.White {
			if r.score > bestScore || (r.score == bestScore && r.idx < bestIdx) {
				bestIdx, bestScore = r.idx, r.score
			}
		} else {
			if r.score < bestScore || (r.score == bestScore && r.idx < bestIdx) {
				bestIdx, bestScore = r.idx, r.score
			}
		}
	}

	e.storeTT(key, depth, bestScore, children[bestIdx].move)
	return bestScore, children[bestIdx].move, true
}

// 内部递归:经典 alpha-beta,MakeMove/Undo 严格成对在同一块盘面上推演。
func (e *Engine) alphaBeta(b *qirkat.Board, depth, alpha, beta int, deadline time.Time) int {
	e.nodes++

	moves := TurnMoves(b)
	if len(moves) == 0 {
		// 轮到谁走不了谁就输;剩余深度越多说明败得越快
		if b.WhoseMove() == qirkat.White {
			return -(scoreWin + depth)
		}
		return scoreWin + depth
	}
	if depth <= 0 {
		return Evaluate(b)
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		// 超时:返回静态评估,保证能退出
		return Evaluate(b)
	}

	key := b.Hash()
	if entry, ok := e.tt[key]; ok && entry.Depth >= depth {
		return entry.Score
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return chainLength(moves[i]) > chainLength(moves[j])
	})

	side := b.WhoseMove()
	var bestScore int
	if side == qirkat.White {
		bestScore = -scoreInf
		for i := range moves {
			if !b.MakeMove(moves[i]) {
				continue
			}
			score := e.alphaBeta(b, depth-1, alpha, beta, deadline)
			b.Undo()
			if score > bestScore {
				bestScore = score
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		bestScore = scoreInf
		for i := range moves {
			if !b.MakeMove(moves[i]) {
				continue
			}
			score := e.alphaBeta(b, depth-1, alpha, beta, deadline)
			b.Undo()
			if score < bestScore {
				bestScore = score
			}
			if score < beta {
				beta = score
			}
			if alpha >= beta {
				break
			}
		}
	}

	e.storeTT(key, depth, bestScore, qirkat.Move{})
	return bestScore
}

// chainLength 数这手棋吃掉几个子,平移记 0。
func chainLength(m qirkat.Move) int {
	if !m.IsJump() {
		return 0
	}
	n := 1
	for t := m.Tail(); t != nil; t = t.Tail() {
		n++
	}
	return n
}

func winProbFromScore(score int) float32 {
	p := (float64(score)/scoreWin + 1) / 2
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return float32(p)
}
