package mcts

import (
	"math"
	"math/rand"
	"time"

	"qirkat/internal/engine"
	"qirkat/internal/qirkat"
)

// node 一条边一个节点:move 是从父局面走进来的那一手,
// mover 是走这手棋的一方,wins 按 mover 的视角累计。
type node struct {
	move   qirkat.Move
	mover  qirkat.PieceColor
	parent *node

	children []*node
	untried  []qirkat.Move

	visits int
	wins   float64

	expanded bool
	terminal bool
}

// SearchResult MCTS 搜索结果
type SearchResult struct {
	BestMove *qirkat.Move
	WinProb  float32 // 白方胜率估计
	Sims     int
	TimeUsed time.Duration
	PV       []qirkat.Move
}

// Searcher MCTS 搜索执行器:UCT 选点加随机走子评估。
type Searcher struct {
	cfg Config
	rng *rand.Rand
}

func NewSearcher(cfg Config) *Searcher {
	def := DefaultConfig()
	if cfg.Simulations <= 0 {
		cfg.Simulations = def.Simulations
	}
	if cfg.Cpuct <= 0 {
		cfg.Cpuct = def.Cpuct
	}
	if cfg.PlayoutCap <= 0 {
		cfg.PlayoutCap = def.PlayoutCap
	}
	return &Searcher{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed 固定随机源,种子相同则整棵搜索树可复现。
func (s *Searcher) SetSeed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Search 执行 MCTS 搜索。传入的盘面不会被改动,
// 每次仿真都跑在自己的副本上。
func (s *Searcher) Search(b *qirkat.Board) SearchResult {
	start := time.Now()

	rootMoves := engine.TurnMoves(b.Copy())
	if len(rootMoves) == 0 {
		return SearchResult{TimeUsed: time.Since(start)}
	}
	root := &node{untried: rootMoves, expanded: true}

	sims := 0
	for ; sims < s.cfg.Simulations; sims++ {
		if s.cfg.TimeLimit > 0 && time.Since(start) > s.cfg.TimeLimit {
			break
		}
		s.simulate(root, b)
	}

	best := root.bestChild()
	if best == nil {
		// 一次仿真都没跑完的兜底:直接拿第一手
		mv := rootMoves[0]
		return SearchResult{
			BestMove: &mv,
			WinProb:  0.5,
			Sims:     sims,
			TimeUsed: time.Since(start),
			PV:       []qirkat.Move{mv},
		}
	}

	// 子节点的胜率是根方视角,黑方行棋时换算成白方胜率。
	winProb := float32(best.wins / float64(best.visits))
	if b.WhoseMove() == qirkat.Black {
		winProb = 1 - winProb
	}

	mv := best.move
	return SearchResult{
		BestMove: &mv,
		WinProb:  winProb,
		Sims:     sims,
		TimeUsed: time.Since(start),
		PV:       []qirkat.Move{mv},
	}
}

// simulate 单次仿真:Selection -> Expansion -> Playout -> Backup。
func (s *Searcher) simulate(root *node, base *qirkat.Board) {
	b := base.Copy()
	nd := root

	// Selection:没有未试着法时一路按 UCB 挑孩子往下走
	for nd.expanded && !nd.terminal && len(nd.untried) == 0 {
		c := s.selectChild(nd)
		if c == nil {
			break
		}
		nd = c
		b.MakeMove(nd.move)
	}

	// Expansion:第一次到达的节点先枚举它的整回合着法
	if !nd.expanded && !nd.terminal {
		nd.untried = engine.TurnMoves(b)
		nd.expanded = true
		if len(nd.untried) == 0 {
			nd.terminal = true
		}
	}

	var winner qirkat.PieceColor
	switch {
	case nd.terminal:
		// 轮到谁走不了谁就输
		winner = b.WhoseMove().Opposite()
	case len(nd.untried) > 0:
		i := s.rng.Intn(len(nd.untried))
		mv := nd.untried[i]
		nd.untried[i] = nd.untried[len(nd.untried)-1]
		nd.untried = nd.untried[:len(nd.untried)-1]

		mover := b.WhoseMove()
		b.MakeMove(mv)
		child := &node{move: mv, mover: mover, parent: nd}
		nd.children = append(nd.children, child)
		nd = child
		winner = s.playout(b)
	default:
		winner = s.playout(b)
	}

	// Backup:赢家是哪方,走进该节点的那方就加分
	for n := nd; n != nil; n = n.parent {
		n.visits++
		switch winner {
		case qirkat.Empty:
			n.wins += 0.5
		case n.mover:
			n.wins++
		}
	}
}

// selectChild 经典 UCB1:平均胜率加探索项。
func (s *Searcher) selectChild(nd *node) *node {
	lnN := math.Log(float64(nd.visits) + 1)
	var best *node
	bestScore := math.Inf(-1)
	for _, c := range nd.children {
		var score float64
		if c.visits == 0 {
			score = math.Inf(1)
		} else {
			score = c.wins/float64(c.visits) + s.cfg.Cpuct*math.Sqrt(lnN/float64(c.visits))
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// playout 随机走到终局或步数封顶,封顶时按子力差定胜负。
func (s *Searcher) playout(b *qirkat.Board) qirkat.PieceColor {
	for ply := 0; ply < s.cfg.PlayoutCap; ply++ {
		moves := engine.TurnMoves(b)
		if len(moves) == 0 {
			return b.WhoseMove().Opposite()
		}
		b.MakeMove(moves[s.rng.Intn(len(moves))])
	}
	d := b.PieceCount(qirkat.White) - b.PieceCount(qirkat.Black)
	if d > 0 {
		return qirkat.White
	}
	if d < 0 {
		return qirkat.Black
	}
	return qirkat.Empty
}

// bestChild 按访问次数选,访问多的才是真被看好的。
func (nd *node) bestChild() *node {
	var best *node
	for _, c := range nd.children {
		if best == nil || c.visits > best.visits {
			best = c
		}
	}
	return best
}
