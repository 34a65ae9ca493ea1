package game

import (
	"qirkat/internal/engine"
	"qirkat/internal/mcts"
	"qirkat/internal/qirkat"
)

// AIPlayer 把走子交给搜索：先在局面快照上搜出一手，宣告后交还控制器落子。
// 引擎种类由会话配置决定，alpha-beta 或 MCTS 二选一。
type AIPlayer struct {
	game  *Game
	color qirkat.PieceColor
	ab    *engine.Engine
	mc    *mcts.Searcher
}

func newAIPlayer(g *Game, c qirkat.PieceColor) *AIPlayer {
	p := &AIPlayer{game: g, color: c}
	if g.cfg.Searcher == SearcherMCTS {
		p.mc = mcts.NewSearcher(mcts.Config{
			Simulations: g.cfg.Sims,
			TimeLimit:   g.cfg.MoveTime,
		})
	} else {
		p.ab = engine.NewEngine()
	}
	return p
}

func (p *AIPlayer) Color() qirkat.PieceColor { return p.color }

// SetSeed 固定搜索随机源，seed 命令经由它下发。
func (p *AIPlayer) SetSeed(seed int64) {
	if p.mc != nil {
		p.mc.SetSeed(seed)
	} else {
		p.ab.SetSeed(seed)
	}
}

// NextMove 在快照上搜索，不碰正式棋盘。搜不出棋返回 nil。
func (p *AIPlayer) NextMove() *qirkat.Move {
	snap := p.game.view.Copy()
	var mv *qirkat.Move
	if p.mc != nil {
		mv = p.mc.Search(snap).BestMove
	} else {
		mv = p.ab.Search(snap, engine.SearchConfig{
			MaxDepth:  p.game.cfg.Depth,
			TimeLimit: p.game.cfg.MoveTime,
		}).BestMove
	}
	if mv == nil {
		return nil
	}
	p.game.reporter.MoveMsg("%s moves %s.", p.color, mv)
	return mv
}
