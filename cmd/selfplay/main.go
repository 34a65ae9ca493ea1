package main

import (
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"qirkat/internal/engine"
	"qirkat/internal/mcts"
	"qirkat/internal/qirkat"
)

// matchResult 一局的摘要，带短 id 方便在并行日志里对上号。
type matchResult struct {
	id     string
	moves  int
	winner string // ab / mcts / draw
	took   time.Duration
}

// tally 汇总战绩。多局并行跑，加锁累计。
type tally struct {
	mu       sync.Mutex
	abWins   int
	mctsWins int
	draws    int
	plies    int
}

func (t *tally) add(r matchResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch r.winner {
	case "ab":
		t.abWins++
	case "mcts":
		t.mctsWins++
	default:
		t.draws++
	}
	t.plies += r.moves
}

func main() {
	games := flag.Int("games", 10, "number of games to play")
	abDepth := flag.Int("ab-depth", 4, "alpha-beta search depth")
	mctsSims := flag.Int("mcts-sims", 400, "MCTS simulations per move")
	maxMoves := flag.Int("maxmoves", 400, "move cap per game")
	parallel := flag.Int("parallel", 4, "games running concurrently")
	seed := flag.Int64("seed", 0, "base random seed, 0 for clock seeding")
	flag.Parse()

	base := *seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	abName := fmt.Sprintf("Alpha-Beta (depth %d)", *abDepth)
	mctsName := fmt.Sprintf("MCTS (%d sims)", *mctsSims)
	log.Printf("%s vs %s, %d games, base seed %d", abName, mctsName, *games, base)

	var t tally
	var eg errgroup.Group
	eg.SetLimit(*parallel)
	start := time.Now()
	for i := 0; i < *games; i++ {
		i := i
		eg.Go(func() error {
			r := playGame(i, base+int64(i), *abDepth, *mctsSims, *maxMoves)
			t.add(r)
			log.Printf("game %s: %s in %d moves (%v)",
				r.id, r.winner, r.moves, r.took.Round(time.Millisecond))
			return nil
		})
	}
	_ = eg.Wait()

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", abName, t.abWins)
	fmt.Printf("%s: %d\n", mctsName, t.mctsWins)
	fmt.Printf("Move-cap draws: %d\n", t.draws)
	fmt.Printf("Total plies: %d, wall time: %v\n", t.plies, time.Since(start).Round(time.Millisecond))
}

// playGame 跑一局。偶数局 alpha-beta 执白，奇数局换边，抵消先手优势。
func playGame(i int, seed int64, abDepth, mctsSims, maxMoves int) matchResult {
	ab := engine.NewEngine()
	ab.SetSeed(seed)
	mc := mcts.NewSearcher(mcts.Config{Simulations: mctsSims})
	mc.SetSeed(seed + 1)

	abIsWhite := i%2 == 0
	b := qirkat.NewBoard()
	start := time.Now()
	for b.MoveCount() < maxMoves && !b.GameOver() {
		abTurn := (b.WhoseMove() == qirkat.White) == abIsWhite
		var mv *qirkat.Move
		if abTurn {
			mv = ab.Search(b, engine.SearchConfig{MaxDepth: abDepth}).BestMove
		} else {
			mv = mc.Search(b).BestMove
		}
		if mv == nil {
			break
		}
		b.MakeMove(*mv)
	}

	r := matchResult{
		id:    uuid.NewString()[:8],
		moves: b.MoveCount(),
		took:  time.Since(start),
	}
	switch {
	case !b.GameOver():
		r.winner = "draw" // 撞上步数上限
	case (b.WhoseMove() == qirkat.White) == abIsWhite:
		r.winner = "mcts" // 轮到 alpha-beta 却无棋可走
	default:
		r.winner = "ab"
	}
	return r
}
