package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"qirkat/internal/engine"
	"qirkat/internal/qirkat"
)

// TestCase 一个局面的走法快照：布局、行棋方、该回合全部走法的记法。
// 给其它实现交叉核对走法生成用。
type TestCase struct {
	Position string   `json:"position"`
	ToMove   string   `json:"toMove"`
	Moves    []string `json:"moves"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games to record")
	maxMoves := flag.Int("maxmoves", 200, "move cap per game")
	seed := flag.Int64("seed", 0, "random seed, 0 for clock seeding")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		b := qirkat.NewBoard()
		for b.MoveCount() < *maxMoves && !b.GameOver() {
			moves := engine.TurnMoves(b)
			if len(moves) == 0 {
				break
			}
			notations := make([]string, len(moves))
			for i, m := range moves {
				notations[i] = m.String()
			}
			sort.Strings(notations)
			testCases = append(testCases, TestCase{
				Position: b.Encode(),
				ToMove:   b.WhoseMove().String(),
				Moves:    notations,
			})
			// 随机走一步
			b.MakeMove(moves[rng.Intn(len(moves))])
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n",
		len(testCases), *numGames, s, *out)
}
