package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"qirkat/internal/engine"
	"qirkat/internal/qirkat"
)

func main() {
	pos := flag.String("pos", "", "board layout, 25 of w/b/- bottom row first (empty = start position)")
	turn := flag.String("turn", "white", "side to move: white or black")
	depth := flag.Int("depth", 4, "engine trace depth, 0 to skip the search")
	flag.Parse()

	b := qirkat.NewBoard()
	if *pos != "" {
		c := qirkat.White
		if strings.EqualFold(*turn, "black") {
			c = qirkat.Black
		}
		if err := b.SetPieces(*pos, c); err != nil {
			log.Fatalf("bad position: %v", err)
		}
	}

	fmt.Println(b)
	fmt.Println("encode:", b.Encode())
	fmt.Printf("hash: %#016x\n", b.Hash())
	fmt.Printf("to move: %v, game over: %v, jump possible: %v\n",
		b.WhoseMove(), b.GameOver(), b.JumpPossible())

	moves := engine.TurnMoves(b)
	fmt.Printf("turn moves (%d):", len(moves))
	for _, m := range moves {
		fmt.Printf(" %s", m)
	}
	fmt.Println()

	if *depth > 0 && len(moves) > 0 {
		e := engine.NewEngine()
		e.SetSeed(1)
		res := e.Search(b, engine.SearchConfig{MaxDepth: *depth})
		fmt.Printf("best: %s  score: %d  winprob: %.3f  depth: %d  nodes: %d  time: %v\n",
			res.BestMove, res.Score, res.WinProb, res.Depth, res.Nodes, res.TimeUsed)
	}
}
