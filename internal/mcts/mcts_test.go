package mcts

import (
	"testing"

	"qirkat/internal/qirkat"
)

func TestSearchReturnsLegalMove(t *testing.T) {
	b := qirkat.NewBoard()
	before := b.Encode()

	s := NewSearcher(Config{Simulations: 200})
	s.SetSeed(5)
	res := s.Search(b)

	if res.BestMove == nil {
		t.Fatalf("BestMove: got=nil")
	}
	if !b.LegalMove(*res.BestMove) {
		t.Fatalf("best move not legal: %v", res.BestMove)
	}
	if res.Sims != 200 {
		t.Fatalf("sims: got=%d want=200", res.Sims)
	}
	if res.WinProb < 0 || res.WinProb > 1 {
		t.Fatalf("win probability out of range: got=%v", res.WinProb)
	}
	// 搜索不许动调用方的盘面。
	if got := b.Encode(); got != before {
		t.Fatalf("caller board changed by search: got=%q want=%q", got, before)
	}
}

func TestSearchSeesForcedWin(t *testing.T) {
	// 白吃掉唯一黑子后黑方无棋可走,每次仿真都应当以白胜收场。
	b := qirkat.NewBoard()
	if err := b.SetPieces("----- --w-- --b-- ----- -----", qirkat.White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}

	s := NewSearcher(Config{Simulations: 100})
	s.SetSeed(9)
	res := s.Search(b)

	if res.BestMove == nil {
		t.Fatalf("BestMove: got=nil")
	}
	if got, want := res.BestMove.String(), "c2-c4"; got != want {
		t.Fatalf("best move: got=%q want=%q", got, want)
	}
	if res.WinProb <= 0.9 {
		t.Fatalf("win probability: got=%v want>0.9", res.WinProb)
	}
}

func TestSearchAvoidsLosingStep(t *testing.T) {
	// c2-c3 送吃后白被吃光必败,另两手平稳;仿真要避开送吃。
	b := qirkat.NewBoard()
	if err := b.SetPieces("----- --w-- ----- --b-- -----", qirkat.White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}

	s := NewSearcher(Config{Simulations: 400})
	s.SetSeed(11)
	res := s.Search(b)

	if res.BestMove == nil {
		t.Fatalf("BestMove: got=nil")
	}
	if got := res.BestMove.String(); got == "c2-c3" {
		t.Fatalf("picked the losing step: %q", got)
	}
}

func TestSearchStuckReturnsNil(t *testing.T) {
	b := qirkat.NewBoard()
	if err := b.SetPieces("b---- ----- ----- ----- ----w", qirkat.Black); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	res := NewSearcher(Config{Simulations: 50}).Search(b)
	if res.BestMove != nil {
		t.Fatalf("BestMove for stuck side: got=%v want=nil", res.BestMove)
	}
	if res.Sims != 0 {
		t.Fatalf("sims for stuck side: got=%d want=0", res.Sims)
	}
}

func TestSearchSeededReproducible(t *testing.T) {
	pick := func() string {
		b := qirkat.NewBoard()
		s := NewSearcher(Config{Simulations: 150})
		s.SetSeed(21)
		res := s.Search(b)
		if res.BestMove == nil {
			t.Fatalf("BestMove: got=nil")
		}
		return res.BestMove.String()
	}
	first := pick()
	second := pick()
	if first != second {
		t.Fatalf("seeded search not reproducible: got=%q and %q", first, second)
	}
}
