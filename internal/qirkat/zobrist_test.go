package qirkat

import (
	"math/rand"
	"testing"
)

func TestHashMatchesRecompute(t *testing.T) {
	b := NewBoard()
	if got, want := b.Hash(), b.calculateHash(); got != want {
		t.Fatalf("initial hash mismatch: got=%d want=%d", got, want)
	}

	if err := b.SetPieces("w---- b---- -b--- ----- -----", White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	if got, want := b.Hash(), b.calculateHash(); got != want {
		t.Fatalf("hash mismatch after set: got=%d want=%d", got, want)
	}

	b.Clear()
	if got, want := b.Hash(), b.calculateHash(); got != want {
		t.Fatalf("hash mismatch after clear: got=%d want=%d", got, want)
	}
}

func TestHashDependsOnSideToMove(t *testing.T) {
	const layout = "w---- ----- ----- ----- ----b"
	w := NewBoard()
	if err := w.SetPieces(layout, White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	bl := NewBoard()
	if err := bl.SetPieces(layout, Black); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	if w.Hash() == bl.Hash() {
		t.Fatalf("hash ignores side to move: %d", w.Hash())
	}
}

func TestHashIncrementalAlongGame(t *testing.T) {
	b := NewBoard()
	rng := rand.New(rand.NewSource(7))
	start := b.Hash()

	plies := 0
	for ; plies < 40; plies++ {
		moves := b.Moves()
		if len(moves) == 0 {
			break
		}
		mv := moves[rng.Intn(len(moves))]
		if !b.MakeMove(mv) {
			t.Fatalf("generated move rejected at ply %d: %v", plies, mv)
		}
		if got, want := b.Hash(), b.calculateHash(); got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%v", plies, got, want, mv)
		}
		if got, want := depthSum(b), NumSquares+b.MoveCount(); got != want {
			t.Fatalf("direction stacks out of balance at ply %d: got=%d want=%d", plies, got, want)
		}
	}

	for b.Undo() {
	}
	if got := b.Hash(); got != start {
		t.Fatalf("hash not restored after unwinding: got=%d want=%d", got, start)
	}
	if got, want := b.Encode(), NewBoard().Encode(); got != want {
		t.Fatalf("position not restored after unwinding: got=%q want=%q", got, want)
	}
	t.Logf("played and unwound %d plies", plies)
}
