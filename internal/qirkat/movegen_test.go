package qirkat

import (
	"sort"
	"strings"
	"testing"
)

// notations 把着法集合排序成记法串,方便整集合比对。
func notations(moves []Move) string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return strings.Join(out, " ")
}

func TestStartPositionMoves(t *testing.T) {
	b := NewBoard()
	if b.JumpPossible() {
		t.Fatalf("jump reported at start")
	}

	moves := b.Moves()
	if got, want := notations(moves), "b2-c3 c2-c3 d2-c3 d3-c3"; got != want {
		t.Fatalf("start moves: got=%q want=%q", got, want)
	}
	for _, m := range moves {
		if m.IsJump() {
			t.Fatalf("jump generated at start: %v", m)
		}
		if !b.LegalMove(m) {
			t.Fatalf("generated move not legal: %v", m)
		}
	}
}

func TestCapturePriority(t *testing.T) {
	b := NewBoard()
	if err := b.SetPieces("w---w b---- ----- ----- -----", White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}

	// a1 有跳可吃,全盘就只生成跳。
	if got, want := notations(b.Moves()), "a1-a3"; got != want {
		t.Fatalf("capture moves: got=%q want=%q", got, want)
	}
	if !b.JumpPossible() {
		t.Fatalf("JumpPossible: got=false want=true")
	}
	if !b.JumpPossibleFrom(0) {
		t.Fatalf("JumpPossibleFrom(0): got=false want=true")
	}
	if b.JumpPossibleFrom(4) {
		t.Fatalf("JumpPossibleFrom(4): got=true want=false")
	}

	// 有吃必吃:平移一概非法,哪怕走的是另一个子。
	if b.LegalMove(move(4, 9)) {
		t.Fatalf("quiet step legal while a capture exists")
	}
	if b.LegalMove(move(0, 1)) {
		t.Fatalf("quiet step by jumping piece legal while a capture exists")
	}
	if !b.LegalMove(move(0, 10)) {
		t.Fatalf("capture move not legal")
	}
}

func TestDirectionalRestriction(t *testing.T) {
	b := NewBoard()
	if err := b.SetPieces("----- -w--- ----- ----- ----b", White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	start := b.Encode()

	// 白 b2-c2 向右,黑随手 e5-e4。
	if !b.MakeMove(move(6, 7)) {
		t.Fatalf("b2-c2 rejected")
	}
	if !b.MakeMove(move(24, 19)) {
		t.Fatalf("e5-e4 rejected")
	}

	// 刚向右到达 c2,不许马上折回左边。
	if b.LegalMove(move(7, 6)) {
		t.Fatalf("immediate reversal legal: got=true want=false")
	}
	if got, want := notations(b.Moves()), "c2-c3 c2-d2"; got != want {
		t.Fatalf("restricted moves: got=%q want=%q", got, want)
	}
	if !b.LegalMove(move(7, 8)) {
		t.Fatalf("continuing right: got=false want=true")
	}
	if !b.LegalMove(move(7, 12)) {
		t.Fatalf("vertical step: got=false want=true")
	}

	// 再往右一格后,带左向分量的对角步同样被挡。
	if !b.MakeMove(move(7, 8)) {
		t.Fatalf("c2-d2 rejected")
	}
	if !b.MakeMove(move(19, 18)) {
		t.Fatalf("e4-d4 rejected")
	}
	if b.LegalMove(move(8, 7)) {
		t.Fatalf("lateral reversal legal at d2")
	}
	if b.LegalMove(move(8, 12)) {
		t.Fatalf("left-leaning diagonal legal after arriving rightward")
	}
	if !b.LegalMove(move(8, 14)) {
		t.Fatalf("right-leaning diagonal: got=false want=true")
	}
	if !b.LegalMove(move(8, 13)) {
		t.Fatalf("vertical step at d2: got=false want=true")
	}

	// 撤光历史,限制状态也要一并复原。
	for b.Undo() {
	}
	if got := b.Encode(); got != start {
		t.Fatalf("unwound position: got=%q want=%q", got, start)
	}
	if got := depthSum(b); got != NumSquares {
		t.Fatalf("unwound stacks: got=%d want=%d", got, NumSquares)
	}
	if !b.LegalMove(move(6, 7)) {
		t.Fatalf("b2-c2 not legal after unwinding")
	}
}

func TestParityDiagonalSteps(t *testing.T) {
	t.Run("EvenSquareHasDiagonals", func(t *testing.T) {
		b := NewBoard()
		if err := b.SetPieces("--w-- ----- ----- ----- b----", White); err != nil {
			t.Fatalf("SetPieces failed: %v", err)
		}
		want := "c1-b1 c1-b2 c1-c2 c1-d1 c1-d2"
		if got := notations(b.Moves()); got != want {
			t.Fatalf("even-square moves: got=%q want=%q", got, want)
		}
	})
	t.Run("OddSquareLacksDiagonals", func(t *testing.T) {
		b := NewBoard()
		if err := b.SetPieces("-w--- ----- ----- ----- b----", White); err != nil {
			t.Fatalf("SetPieces failed: %v", err)
		}
		want := "b1-a1 b1-b2 b1-c1"
		if got := notations(b.Moves()); got != want {
			t.Fatalf("odd-square moves: got=%q want=%q", got, want)
		}
	})
}

func TestJumpsFromIsPieceRelative(t *testing.T) {
	b := NewBoard()
	if err := b.SetPieces("----- --w-- --b-- ----- -----", White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}

	// 轮白走:生成的是白方的跳。
	if got, want := notations(b.Moves()), "c2-c4"; got != want {
		t.Fatalf("white moves: got=%q want=%q", got, want)
	}
	// 但 JumpsFrom 看的是格子上那个子,黑子的跳照样查得到。
	if got, want := notations(b.JumpsFrom(12)), "c3-c1"; got != want {
		t.Fatalf("black piece jumps: got=%q want=%q", got, want)
	}
	if !b.JumpPossibleFrom(12) {
		t.Fatalf("JumpPossibleFrom(12): got=false want=true")
	}
	if got := len(b.JumpsFrom(3)); got != 0 {
		t.Fatalf("jumps from empty square: got=%d want=0", got)
	}
	if got := len(b.JumpsFrom(-1)); got != 0 {
		t.Fatalf("jumps from invalid index: got=%d want=0", got)
	}
	if got := len(b.JumpsFrom(25)); got != 0 {
		t.Fatalf("jumps from invalid index: got=%d want=0", got)
	}
}

func TestColumnGuardsBlockWraparound(t *testing.T) {
	// d1 吃 e1 落点会绕到下一行,必须被列守卫拦下。
	b := NewBoard()
	if err := b.SetPieces("---wb ----- ----- ----- -----", White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	if got := len(b.JumpsFrom(3)); got != 0 {
		t.Fatalf("wraparound jump generated: got=%d want=0", got)
	}
	if got, want := notations(b.Moves()), "d1-c1 d1-d2"; got != want {
		t.Fatalf("edge moves: got=%q want=%q", got, want)
	}
}

func TestBackRowFreeze(t *testing.T) {
	t.Run("WhiteStepsFrozenOnFarRow", func(t *testing.T) {
		b := NewBoard()
		if err := b.SetPieces("----- ----- ----- ----- --w--", White); err != nil {
			t.Fatalf("SetPieces failed: %v", err)
		}
		if got := len(b.Moves()); got != 0 {
			t.Fatalf("frozen piece moves: got=%d want=0", got)
		}
		if !b.GameOver() {
			t.Fatalf("GameOver: got=false want=true")
		}
	})
	t.Run("WhiteJumpStillAllowed", func(t *testing.T) {
		b := NewBoard()
		if err := b.SetPieces("----- ----- ----- ----- -bw--", White); err != nil {
			t.Fatalf("SetPieces failed: %v", err)
		}
		if got, want := notations(b.Moves()), "c5-a5"; got != want {
			t.Fatalf("far-row jump: got=%q want=%q", got, want)
		}
		if b.GameOver() {
			t.Fatalf("GameOver: got=true want=false")
		}
	})
	t.Run("BlackFrozenOnBottomRow", func(t *testing.T) {
		b := NewBoard()
		if err := b.SetPieces("--b-- ----- ----- ----- -----", Black); err != nil {
			t.Fatalf("SetPieces failed: %v", err)
		}
		if got := len(b.Moves()); got != 0 {
			t.Fatalf("frozen piece moves: got=%d want=0", got)
		}
	})
	t.Run("BlackJumpStillAllowed", func(t *testing.T) {
		b := NewBoard()
		if err := b.SetPieces("-wb-- ----- ----- ----- -----", Black); err != nil {
			t.Fatalf("SetPieces failed: %v", err)
		}
		if got, want := notations(b.Moves()), "c1-a1"; got != want {
			t.Fatalf("bottom-row jump: got=%q want=%q", got, want)
		}
	})
}

func TestStepDirectionByColor(t *testing.T) {
	// 白向上走,黑向下走,倒退一概非法。
	b := NewBoard()
	if err := b.SetPieces("----- --w-- ----- --b-- -----", White); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	if b.LegalMove(move(7, 2)) {
		t.Fatalf("white backward step legal")
	}
	if !b.LegalMove(move(7, 12)) {
		t.Fatalf("white forward step not legal")
	}

	if err := b.SetPieces("----- --w-- ----- --b-- -----", Black); err != nil {
		t.Fatalf("SetPieces failed: %v", err)
	}
	if b.LegalMove(move(17, 22)) {
		t.Fatalf("black backward step legal")
	}
	if !b.LegalMove(move(17, 12)) {
		t.Fatalf("black forward step not legal")
	}
}
