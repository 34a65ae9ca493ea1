package engine

import "qirkat/internal/qirkat"

// TurnMoves 枚举一整回合的候选着法:平移原样返回,跳吃则展开成
// 吃到不能再吃的完整连跳链。展开靠 MakeMove/Undo 在 b 上反复推演,
// 严格成对,返回前盘面复原;b 应当是调用方的私有副本。
func TurnMoves(b *qirkat.Board) []qirkat.Move {
	base := b.Moves()
	if len(base) == 0 || !b.JumpPossible() {
		return base
	}
	var out []qirkat.Move
	for _, first := range base {
		extendChain(b, first, &out)
	}
	return out
}

// extendChain 尝试把 chain 再延长一跳;无跳可续时整条链收进结果。
func extendChain(b *qirkat.Board, chain qirkat.Move, out *[]qirkat.Move) {
	if !b.MakeMove(chain) {
		return
	}
	conts := b.JumpsFrom(chain.LastTo())
	b.Undo()

	if len(conts) == 0 {
		*out = append(*out, chain)
		return
	}
	for i := range conts {
		next := conts[i]
		extendChain(b, *qirkat.Join(&chain, &next), out)
	}
}
