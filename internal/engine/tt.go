package engine

import "qirkat/internal/qirkat"

// 简单 TT 条目,键直接用盘面的增量 Zobrist 哈希。
type ttEntry struct {
	Key   uint64
	Depth int
	Score int
	Move  qirkat.Move
}

// 存入 TT:超限整表重建,同键保留更深的结果。
func (e *Engine) storeTT(key uint64, depth int, score int, mv qirkat.Move) {
	if len(e.tt) > 1_000_000 {
		e.tt = make(map[uint64]ttEntry, 1<<16)
	}
	old, ok := e.tt[key]
	if !ok || depth >= old.Depth {
		e.tt[key] = ttEntry{
			Key:   key,
			Depth: depth,
			Score: score,
			Move:  mv,
		}
	}
}
