package engine

import (
	"math/rand"
	"time"
)

// Engine 持有置换表、节点计数和随机源,一次搜索一个实例;
// 根节点并行时每个分支各开一个局部 Engine,互不共享 TT。
type Engine struct {
	tt    map[uint64]ttEntry
	nodes int64
	rng   *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{
		tt:  make(map[uint64]ttEntry, 1<<16),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetSeed 固定随机源,同一种子同一局面选同一手,复盘用。
func (e *Engine) SetSeed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// newLocalEngine 根节点并行分支用的小引擎,TT 开小一点够用。
func newLocalEngine() *Engine {
	return &Engine{tt: make(map[uint64]ttEntry, 1<<14)}
}
