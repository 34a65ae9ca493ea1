package qirkat

import "sync"

var (
	zobristOnce   sync.Once
	zobristPieces [2][NumSquares]uint64
	zobristSide   uint64
)

// initZobrist 用 splitmix64 生成固定的随机键，全进程只算一次。
func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}
		for side := 0; side < 2; side++ {
			for sq := 0; sq < NumSquares; sq++ {
				zobristPieces[side][sq] = next()
			}
		}
		zobristSide = next()
	})
}

// pieceKey 返回某格某色的哈希键，空格键为 0，XOR 聚合时自然消掉。
func pieceKey(c PieceColor, k int) uint64 {
	if k < 0 || k >= NumSquares {
		return 0
	}
	switch c {
	case White:
		return zobristPieces[0][k]
	case Black:
		return zobristPieces[1][k]
	}
	return 0
}

// calculateHash 全量重算当前局面的 Zobrist 哈希。
// 走子路径上 set/flipTurn 做增量维护，两边必须永远一致。
func (b *Board) calculateHash() uint64 {
	initZobrist()
	var h uint64
	for k := 0; k < NumSquares; k++ {
		h ^= pieceKey(b.squares[k], k)
	}
	if b.whoseMove == Black {
		h ^= zobristSide
	}
	return h
}

// Hash 返回增量维护的局面哈希，搜索的置换表用它做键。
func (b *Board) Hash() uint64 { return b.hash }
