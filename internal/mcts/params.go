package mcts

import "time"

// Config MCTS 搜索配置
type Config struct {
	Simulations int           // 仿真次数(Playouts)
	TimeLimit   time.Duration // 时间限制(0 表示不限制)
	Cpuct       float64       // UCB 探索常数(通常 1.0 - 2.0)
	PlayoutCap  int           // 随机走子的步数封顶,防止超长对局
}

func DefaultConfig() Config {
	return Config{
		Simulations: 800,
		TimeLimit:   0,
		Cpuct:       1.4,
		PlayoutCap:  160,
	}
}
