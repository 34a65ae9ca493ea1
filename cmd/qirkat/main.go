package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"qirkat/internal/game"
)

func main() {
	white := flag.String("white", "manual", "white player: manual or auto")
	black := flag.String("black", "auto", "black player: manual or auto")
	searcher := flag.String("searcher", game.SearcherAlphaBeta, "engine for auto players: ab or mcts")
	depth := flag.Int("depth", 6, "alpha-beta search depth")
	sims := flag.Int("sims", 800, "MCTS simulations per move")
	moveTime := flag.Duration("time", 0, "per-move time limit, 0 for none")
	seed := flag.Int64("seed", 0, "random seed for auto players, 0 for clock seeding")
	quiet := flag.Bool("quiet", false, "suppress prompts")
	flag.Parse()

	cfg := game.Config{
		WhiteAuto: playerIsAuto("white", *white),
		BlackAuto: playerIsAuto("black", *black),
		Searcher:  strings.ToLower(*searcher),
		Depth:     *depth,
		Sims:      *sims,
		MoveTime:  *moveTime,
		Seed:      *seed,
		Prompt:    !*quiet,
	}
	if cfg.Searcher != game.SearcherAlphaBeta && cfg.Searcher != game.SearcherMCTS {
		log.Fatalf("bad -searcher value %q (want ab or mcts)", *searcher)
	}

	// 不带参数读标准输入；带一个命令文件参数就照本宣科，不打提示符
	in := io.Reader(os.Stdin)
	switch flag.NArg() {
	case 0:
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("cannot open command file: %v", err)
		}
		defer f.Close()
		in = f
		cfg.Prompt = false
	default:
		log.Fatalf("usage: qirkat [flags] [command-file]")
	}

	g := game.NewGame(in, os.Stdout, game.NewTextReporter(os.Stdout), cfg)
	g.Run()
}

// playerIsAuto 解析 -white/-black 的取值。
func playerIsAuto(name, val string) bool {
	switch strings.ToLower(val) {
	case "manual":
		return false
	case "auto":
		return true
	}
	log.Fatalf("bad -%s value %q (want manual or auto)", name, val)
	return false
}
