package game

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"qirkat/internal/qirkat"
)

//go:embed help.txt
var helpText string

// State 是控制器所处的阶段：设置态接配置命令，对局态向双方要棋。
type State int8

const (
	Setup State = iota
	Playing
)

// Config.Searcher 的取值。
const (
	SearcherAlphaBeta = "ab"
	SearcherMCTS      = "mcts"
)

// Config 汇集一场会话的可调项。零值是双人对走、缺省引擎参数。
type Config struct {
	WhiteAuto bool          // 白方交给引擎
	BlackAuto bool          // 黑方交给引擎
	Searcher  string        // 引擎种类 ab / mcts，空串按 ab
	Depth     int           // alpha-beta 最大深度，非正数用引擎缺省
	Sims      int           // MCTS 仿真次数，非正数用引擎缺省
	MoveTime  time.Duration // 单手时限，0 不限
	Seed      int64         // 非 0 时固定引擎随机源
	Prompt    bool          // 读主输入前打印提示符
}

// Game 驱动一整场会话：设置态读配置命令，开局后轮流向双方要棋，
// 终局报胜负，然后回到设置态等下一盘。
type Game struct {
	board *qirkat.Board
	view  *qirkat.ConstantBoard

	inputs   *sourceStack
	reporter Reporter
	out      io.Writer
	cfg      Config

	state         State
	whiteIsManual bool
	blackIsManual bool
	white, black  Player

	seeded bool
	seed   int64
	quit   bool
}

// NewGame 建一场会话，棋盘摆成开局局面。
func NewGame(in io.Reader, out io.Writer, rep Reporter, cfg Config) *Game {
	if cfg.Searcher == "" {
		cfg.Searcher = SearcherAlphaBeta
	}
	b := qirkat.NewBoard()
	g := &Game{
		board:         b,
		view:          b.ConstantView(),
		inputs:        newSourceStack(in, cfg.Prompt, out),
		reporter:      rep,
		out:           out,
		cfg:           cfg,
		whiteIsManual: !cfg.WhiteAuto,
		blackIsManual: !cfg.BlackAuto,
	}
	if cfg.Seed != 0 {
		g.seeded, g.seed = true, cfg.Seed
	}
	return g
}

// Board 返回棋盘的只读视图，展示层和测试用。
func (g *Game) Board() *qirkat.ConstantBoard { return g.view }

// Run 跑完整场会话，直到 quit 或输入耗尽。
func (g *Game) Run() {
	for !g.quit {
		for g.state == Setup && !g.quit {
			if !g.doCommand() {
				return
			}
		}
		if g.quit {
			return
		}
		g.white = g.newPlayer(qirkat.White, g.whiteIsManual)
		g.black = g.newPlayer(qirkat.Black, g.blackIsManual)
		for g.state == Playing && !g.quit && !g.board.GameOver() {
			p := g.white
			if g.board.WhoseMove() == qirkat.Black {
				p = g.black
			}
			mv := p.NextMove()
			if mv == nil {
				break
			}
			if g.state == Playing {
				g.board.MakeMove(*mv)
			}
		}
		if g.state == Playing && g.board.GameOver() {
			g.reportWinner()
		}
		g.state = Setup
	}
}

func (g *Game) newPlayer(c qirkat.PieceColor, manual bool) Player {
	if manual {
		return newManualPlayer(g, c)
	}
	p := newAIPlayer(g, c)
	if g.seeded {
		p.SetSeed(g.seed)
	}
	return p
}

// doCommand 从输入读一条命令并执行，输入耗尽返回 false。
func (g *Game) doCommand() bool {
	line, ok := g.inputs.readLine("qirkat: ")
	if !ok {
		return false
	}
	g.execute(parseCommand(line))
	return true
}

// moveCommand 对局中替棋手读命令：走子直接返回，
// 其余命令就地执行；执行后若离开对局态则返回 nil。
func (g *Game) moveCommand(prompt string) *command {
	for g.state == Playing && !g.quit {
		line, ok := g.inputs.readLine(prompt)
		if !ok {
			return nil
		}
		cmd := parseCommand(line)
		if cmd.kind == cmdMove {
			return &cmd
		}
		g.execute(cmd)
	}
	return nil
}

func (g *Game) execute(cmd command) {
	switch cmd.kind {
	case cmdNone:
	case cmdMove:
		g.doMove(cmd.args)
	case cmdClear:
		g.doClear()
	case cmdStart:
		g.state = Playing
	case cmdAuto:
		g.doAuto(cmd.args)
	case cmdManual:
		g.doManual(cmd.args)
	case cmdSet:
		g.doSet(cmd.args)
	case cmdDump:
		g.doDump()
	case cmdSeed:
		g.doSeed(cmd.args)
	case cmdLoad:
		g.doLoad(cmd.args)
	case cmdHelp:
		io.WriteString(g.out, helpText)
	case cmdQuit:
		g.quit = true
	default:
		g.reporter.ErrMsg("Command not understood")
	}
}

// doMove 处理设置态下直接敲进来的走子，用来摆棋谱。
// 对局态的走子不走这里，由 moveCommand 截下来交给人类棋手。
func (g *Game) doMove(args []string) {
	mv, err := parseMoveNotation(args[0])
	if err != nil {
		g.reporter.ErrMsg("%v", err)
		return
	}
	if !g.board.LegalMove(*mv) {
		g.reporter.ErrMsg("Illegal move: %s", mv)
		return
	}
	g.board.MakeMove(*mv)
}

func (g *Game) doClear() {
	g.board.Clear()
	g.state = Setup
}

func (g *Game) doAuto(args []string) {
	c, ok := colorOperand(args)
	if !ok {
		g.reporter.ErrMsg("Usage: auto white|black")
		return
	}
	g.state = Setup
	if c == qirkat.White {
		g.whiteIsManual = false
	} else {
		g.blackIsManual = false
	}
}

func (g *Game) doManual(args []string) {
	c, ok := colorOperand(args)
	if !ok {
		g.reporter.ErrMsg("Usage: manual white|black")
		return
	}
	g.state = Setup
	if c == qirkat.White {
		g.whiteIsManual = true
	} else {
		g.blackIsManual = true
	}
}

func colorOperand(args []string) (qirkat.PieceColor, bool) {
	if len(args) != 1 {
		return qirkat.Empty, false
	}
	return parseColor(args[0])
}

// doSet 整盘摆子并指定先手，摆完退回设置态。
func (g *Game) doSet(args []string) {
	if len(args) < 2 {
		g.reporter.ErrMsg("Usage: set white|black LAYOUT")
		return
	}
	c, ok := parseColor(args[0])
	if !ok {
		g.reporter.ErrMsg("Unknown color %q", args[0])
		return
	}
	if err := g.board.SetPieces(strings.Join(args[1:], " "), c); err != nil {
		g.reporter.ErrMsg("%v", err)
		return
	}
	g.state = Setup
}

func (g *Game) doDump() {
	fmt.Fprintf(g.out, "===\n%s\n===\n", g.board)
}

// doSeed 固定引擎随机源，已就位的棋手立刻生效，之后建的棋手开局时生效。
// 数字解析不了就换成固定的兜底种子。
func (g *Game) doSeed(args []string) {
	if len(args) != 1 {
		g.reporter.ErrMsg("Usage: seed N")
		return
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		v = math.MaxInt64
	}
	g.seeded, g.seed = true, v
	for _, p := range []Player{g.white, g.black} {
		if s, ok := p.(seeder); ok {
			s.SetSeed(v)
		}
	}
}

func (g *Game) doLoad(args []string) {
	if len(args) != 1 {
		g.reporter.ErrMsg("Usage: load FILE")
		return
	}
	if err := g.inputs.pushFile(args[0]); err != nil {
		g.reporter.ErrMsg("Cannot open file %s", args[0])
	}
}

// reportWinner 报胜负。终局时轮到谁谁就无棋可走，赢家是另一方。
func (g *Game) reportWinner() {
	msg := "White wins."
	if g.board.WhoseMove() == qirkat.White {
		msg = "Black wins."
	}
	g.reporter.OutcomeMsg(msg)
}
