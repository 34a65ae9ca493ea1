package game

import "qirkat/internal/qirkat"

// ManualPlayer 从命令输入里读人类的走子。
type ManualPlayer struct {
	game  *Game
	color qirkat.PieceColor
}

func newManualPlayer(g *Game, c qirkat.PieceColor) *ManualPlayer {
	return &ManualPlayer{game: g, color: c}
}

func (p *ManualPlayer) Color() qirkat.PieceColor { return p.color }

// NextMove 反复读输入直到拿到一手合法棋。不合法就报错重读，
// 读不到输入或状态离开对局态时返回 nil。
func (p *ManualPlayer) NextMove() *qirkat.Move {
	prompt := p.color.String() + ": "
	for {
		cmd := p.game.moveCommand(prompt)
		if cmd == nil {
			return nil
		}
		mv, err := parseMoveNotation(cmd.args[0])
		if err != nil {
			p.game.reporter.ErrMsg("%v", err)
			continue
		}
		if !p.game.view.LegalMove(*mv) {
			p.game.reporter.ErrMsg("Illegal move, try again.")
			continue
		}
		return mv
	}
}
