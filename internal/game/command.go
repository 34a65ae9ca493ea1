package game

import (
	"fmt"
	"regexp"
	"strings"

	"qirkat/internal/qirkat"
)

type commandKind int8

const (
	cmdNone commandKind = iota
	cmdMove
	cmdClear
	cmdStart
	cmdAuto
	cmdManual
	cmdSet
	cmdDump
	cmdSeed
	cmdLoad
	cmdHelp
	cmdQuit
	cmdError
)

// movePattern 匹配走子记法：至少两个用连字符相连的格名。
var movePattern = regexp.MustCompile(`^[a-e][1-5](-[a-e][1-5])+$`)

// command 是解析后的一条输入：种类加操作数。
type command struct {
	kind commandKind
	args []string
}

// parseCommand 把一行输入解析成命令。命令词不分大小写，
// 空行解析成 cmdNone，认不出来的输入解析成 cmdError。
// 走子命令的记法统一转成小写放进 args[0]。
func parseCommand(line string) command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdNone}
	}
	head := strings.ToLower(fields[0])
	if len(fields) == 1 && movePattern.MatchString(head) {
		return command{kind: cmdMove, args: []string{head}}
	}
	switch head {
	case "clear":
		return command{kind: cmdClear}
	case "start":
		return command{kind: cmdStart}
	case "auto":
		return command{kind: cmdAuto, args: fields[1:]}
	case "manual":
		return command{kind: cmdManual, args: fields[1:]}
	case "set":
		return command{kind: cmdSet, args: fields[1:]}
	case "dump":
		return command{kind: cmdDump}
	case "seed":
		return command{kind: cmdSeed, args: fields[1:]}
	case "load":
		return command{kind: cmdLoad, args: fields[1:]}
	case "help":
		return command{kind: cmdHelp}
	case "quit":
		return command{kind: cmdQuit}
	}
	return command{kind: cmdError, args: fields}
}

// parseMoveNotation 把 "a1-b2" 或连跳 "a1-c3-e1" 解析成走子链。
// 棋盘核心只认坐标对，文本记法在这一层消化掉。
func parseMoveNotation(s string) (*qirkat.Move, error) {
	s = strings.ToLower(s)
	if !movePattern.MatchString(s) {
		return nil, fmt.Errorf("bad move notation %q", s)
	}
	parts := strings.Split(s, "-")
	var head *qirkat.Move
	for i := 0; i+1 < len(parts); i++ {
		from, to := parts[i], parts[i+1]
		mv, err := qirkat.NewMove(
			int(from[0]-'a'), int(from[1]-'1'),
			int(to[0]-'a'), int(to[1]-'1'), nil)
		if err != nil {
			return nil, err
		}
		head = qirkat.Join(head, &mv)
	}
	return head, nil
}

// parseColor 解析 white/black 操作数，大小写不敏感。
func parseColor(s string) (qirkat.PieceColor, bool) {
	switch strings.ToLower(s) {
	case "white":
		return qirkat.White, true
	case "black":
		return qirkat.Black, true
	}
	return qirkat.Empty, false
}
