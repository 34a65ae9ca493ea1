package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// lineSource 是一层命令来源：主输入或 load 进来的文件。
// prompt 决定每次读之前要不要打印提示符。
type lineSource struct {
	scanner *bufio.Scanner
	prompt  bool
	closer  io.Closer
}

// sourceStack 把命令来源叠成栈：load 压一层，读完弹回下一层。
// 提示符写到 out，和棋盘输出共用一个流。
type sourceStack struct {
	srcs []*lineSource
	out  io.Writer
}

func newSourceStack(in io.Reader, prompt bool, out io.Writer) *sourceStack {
	s := &sourceStack{out: out}
	s.push(in, prompt, nil)
	return s
}

func (s *sourceStack) push(in io.Reader, prompt bool, closer io.Closer) {
	s.srcs = append(s.srcs, &lineSource{
		scanner: bufio.NewScanner(in),
		prompt:  prompt,
		closer:  closer,
	})
}

// pushFile 打开命令文件并压栈。文件里的命令不打提示符。
func (s *sourceStack) pushFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	s.push(f, false, f)
	return nil
}

// readLine 从栈顶读一行。当前层耗尽就关掉它、弹栈接着读，
// 所有来源都读完返回 false。
func (s *sourceStack) readLine(prompt string) (string, bool) {
	for len(s.srcs) > 0 {
		top := s.srcs[len(s.srcs)-1]
		if top.prompt {
			fmt.Fprint(s.out, prompt)
		}
		if top.scanner.Scan() {
			return top.scanner.Text(), true
		}
		if top.closer != nil {
			top.closer.Close()
		}
		s.srcs = s.srcs[:len(s.srcs)-1]
	}
	return "", false
}
