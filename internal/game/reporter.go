package game

import (
	"fmt"
	"io"
)

// Reporter 汇报对局进展：走子宣告、错误、终局结果。
// 拆成接口是为了让测试把输出录下来断言。
type Reporter interface {
	MoveMsg(format string, args ...any)
	ErrMsg(format string, args ...any)
	OutcomeMsg(format string, args ...any)
}

// textReporter 把消息逐行写到输出流，错误带 "Error: " 前缀。
type textReporter struct {
	out io.Writer
}

// NewTextReporter 返回写纯文本的 Reporter。
func NewTextReporter(out io.Writer) Reporter {
	return &textReporter{out: out}
}

func (r *textReporter) MoveMsg(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *textReporter) ErrMsg(format string, args ...any) {
	fmt.Fprintf(r.out, "Error: "+format+"\n", args...)
}

func (r *textReporter) OutcomeMsg(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
