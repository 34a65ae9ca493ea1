package qirkat

// Observer 在棋盘每次成功变更（clear/set/move/undo）之后被回调。
type Observer interface {
	PositionChanged(b *Board)
}

// AddObserver 注册观察者。注册是按棋盘实例来的，没有全局注册表。
func (b *Board) AddObserver(o Observer) {
	b.observers = append(b.observers, o)
}

func (b *Board) notifyObservers() {
	for _, o := range b.observers {
		o.PositionChanged(b)
	}
}

// BoardView 是只读查询集合，*Board 和 *ConstantBoard 都实现它。
// 拿着 BoardView 的一方要改盘面，只能先 Copy 出自己的副本。
type BoardView interface {
	Get(k int) PieceColor
	WhoseMove() PieceColor
	GameOver() bool
	Moves() []Move
	LegalMove(m Move) bool
	JumpPossible() bool
	JumpPossibleFrom(k int) bool
	JumpsFrom(k int) []Move
	MoveCount() int
	PieceCount(c PieceColor) int
	Hash() uint64
	Encode() string
	String() string
	Copy() *Board
}

var (
	_ BoardView = (*Board)(nil)
	_ BoardView = (*ConstantBoard)(nil)
	_ Observer  = (*ConstantBoard)(nil)
)

const readOnlyPanic = "qirkat: mutating a read-only board view"

// ConstantBoard 是某个可变棋盘的只读镜像：通过观察者回调同步整份
// 状态，写操作一律 panic。给控制器往玩家手里递盘面用。
type ConstantBoard struct {
	b *Board
}

// ConstantView 建一个只读镜像并把它挂到 b 的观察者列表上。
func (b *Board) ConstantView() *ConstantBoard {
	cb := &ConstantBoard{b: b.Copy()}
	b.AddObserver(cb)
	return cb
}

// PositionChanged 每次源棋盘变更时整份复制最新状态。
func (cb *ConstantBoard) PositionChanged(src *Board) {
	cb.b = src.Copy()
}

func (cb *ConstantBoard) Get(k int) PieceColor           { return cb.b.Get(k) }
func (cb *ConstantBoard) WhoseMove() PieceColor          { return cb.b.WhoseMove() }
func (cb *ConstantBoard) GameOver() bool                 { return cb.b.GameOver() }
func (cb *ConstantBoard) Moves() []Move                  { return cb.b.Moves() }
func (cb *ConstantBoard) LegalMove(m Move) bool          { return cb.b.LegalMove(m) }
func (cb *ConstantBoard) JumpPossible() bool             { return cb.b.JumpPossible() }
func (cb *ConstantBoard) JumpPossibleFrom(k int) bool    { return cb.b.JumpPossibleFrom(k) }
func (cb *ConstantBoard) JumpsFrom(k int) []Move         { return cb.b.JumpsFrom(k) }
func (cb *ConstantBoard) MoveCount() int                 { return cb.b.MoveCount() }
func (cb *ConstantBoard) PieceCount(c PieceColor) int    { return cb.b.PieceCount(c) }
func (cb *ConstantBoard) Hash() uint64                   { return cb.b.Hash() }
func (cb *ConstantBoard) Encode() string                 { return cb.b.Encode() }
func (cb *ConstantBoard) String() string                 { return cb.b.String() }

// Copy 交出一份独立的可变副本，搜索方在副本上推演。
func (cb *ConstantBoard) Copy() *Board { return cb.b.Copy() }

// 以下写操作对只读镜像都是编程错误。

func (cb *ConstantBoard) Clear() { panic(readOnlyPanic) }

func (cb *ConstantBoard) SetPieces(string, PieceColor) error { panic(readOnlyPanic) }

func (cb *ConstantBoard) MakeMove(Move) bool { panic(readOnlyPanic) }

func (cb *ConstantBoard) Undo() bool { panic(readOnlyPanic) }
