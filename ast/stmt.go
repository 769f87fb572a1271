package ast

// Stmt is the sum type of statement nodes. Every concrete statement type
// implements it via a marker method, the same tagged-variant-via-interface
// pattern the type denoter Kind uses.
type Stmt interface {
	stmtKind()
	Base() *Node
}

// CodeBlock is a brace-delimited sequence of statements.
type CodeBlock struct {
	Node
	Stmts []Stmt
}

func (*CodeBlock) stmtKind()    {}
func (c *CodeBlock) Base() *Node { return &c.Node }

// NullStmt is an empty statement (a lone ';').
type NullStmt struct{ Node }

func (*NullStmt) stmtKind()    {}
func (s *NullStmt) Base() *Node { return &s.Node }

// CodeBlockStmt wraps a nested CodeBlock as a statement in its own right
// (an explicit "{ ... }" used as a single statement, e.g. a loop body).
type CodeBlockStmt struct {
	Node
	Body *CodeBlock
}

func (*CodeBlockStmt) stmtKind()    {}
func (s *CodeBlockStmt) Base() *Node { return &s.Node }

// ForLoopStmt is a C-style 'for' loop.
type ForLoopStmt struct {
	Node
	Init      Stmt // may be nil
	Condition Expr // may be nil
	Iteration Expr // may be nil
	Body      Stmt
}

func (*ForLoopStmt) stmtKind()    {}
func (s *ForLoopStmt) Base() *Node { return &s.Node }

// WhileLoopStmt is a 'while' loop.
type WhileLoopStmt struct {
	Node
	Condition Expr
	Body      Stmt
}

func (*WhileLoopStmt) stmtKind()    {}
func (s *WhileLoopStmt) Base() *Node { return &s.Node }

// DoWhileLoopStmt is a 'do { ... } while (...)' loop.
type DoWhileLoopStmt struct {
	Node
	Body      Stmt
	Condition Expr
}

func (*DoWhileLoopStmt) stmtKind()    {}
func (s *DoWhileLoopStmt) Base() *Node { return &s.Node }

// IfStmt is an 'if' statement with an optional 'else' branch.
type IfStmt struct {
	Node
	Condition Expr
	Body      Stmt
	Else      Stmt // may be nil; either another IfStmt (else-if) or a plain body
}

func (*IfStmt) stmtKind()    {}
func (s *IfStmt) Base() *Node { return &s.Node }

// SwitchCase is one 'case expr:'/'default:' arm of a SwitchStmt.
type SwitchCase struct {
	Node
	// CaseExpr is nil for the 'default' arm.
	CaseExpr Expr
	Stmts    []Stmt
}

// SwitchStmt is a 'switch' statement.
type SwitchStmt struct {
	Node
	Selector Expr
	Cases    []SwitchCase
}

func (*SwitchStmt) stmtKind()    {}
func (s *SwitchStmt) Base() *Node { return &s.Node }

// ExprStmt wraps a bare expression used as a statement, e.g. a function
// call or assignment with a discarded result.
type ExprStmt struct {
	Node
	Expr Expr
}

func (*ExprStmt) stmtKind()    {}
func (s *ExprStmt) Base() *Node { return &s.Node }

// ReturnStmt is a 'return' statement, with an optional value.
type ReturnStmt struct {
	Node
	Expr Expr // may be nil for a void return

	// IsEndOfFunction marks a return statement that is the final statement
	// of its enclosing function body; the generator may omit an explicit
	// 'return' for it when emitting a function that falls through anyway.
	IsEndOfFunction bool
}

func (*ReturnStmt) stmtKind()    {}
func (s *ReturnStmt) Base() *Node { return &s.Node }

// CtrlTransfer distinguishes the HLSL control-transfer keywords.
type CtrlTransfer int

const (
	CtrlTransferUndefined CtrlTransfer = iota
	CtrlTransferBreak
	CtrlTransferContinue
	CtrlTransferDiscard
)

// CtrlTransferStmt is a 'break', 'continue', or 'discard' statement.
type CtrlTransferStmt struct {
	Node
	Transfer CtrlTransfer
}

func (*CtrlTransferStmt) stmtKind()    {}
func (s *CtrlTransferStmt) Base() *Node { return &s.Node }

// VarDeclStmt, BufferDeclStmt, SamplerDeclStmt, StructDeclStmt,
// AliasDeclStmt, FunctionDecl, and UniformBufferDecl (all declared in
// decl.go) are statements too: HLSL allows declarations anywhere a
// statement is legal. Give each the stmtKind/Base methods here to keep all
// the Stmt sum-type wiring in one file.

func (*VarDeclStmt) stmtKind()         {}
func (s *VarDeclStmt) Base() *Node      { return &s.Node }
func (*BufferDeclStmt) stmtKind()      {}
func (s *BufferDeclStmt) Base() *Node   { return &s.Node }
func (*SamplerDeclStmt) stmtKind()     {}
func (s *SamplerDeclStmt) Base() *Node  { return &s.Node }
func (*StructDeclStmt) stmtKind()      {}
func (s *StructDeclStmt) Base() *Node   { return &s.Node }
func (*AliasDeclStmt) stmtKind()       {}
func (s *AliasDeclStmt) Base() *Node    { return &s.Node }
func (*FunctionDecl) stmtKind()        {}
func (f *FunctionDecl) Base() *Node     { return &f.Node }
func (*UniformBufferDecl) stmtKind()   {}
func (u *UniformBufferDecl) Base() *Node { return &u.Node }
