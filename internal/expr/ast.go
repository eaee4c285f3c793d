package expr

// Expr is the root interface for parsed expressions.
type Expr interface {
	exprNode()
}

// ----- Literals -----

type IntLit struct {
	Value int64
}

func (*IntLit) exprNode() {}

type FloatLit struct {
	Value float64
}

func (*FloatLit) exprNode() {}

type BoolLit struct {
	Value bool
}

func (*BoolLit) exprNode() {}

type StringLit struct {
	Value string
}

func (*StringLit) exprNode() {}

type NullLit struct{}

func (*NullLit) exprNode() {}

// ListLit is a bracketed list literal, possibly nested.
type ListLit struct {
	Elems []Expr
}

func (*ListLit) exprNode() {}

// ----- Calls -----

type CallExpr struct {
	Name string
	Args []Expr
}

func (*CallExpr) exprNode() {}
