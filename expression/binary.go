package expression

import "github.com/coredb-io/colex/sql"

// BinaryExpr is a binary expression such as "a > 21" or "a + 1".
type BinaryExpr struct {
	Op    Operator
	Left  Expr
	Right Expr
}

// NewBinaryExpr builds a BinaryExpr.
func NewBinaryExpr(op Operator, left, right Expr) BinaryExpr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

func (b BinaryExpr) String() string {
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}

// ToField resolves to a field named after the operator token. Comparisons
// and boolean operators resolve to Boolean. Arithmetic operators resolve
// to the left operand's resolved type: this is the documented resolution
// of the open question in spec.md §9 (the logical BinaryExpr previously
// reported Boolean for arithmetic too, which disagreed with physical
// evaluation; we resolve to option (b), matching physical evaluation,
// since both operands are required to share a type by the physical
// contract anyway).
func (b BinaryExpr) ToField(input sql.LogicalPlan) (sql.Field, error) {
	if b.Op.IsArithmetic() {
		leftField, err := b.Left.ToField(input)
		if err != nil {
			return sql.Field{}, err
		}
		return sql.NewField(b.Op.name(), leftField.DataType), nil
	}
	return sql.NewField(b.Op.name(), sql.Boolean), nil
}

func (b BinaryExpr) Hash() uint64 {
	return hashCombine(hashString(fnvOffset, "BinaryExpr"), uint64(b.Op), b.Left.Hash(), b.Right.Hash())
}
func (b BinaryExpr) Less(o Expr) bool { return lessByHash(b, o) }

// --- free-function constructors mirroring the original's operator overloads ---

func AddExpr(l, r Expr) Expr  { return NewBinaryExpr(Add, l, r) }
func Sub(l, r Expr) Expr      { return NewBinaryExpr(Subtract, l, r) }
func Mul(l, r Expr) Expr      { return NewBinaryExpr(Multiply, l, r) }
func Div(l, r Expr) Expr      { return NewBinaryExpr(Divide, l, r) }
func Mod(l, r Expr) Expr      { return NewBinaryExpr(Modulus, l, r) }
func EqExpr(l, r Expr) Expr   { return NewBinaryExpr(Eq, l, r) }
func NeqExpr(l, r Expr) Expr  { return NewBinaryExpr(Neq, l, r) }
func GtExpr(l, r Expr) Expr   { return NewBinaryExpr(Gt, l, r) }
func GtEqExpr(l, r Expr) Expr { return NewBinaryExpr(GtEq, l, r) }
func LtExpr(l, r Expr) Expr   { return NewBinaryExpr(Lt, l, r) }
func LtEqExpr(l, r Expr) Expr { return NewBinaryExpr(LtEq, l, r) }
func AndExpr(l, r Expr) Expr  { return NewBinaryExpr(And, l, r) }
func OrExpr(l, r Expr) Expr   { return NewBinaryExpr(Or, l, r) }
