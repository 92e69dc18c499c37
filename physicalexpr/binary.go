package physicalexpr

import (
	"math"

	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

func mod64(a, b float64) float64 { return math.Mod(a, b) }

// BinaryExpr evaluates both operands, asserts equal lengths, and returns a
// column whose element i is Op(left[i], right[i]).
type BinaryExpr struct {
	Op    expression.Operator
	Left  sql.PhysicalExpr
	Right sql.PhysicalExpr
}

// NewBinaryExpr builds a BinaryExpr physical expression.
func NewBinaryExpr(op expression.Operator, left, right sql.PhysicalExpr) BinaryExpr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

func (b BinaryExpr) String() string {
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}

func (b BinaryExpr) Evaluate(batch sql.RecordBatch) (sql.ColumnArray, error) {
	left, err := b.Left.Evaluate(batch)
	if err != nil {
		return nil, err
	}
	right, err := b.Right.Evaluate(batch)
	if err != nil {
		return nil, err
	}
	if left.Size() != right.Size() {
		return nil, sql.ErrTypeMismatch.New("operand length mismatch")
	}

	switch {
	case b.Op.IsComparison():
		return evalComparison(b.Op, left, right)
	case b.Op.IsBoolean():
		return evalBoolean(b.Op, left, right)
	default:
		return evalArithmetic(b.Op, left, right)
	}
}

func evalComparison(op expression.Operator, left, right sql.ColumnArray) (sql.ColumnArray, error) {
	if left.GetType() != right.GetType() {
		return nil, sql.ErrTypeMismatch.New("comparison operands must share a DataType")
	}
	out := make([]bool, left.Size())
	for i := 0; i < left.Size(); i++ {
		cmp := compareValues(left.GetValue(i), right.GetValue(i), left.GetType())
		switch op {
		case expression.Eq:
			out[i] = cmp == 0
		case expression.Neq:
			out[i] = cmp != 0
		case expression.Gt:
			out[i] = cmp > 0
		case expression.GtEq:
			out[i] = cmp >= 0
		case expression.Lt:
			out[i] = cmp < 0
		case expression.LtEq:
			out[i] = cmp <= 0
		}
	}
	return columnar.NewBooleanArray(out), nil
}

func compareValues(l, r interface{}, typ sql.DataType) int {
	switch typ {
	case sql.Int32:
		a, b := l.(int32), r.(int32)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	case sql.Int64:
		a, b := l.(int64), r.(int64)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	case sql.Float32:
		a, b := l.(float32), r.(float32)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	case sql.Float64:
		a, b := l.(float64), r.(float64)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	case sql.Boolean:
		a, b := l.(bool), r.(bool)
		switch {
		case a == b:
			return 0
		case !a && b:
			return -1
		default:
			return 1
		}
	default:
		a, b := l.(string), r.(string)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
}

func evalBoolean(op expression.Operator, left, right sql.ColumnArray) (sql.ColumnArray, error) {
	if left.GetType() != sql.Boolean || right.GetType() != sql.Boolean {
		return nil, sql.ErrTypeMismatch.New("boolean operands must be Boolean")
	}
	out := make([]bool, left.Size())
	for i := 0; i < left.Size(); i++ {
		l, r := left.GetValue(i).(bool), right.GetValue(i).(bool)
		if op == expression.And {
			out[i] = l && r
		} else {
			out[i] = l || r
		}
	}
	return columnar.NewBooleanArray(out), nil
}

func evalArithmetic(op expression.Operator, left, right sql.ColumnArray) (sql.ColumnArray, error) {
	typ := left.GetType()
	if typ != right.GetType() || !typ.IsNumeric() {
		return nil, sql.ErrTypeMismatch.New("arithmetic operands must share a numeric DataType")
	}
	values := make([]interface{}, left.Size())
	for i := 0; i < left.Size(); i++ {
		v, err := applyArithmetic(op, left.GetValue(i), right.GetValue(i), typ)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return columnar.NewArray(typ, values)
}

func applyArithmetic(op expression.Operator, l, r interface{}, typ sql.DataType) (interface{}, error) {
	switch typ {
	case sql.Int32:
		a, b := l.(int32), r.(int32)
		if (op == expression.Divide || op == expression.Modulus) && b == 0 {
			return nil, sql.ErrDivideByZero.New()
		}
		switch op {
		case expression.Add:
			return a + b, nil
		case expression.Subtract:
			return a - b, nil
		case expression.Multiply:
			return a * b, nil
		case expression.Divide:
			return a / b, nil
		default:
			return a % b, nil
		}
	case sql.Int64:
		a, b := l.(int64), r.(int64)
		if (op == expression.Divide || op == expression.Modulus) && b == 0 {
			return nil, sql.ErrDivideByZero.New()
		}
		switch op {
		case expression.Add:
			return a + b, nil
		case expression.Subtract:
			return a - b, nil
		case expression.Multiply:
			return a * b, nil
		case expression.Divide:
			return a / b, nil
		default:
			return a % b, nil
		}
	case sql.Float32:
		a, b := l.(float32), r.(float32)
		switch op {
		case expression.Add:
			return a + b, nil
		case expression.Subtract:
			return a - b, nil
		case expression.Multiply:
			return a * b, nil
		case expression.Divide:
			return a / b, nil
		default:
			return float32(mod64(float64(a), float64(b))), nil
		}
	default:
		a, b := l.(float64), r.(float64)
		switch op {
		case expression.Add:
			return a + b, nil
		case expression.Subtract:
			return a - b, nil
		case expression.Multiply:
			return a * b, nil
		case expression.Divide:
			return a / b, nil
		default:
			return mod64(a, b), nil
		}
	}
}
