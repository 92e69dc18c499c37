package physicalexpr

import (
	"strconv"

	"github.com/coredb-io/colex/columnar"
	"github.com/coredb-io/colex/sql"
)

// Cast evaluates Expr, then returns a column whose values are the
// element-wise cast to DataType. Casts allowed: any numeric to any
// numeric, and any type to/from Utf8 via its canonical textual form.
type Cast struct {
	Expr     sql.PhysicalExpr
	DataType sql.DataType
}

// NewCast builds a Cast physical expression.
func NewCast(expr sql.PhysicalExpr, dataType sql.DataType) Cast {
	return Cast{Expr: expr, DataType: dataType}
}

func (c Cast) String() string { return "CAST(" + c.Expr.String() + " AS " + c.DataType.String() + ")" }

func (c Cast) Evaluate(batch sql.RecordBatch) (sql.ColumnArray, error) {
	input, err := c.Expr.Evaluate(batch)
	if err != nil {
		return nil, err
	}
	values := make([]interface{}, input.Size())
	for i := 0; i < input.Size(); i++ {
		v, err := castValue(input.GetValue(i), input.GetType(), c.DataType)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return columnar.NewArray(c.DataType, values)
}

func castValue(v interface{}, from, to sql.DataType) (interface{}, error) {
	if from == to {
		return v, nil
	}
	if to == sql.Utf8 {
		return castToString(v, from), nil
	}
	if from == sql.Utf8 {
		return castFromString(v.(string), to)
	}
	if from.IsNumeric() && to.IsNumeric() {
		return castNumeric(v, from, to), nil
	}
	return nil, sql.ErrInvalidCast.New(from, to)
}

func castToString(v interface{}, from sql.DataType) string {
	switch from {
	case sql.Int32:
		return strconv.FormatInt(int64(v.(int32)), 10)
	case sql.Int64:
		return strconv.FormatInt(v.(int64), 10)
	case sql.Float32:
		return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
	case sql.Float64:
		return strconv.FormatFloat(v.(float64), 'g', -1, 64)
	case sql.Boolean:
		return strconv.FormatBool(v.(bool))
	default:
		return v.(string)
	}
}

func castFromString(s string, to sql.DataType) (interface{}, error) {
	switch to {
	case sql.Int32:
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, to)
		}
		return int32(n), nil
	case sql.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, to)
		}
		return n, nil
	case sql.Float32:
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, to)
		}
		return float32(f), nil
	case sql.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, to)
		}
		return f, nil
	case sql.Boolean:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, sql.ErrInvalidCast.New(sql.Utf8, to)
		}
		return b, nil
	default:
		return nil, sql.ErrInvalidCast.New(sql.Utf8, to)
	}
}

func castNumeric(v interface{}, from, to sql.DataType) interface{} {
	var f float64
	switch from {
	case sql.Int32:
		f = float64(v.(int32))
	case sql.Int64:
		f = float64(v.(int64))
	case sql.Float32:
		f = float64(v.(float32))
	case sql.Float64:
		f = v.(float64)
	}
	switch to {
	case sql.Int32:
		return int32(f)
	case sql.Int64:
		return int64(f)
	case sql.Float32:
		return float32(f)
	default:
		return f
	}
}
