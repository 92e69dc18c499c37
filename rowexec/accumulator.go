package rowexec

import (
	"github.com/coredb-io/colex/expression"
	"github.com/coredb-io/colex/sql"
)

// accumulator is the mutable per-group, per-aggregate-expression state the
// hash aggregate threads values through. One accumulator is created per
// distinct group key per aggregate expression slot.
type accumulator interface {
	accumulate(v interface{})
	finalValue() interface{}
}

func newAccumulator(fun expression.AggregateFunction, inputType sql.DataType) accumulator {
	switch fun {
	case expression.Sum:
		return &sumAccumulator{typ: inputType}
	case expression.Min:
		return &minMaxAccumulator{typ: inputType, isMin: true}
	case expression.Max:
		return &minMaxAccumulator{typ: inputType, isMin: false}
	case expression.Avg:
		return &avgAccumulator{}
	case expression.Count:
		return &countAccumulator{}
	default:
		return &countDistinctAccumulator{typ: inputType, seen: make(map[string]struct{})}
	}
}

// sumAccumulator sums input-typed values, starting at the type's zero.
type sumAccumulator struct {
	typ sql.DataType
	i   int64
	f   float64
}

func (a *sumAccumulator) accumulate(v interface{}) {
	switch a.typ {
	case sql.Int32:
		a.i += int64(v.(int32))
	case sql.Int64:
		a.i += v.(int64)
	case sql.Float32:
		a.f += float64(v.(float32))
	default:
		a.f += v.(float64)
	}
}

func (a *sumAccumulator) finalValue() interface{} {
	switch a.typ {
	case sql.Int32:
		return int32(a.i)
	case sql.Int64:
		return a.i
	case sql.Float32:
		return float32(a.f)
	default:
		return a.f
	}
}

// minMaxAccumulator tracks the running min or max, reporting nil until the
// first value is seen.
type minMaxAccumulator struct {
	typ     sql.DataType
	isMin   bool
	current interface{}
}

func (a *minMaxAccumulator) accumulate(v interface{}) {
	if a.current == nil {
		a.current = v
		return
	}
	if a.less(v, a.current) == a.isMin {
		a.current = v
	}
}

// less reports whether x < y for the accumulator's numeric type.
func (a *minMaxAccumulator) less(x, y interface{}) bool {
	switch a.typ {
	case sql.Int32:
		return x.(int32) < y.(int32)
	case sql.Int64:
		return x.(int64) < y.(int64)
	case sql.Float32:
		return x.(float32) < y.(float32)
	default:
		return x.(float64) < y.(float64)
	}
}

func (a *minMaxAccumulator) finalValue() interface{} { return a.current }

// avgAccumulator tracks a running (sum, count) and divides at the end;
// result type is always Float64 regardless of input type.
type avgAccumulator struct {
	sum float64
	n   int64
}

func (a *avgAccumulator) accumulate(v interface{}) {
	a.n++
	switch t := v.(type) {
	case int32:
		a.sum += float64(t)
	case int64:
		a.sum += float64(t)
	case float32:
		a.sum += float64(t)
	case float64:
		a.sum += t
	}
}

func (a *avgAccumulator) finalValue() interface{} {
	if a.n == 0 {
		return float64(0)
	}
	return a.sum / float64(a.n)
}

// countAccumulator counts every accumulated (non-null) value.
type countAccumulator struct {
	n int64
}

func (a *countAccumulator) accumulate(v interface{}) { a.n++ }
func (a *countAccumulator) finalValue() interface{}  { return a.n }

// countDistinctAccumulator counts distinct accumulated values. Dedup keys
// are built with formatKeyPart, the same total-order/NaN-equal encoding
// group keys use, so distinct NaN payloads collapse into one entry instead
// of counting as unequal the way raw IEEE 754 equality would.
type countDistinctAccumulator struct {
	typ  sql.DataType
	seen map[string]struct{}
}

func (a *countDistinctAccumulator) accumulate(v interface{}) {
	a.seen[formatKeyPart(v, a.typ)] = struct{}{}
}
func (a *countDistinctAccumulator) finalValue() interface{} { return int64(len(a.seen)) }
