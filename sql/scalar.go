package sql

import (
	"fmt"
	"math"
	"strconv"
)

// scalarKind tags which field of ScalarValue is active.
type scalarKind int

const (
	scalarInt32 scalarKind = iota
	scalarInt64
	scalarFloat32
	scalarFloat64
	scalarUtf8
)

// ScalarValue is a tagged single value paralleling DataType minus Boolean:
// literals of boolean type are only ever represented as boolean-typed
// physical expressions produced by comparisons, never materialized here.
type ScalarValue struct {
	kind scalarKind
	i    int64
	f    float64
	s    string
}

func NewInt32Scalar(v int32) ScalarValue   { return ScalarValue{kind: scalarInt32, i: int64(v)} }
func NewInt64Scalar(v int64) ScalarValue   { return ScalarValue{kind: scalarInt64, i: v} }
func NewFloat32Scalar(v float32) ScalarValue { return ScalarValue{kind: scalarFloat32, f: float64(v)} }
func NewFloat64Scalar(v float64) ScalarValue { return ScalarValue{kind: scalarFloat64, f: v} }
func NewUtf8Scalar(v string) ScalarValue   { return ScalarValue{kind: scalarUtf8, s: v} }

// DataType returns the scalar's tag as a DataType.
func (v ScalarValue) DataType() DataType {
	switch v.kind {
	case scalarInt32:
		return Int32
	case scalarInt64:
		return Int64
	case scalarFloat32:
		return Float32
	case scalarFloat64:
		return Float64
	default:
		return Utf8
	}
}

// Value returns the scalar's value as a dynamically typed Go value, the
// same representation ColumnArray.GetValue uses for this DataType.
func (v ScalarValue) Value() interface{} {
	switch v.kind {
	case scalarInt32:
		return int32(v.i)
	case scalarInt64:
		return v.i
	case scalarFloat32:
		return float32(v.f)
	case scalarFloat64:
		return v.f
	default:
		return v.s
	}
}

// String renders the scalar's canonical textual form, used both for
// display and as the literal expression's field name (spec: Literal
// resolves to a field whose name is the literal's textual form).
func (v ScalarValue) String() string {
	switch v.kind {
	case scalarInt32:
		return strconv.FormatInt(v.i, 10)
	case scalarInt64:
		return strconv.FormatInt(v.i, 10)
	case scalarFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case scalarFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Equal compares two scalars using total-order float semantics (NaN equals
// NaN), so ScalarValue can serve as a Go map key for canonicalization and
// as a hash-aggregate group key component.
func (v ScalarValue) Equal(o ScalarValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case scalarInt32, scalarInt64:
		return v.i == o.i
	case scalarFloat32, scalarFloat64:
		return orderedFloatEqual(v.f, o.f)
	default:
		return v.s == o.s
	}
}

// Less gives ScalarValue a total order so expression trees built from
// literals can be sorted/compared deterministically by the optimizer.
func (v ScalarValue) Less(o ScalarValue) bool {
	if v.kind != o.kind {
		return v.kind < o.kind
	}
	switch v.kind {
	case scalarInt32, scalarInt64:
		return v.i < o.i
	case scalarFloat32, scalarFloat64:
		return orderedFloatLess(v.f, o.f)
	default:
		return v.s < o.s
	}
}

// Hash returns a stable hash usable as (part of) a hash-aggregate group
// key, with the same NaN-hashable total-order treatment as Equal.
func (v ScalarValue) Hash() uint64 {
	h := fnvOffset
	h = hashByte(h, byte(v.kind))
	switch v.kind {
	case scalarInt32, scalarInt64:
		h = hashUint64(h, uint64(v.i))
	case scalarFloat32, scalarFloat64:
		h = hashUint64(h, orderedFloatBits(v.f))
	default:
		h = hashString(h, v.s)
	}
	return h
}

func (v ScalarValue) GoString() string {
	return fmt.Sprintf("ScalarValue(%s, %v)", v.DataType(), v.Value())
}

// --- total-order float helpers -------------------------------------------
//
// IEEE 754 float equality treats NaN as unequal to itself, which breaks use
// of floats as hash/map keys. We instead order/hash floats canonically:
// NaN sorts above +Inf and is equal to itself, the same "total order"
// treatment a total-order float wrapper crate would give it. This is a
// handful of bit manipulations, not a library concern.

func orderedFloatBits(f float64) uint64 {
	if math.IsNaN(f) {
		return math.MaxUint64
	}
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}
	return bits | (1 << 63)
}

func orderedFloatEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return orderedFloatBits(a) == orderedFloatBits(b)
}

func orderedFloatLess(a, b float64) bool {
	return orderedFloatBits(a) < orderedFloatBits(b)
}

// --- small FNV-1a hash helpers --------------------------------------------

const (
	fnvOffset uint64 = 14695981039346656037
	fnvPrime  uint64 = 1099511628211
)

func hashByte(h uint64, b byte) uint64 {
	h ^= uint64(b)
	h *= fnvPrime
	return h
}

func hashUint64(h uint64, v uint64) uint64 {
	for i := 0; i < 8; i++ {
		h = hashByte(h, byte(v>>(8*i)))
	}
	return h
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = hashByte(h, s[i])
	}
	return h
}
