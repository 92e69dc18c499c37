// Package columnar provides the concrete, fixed-width column array
// implementations that satisfy sql.ColumnArray. The core treats these as
// an external, opaque abstraction; columnar is deliberately a thin
// slice-backed implementation rather than a full analytic array library
// (see DESIGN.md for why a dependency such as apache/arrow/go was
// considered and not adopted here).
package columnar

import "github.com/coredb-io/colex/sql"

// Int32Array is a fixed-width column of int32 values.
type Int32Array struct {
	Values []int32
}

func NewInt32Array(values []int32) *Int32Array { return &Int32Array{Values: values} }

func (a *Int32Array) Size() int                  { return len(a.Values) }
func (a *Int32Array) GetValue(i int) interface{} { return a.Values[i] }
func (a *Int32Array) GetType() sql.DataType      { return sql.Int32 }

// Int64Array is a fixed-width column of int64 values.
type Int64Array struct {
	Values []int64
}

func NewInt64Array(values []int64) *Int64Array { return &Int64Array{Values: values} }

func (a *Int64Array) Size() int                  { return len(a.Values) }
func (a *Int64Array) GetValue(i int) interface{} { return a.Values[i] }
func (a *Int64Array) GetType() sql.DataType      { return sql.Int64 }

// Float32Array is a fixed-width column of float32 values.
type Float32Array struct {
	Values []float32
}

func NewFloat32Array(values []float32) *Float32Array { return &Float32Array{Values: values} }

func (a *Float32Array) Size() int                  { return len(a.Values) }
func (a *Float32Array) GetValue(i int) interface{} { return a.Values[i] }
func (a *Float32Array) GetType() sql.DataType      { return sql.Float32 }

// Float64Array is a fixed-width column of float64 values.
type Float64Array struct {
	Values []float64
}

func NewFloat64Array(values []float64) *Float64Array { return &Float64Array{Values: values} }

func (a *Float64Array) Size() int                  { return len(a.Values) }
func (a *Float64Array) GetValue(i int) interface{} { return a.Values[i] }
func (a *Float64Array) GetType() sql.DataType      { return sql.Float64 }

// BooleanArray is a column of bool values.
type BooleanArray struct {
	Values []bool
}

func NewBooleanArray(values []bool) *BooleanArray { return &BooleanArray{Values: values} }

func (a *BooleanArray) Size() int                  { return len(a.Values) }
func (a *BooleanArray) GetValue(i int) interface{} { return a.Values[i] }
func (a *BooleanArray) GetType() sql.DataType      { return sql.Boolean }

// Utf8Array is a column of UTF-8 string values.
type Utf8Array struct {
	Values []string
}

func NewUtf8Array(values []string) *Utf8Array { return &Utf8Array{Values: values} }

func (a *Utf8Array) Size() int                  { return len(a.Values) }
func (a *Utf8Array) GetValue(i int) interface{} { return a.Values[i] }
func (a *Utf8Array) GetType() sql.DataType      { return sql.Utf8 }
