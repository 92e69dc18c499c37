package sql

// DataType is the closed set of primitive type tags every value in the
// engine carries exactly one of.
type DataType int

const (
	Boolean DataType = iota
	Int32
	Int64
	Float32
	Float64
	Utf8
)

// String renders the canonical textual form used in CAST display and
// error messages.
func (t DataType) String() string {
	switch t {
	case Boolean:
		return "Boolean"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Utf8:
		return "Utf8"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether t participates in arithmetic.
func (t DataType) IsNumeric() bool {
	switch t {
	case Int32, Int64, Float32, Float64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether t is one of the integer numeric types.
func (t DataType) IsInteger() bool {
	return t == Int32 || t == Int64
}

// IsFloat reports whether t is one of the floating point numeric types.
func (t DataType) IsFloat() bool {
	return t == Float32 || t == Float64
}
