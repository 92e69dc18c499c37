package sql

import "strings"

// Field is a named, typed column descriptor. Field names are not globally
// unique; uniqueness within a Schema is a planner assumption, not enforced
// here.
type Field struct {
	Name     string
	DataType DataType
}

// NewField builds a Field.
func NewField(name string, dataType DataType) Field {
	return Field{Name: name, DataType: dataType}
}

func (f Field) String() string {
	return f.Name + ":" + f.DataType.String()
}

// Schema is an ordered sequence of Fields.
type Schema struct {
	Fields []Field
}

// NewSchema builds a Schema from the given fields, in order.
func NewSchema(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// Select returns a new schema whose fields are those matching names, in the
// order names are given. It is an error if a name matches zero or more than
// one field.
func (s Schema) Select(names []string) (Schema, error) {
	selected := make([]Field, 0, len(names))
	for _, name := range names {
		var match *Field
		for i := range s.Fields {
			if s.Fields[i].Name == name {
				if match != nil {
					return Schema{}, ErrAmbiguousColumn.New(name)
				}
				f := s.Fields[i]
				match = &f
			}
		}
		if match == nil {
			return Schema{}, ErrColumnNotFound.New(name)
		}
		selected = append(selected, *match)
	}
	return Schema{Fields: selected}, nil
}

// IndexOf returns the position of the only field named name, or -1 with a
// ResolutionError when no field or more than one field has that name.
func (s Schema) IndexOf(name string) (int, error) {
	idx := -1
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			if idx != -1 {
				return -1, ErrAmbiguousColumn.New(name)
			}
			idx = i
		}
	}
	if idx == -1 {
		return -1, ErrColumnNotFound.New(name)
	}
	return idx, nil
}

// Equal reports whether s and o have structurally equal field sequences.
func (s Schema) Equal(o Schema) bool {
	if len(s.Fields) != len(o.Fields) {
		return false
	}
	for i := range s.Fields {
		if s.Fields[i] != o.Fields[i] {
			return false
		}
	}
	return true
}

func (s Schema) String() string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
