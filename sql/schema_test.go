package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaSelect(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(
		NewField("id", Int32),
		NewField("name", Utf8),
	)

	selected, err := schema.Select([]string{"id"})
	require.NoError(err)
	require.Len(selected.Fields, 1)
	require.Equal("id", selected.Fields[0].Name)
}

func TestSchemaSelectPreservesOrder(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(
		NewField("a", Int32),
		NewField("b", Int32),
		NewField("c", Int32),
	)

	selected, err := schema.Select([]string{"c", "a"})
	require.NoError(err)
	require.Equal([]string{"c", "a"}, []string{selected.Fields[0].Name, selected.Fields[1].Name})
}

func TestSchemaSelectRoundTrip(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(
		NewField("a", Int32),
		NewField("b", Utf8),
	)

	names := make([]string, len(schema.Fields))
	for i, f := range schema.Fields {
		names[i] = f.Name
	}

	roundTripped, err := schema.Select(names)
	require.NoError(err)
	require.True(schema.Equal(roundTripped))
}

func TestSchemaSelectUnknownName(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(NewField("id", Int32))
	_, err := schema.Select([]string{"zzz"})
	require.Error(err)
	require.True(ErrColumnNotFound.Is(err))
}

func TestSchemaSelectAmbiguousName(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(NewField("id", Int32), NewField("id", Utf8))
	_, err := schema.Select([]string{"id"})
	require.Error(err)
	require.True(ErrAmbiguousColumn.Is(err))
}

func TestSchemaEqual(t *testing.T) {
	require := require.New(t)

	a := NewSchema(NewField("id", Int32))
	b := NewSchema(NewField("id", Int32))
	c := NewSchema(NewField("id", Int64))

	require.True(a.Equal(b))
	require.False(a.Equal(c))
}

func TestSchemaIndexOf(t *testing.T) {
	require := require.New(t)

	schema := NewSchema(NewField("a", Int32), NewField("b", Utf8))
	idx, err := schema.IndexOf("b")
	require.NoError(err)
	require.Equal(1, idx)

	_, err = schema.IndexOf("zzz")
	require.True(ErrColumnNotFound.Is(err))
}
