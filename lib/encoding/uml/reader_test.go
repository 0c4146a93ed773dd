package uml

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsteward/erdconvert/lib/ir"
)

const twoTables = `
// accounts
table user {
	id int [pk]
	name varchar(64)

	// optional
	email varchar [null]
}

table post {
	id int [pk]
	author_id int [ref: > user.id]
	tags array[varchar(32)]
}
`

func TestReader_ReadsTablesInOrder(t *testing.T) {
	r := ParseAllTables(strings.NewReader(twoTables))

	user, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "user", user.Name)
	assert.Equal(t, []ir.Field{
		ir.Integer{Name: "id", PrimaryKey: true},
		ir.Varchar{Name: "name", Size: 64},
		ir.Varchar{Name: "email", Size: 256, Nullable: true},
	}, user.Fields)

	post, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "post", post.Name)
	assert.Equal(t, []string{"id", "author_id", "tags"}, post.FieldNames())
	assert.Equal(t, ir.FieldKindForeignKey, post.Fields[1].Kind())

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	// stays exhausted
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReader_EmptyInput(t *testing.T) {
	schema, err := NewReader(strings.NewReader("\n// nothing here\n\n")).ReadSchema()
	require.NoError(t, err)
	assert.Empty(t, schema.Tables)
}

func TestReader_HeaderWhitespace(t *testing.T) {
	table, err := NewReader(strings.NewReader("  table   thing{\n x int\n   }  \n")).Next()
	require.NoError(t, err)
	assert.Equal(t, "thing", table.Name)
	assert.Len(t, table.Fields, 1)
}

func TestReader_MalformedHeader(t *testing.T) {
	for _, input := range []string{
		"tabel user {\n}\n",
		"table user\n}\n",
		"table {\n}\n",
		"id int [pk]\n",
	} {
		_, err := NewReader(strings.NewReader(input)).Next()
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrMalformedTableHeader), "%q: %v", input, err)
	}
}

func TestReader_FieldErrorCarriesLineNumber(t *testing.T) {
	input := "table user {\n  id int [pk]\n  mood bogus\n}\n"
	_, err := NewReader(strings.NewReader(input)).Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDataType))

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.LineNo)
	assert.Equal(t, "mood bogus", perr.Line)
}

func TestReader_Unterminated(t *testing.T) {
	input := "table user {\n  id int [pk]\n  name varchar\n"

	logs := &bytes.Buffer{}
	r := NewReader(strings.NewReader(input))
	r.Logger = slog.New(slog.NewTextHandler(logs, nil))
	table, err := r.Next()
	require.NoError(t, err)
	assert.Len(t, table.Fields, 2)
	assert.Contains(t, logs.String(), "missing its closing brace")

	r = NewReader(strings.NewReader(input))
	r.Strict = true
	table, err = r.Next()
	assert.True(t, errors.Is(err, ErrUnterminatedTable))
	require.NotNil(t, table)
	assert.Len(t, table.Fields, 2)
}

func TestReader_HeaderInsideBody(t *testing.T) {
	input := "table a {\n  id int\ntable b {\n  id int\n}\n"

	for _, strict := range []bool{false, true} {
		r := NewReader(strings.NewReader(input))
		r.Strict = strict
		a, err := r.Next()
		assert.True(t, errors.Is(err, ErrUnterminatedTable), "strict=%v: %v", strict, err)
		assert.Contains(t, err.Error(), "line 3")
		require.NotNil(t, a)
		assert.Equal(t, "a", a.Name)
		assert.Len(t, a.Fields, 1)
	}

	schema, err := NewReader(strings.NewReader(input)).ReadSchema()
	assert.True(t, errors.Is(err, ErrUnterminatedTable))
	assert.Empty(t, schema.Tables)
}

func TestReader_ReadSchemaStopsAtFirstError(t *testing.T) {
	input := "table a {\n  id int\n}\ntable b {\n  ref_id int [ref: >]\n}\ntable c {\n}\n"
	schema, err := NewReader(strings.NewReader(input)).ReadSchema()
	assert.True(t, errors.Is(err, ErrMissingReference))
	assert.Len(t, schema.Tables, 1)
}

func TestUML_RenderTable(t *testing.T) {
	table := &ir.Table{
		Name: "post",
		Fields: []ir.Field{
			ir.Integer{Name: "id", PrimaryKey: true},
			ir.ForeignKey{Name: "author_id", RefTable: "user", RefField: "id", RefOperator: ir.RefManyToOne},
			ir.Array{Name: "tags", Subfield: ir.Varchar{Name: elementPlaceholder, Size: 32, Nullable: true}},
			ir.Json{Name: "extra", Nullable: true},
		},
	}
	expected := `table post {
    id int [pk]
    author_id int [ref: > user.id]
    tags array[varchar(32) [null]]
    extra json [null]
}
`
	actual, err := GlobalUML.RenderTable(table)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	// rendered text reads back to the same table
	again, err := NewReader(strings.NewReader(actual)).Next()
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestUML_RenderTableNil(t *testing.T) {
	_, err := GlobalUML.RenderTable(nil)
	assert.Error(t, err)
}
