package peewee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsteward/erdconvert/lib/encoding/uml"
	"github.com/dbsteward/erdconvert/lib/ir"
)

func TestField_Render(t *testing.T) {
	cases := []struct {
		line     string
		expected string
	}{
		{"id int [pk]", "id = AutoField()"},
		{"foo int", "foo = IntegerField()"},
		{"foo int [null]", "foo = IntegerField(null=True)"},
		{"name varchar", "name = CharField()"},
		{"name varchar(256) [null]", "name = CharField(null=True)"},
		{"description varchar(125) [null]", "description = CharField(max_length=125, null=True)"},
		{"code varchar(8) [pk]", "code = CharField(max_length=8, primary_key=True)"},
		{"active boolean", "active = BooleanField()"},
		{"score float [null]", "score = FloatField(null=True)"},
		{"avatar bytea", "avatar = BlobField()"},
		{"created_at datetime", "created_at = DateTimeField()"},
		{"extra json", "extra = JSONField(dumps=lambda value: json.dumps(value, ensure_ascii=False))"},
		{"extra json [null]", "extra = JSONField(dumps=lambda value: json.dumps(value, ensure_ascii=False), null=True)"},
		{"user_id int [ref: > user.id]", "user_id = ForeignKeyField(User, field='id', lazy_load=False)"},
		{"owner_id int [null, ref: - account_owner.uid]", "owner_id = ForeignKeyField(AccountOwner, field='uid', lazy_load=False, null=True)"},
		{"dependents array[varchar(512)]", "dependents = ArrayField(CharField, index=False)"},
		{"numbers array[int [null]]", "numbers = ArrayField(IntegerField, null=True, index=False)"},
		{"ids array[int [pk]]", "ids = ArrayField(IntegerField, index=False)"},
		{"flags array[boolean]", "flags = ArrayField(BooleanField, index=False)"},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			parsed, err := uml.ParseField(tc.line)
			require.NoError(t, err)
			table, err := FromIR(&ir.Table{Name: "t", Fields: []ir.Field{parsed}})
			require.NoError(t, err)
			require.Len(t, table.Fields, 1)
			assert.Equal(t, tc.expected, table.Fields[0].Render())

			// and back to the same neutral field
			assert.Equal(t, parsed, table.Fields[0].ToIR())
		})
	}
}

func TestIntegerField_PrimaryKeyConstructor(t *testing.T) {
	pk := NewIntegerField(ir.Integer{Name: "id", PrimaryKey: true})
	plain := NewIntegerField(ir.Integer{Name: "id"})
	assert.NotEqual(t, pk.Constructor(), plain.Constructor())
	assert.Equal(t, "AutoField", pk.Constructor())
}

func TestRenderTable(t *testing.T) {
	input := `
table user_profile {
  id int [pk]
  user_id int [ref: > user.id]
  bio varchar(1024) [null]
  settings json
  tags array[varchar]
}
`
	table, err := uml.ParseAllTables(strings.NewReader(input)).Next()
	require.NoError(t, err)

	expected := `class UserProfile(BaseModel):
    id = AutoField()
    user_id = ForeignKeyField(User, field='id', lazy_load=False)
    bio = CharField(max_length=1024, null=True)
    settings = JSONField(dumps=lambda value: json.dumps(value, ensure_ascii=False))
    tags = ArrayField(CharField, index=False)

    class Meta:
        table_name = 'user_profile'
`
	actual, err := RenderTable(table)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestRenderTable_NoFields(t *testing.T) {
	actual, err := RenderTable(ir.NewTable("empty"))
	require.NoError(t, err)
	assert.Equal(t, "class Empty(BaseModel):\n\n    class Meta:\n        table_name = 'empty'\n", actual)
}

func TestTable_RoundTrip(t *testing.T) {
	original := &ir.Table{
		Name: "post",
		Fields: []ir.Field{
			ir.Integer{Name: "id", PrimaryKey: true},
			ir.Varchar{Name: "title", Size: 80},
			ir.DateTime{Name: "published", Nullable: true},
			ir.Array{Name: "scores", Subfield: ir.Integer{Name: ir.ElementName}},
			ir.ForeignKey{Name: "author", RefTable: "user", RefField: "id", RefOperator: ir.RefManyToOne},
		},
	}
	table, err := FromIR(original)
	require.NoError(t, err)
	assert.Equal(t, "Post", table.ClassName())
	assert.Equal(t, original, table.ToIR())
}

func TestFromIR_ArrayWithoutElement(t *testing.T) {
	_, err := FromIR(&ir.Table{Name: "t", Fields: []ir.Field{ir.Array{Name: "a"}}})
	assert.Error(t, err)
}

func TestRenderTable_Nil(t *testing.T) {
	_, err := RenderTable(nil)
	assert.Error(t, err)
}
