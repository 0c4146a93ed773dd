package peewee

import (
	"fmt"

	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/util"
	"github.com/pkg/errors"
)

// jsonDumps keeps non-ASCII text readable in stored json
const jsonDumps = "dumps=lambda value: json.dumps(value, ensure_ascii=False)"

// Field is one peewee field declaration inside a model class
type Field interface {
	FieldName() string
	// Constructor is the peewee class the field is built with
	Constructor() string
	// Render returns the full `name = Constructor(...)` statement
	Render() string
	ToIR() ir.Field
}

func declare(name, constructor string, kwargs ...string) string {
	return fmt.Sprintf("%s = %s(%s)", name, constructor, util.CondJoin(", ", kwargs...))
}

func nullKwarg(null bool) string {
	return util.MaybeStr(null, "null=True")
}

type IntegerField struct {
	Name       string
	PrimaryKey bool
	Null       bool
}

func NewIntegerField(f ir.Integer) *IntegerField {
	return &IntegerField{Name: f.Name, PrimaryKey: f.PrimaryKey, Null: f.Nullable}
}

func (self *IntegerField) FieldName() string { return self.Name }

// an integer primary key is the auto-incrementing id column
func (self *IntegerField) Constructor() string {
	return util.ChooseStr(self.PrimaryKey, "AutoField", "IntegerField")
}

func (self *IntegerField) Render() string {
	return declare(self.Name, self.Constructor(), nullKwarg(self.Null))
}

func (self *IntegerField) ToIR() ir.Field {
	return ir.Integer{Name: self.Name, PrimaryKey: self.PrimaryKey, Nullable: self.Null}
}

type CharField struct {
	Name       string
	MaxLength  int
	PrimaryKey bool
	Null       bool
}

func NewCharField(f ir.Varchar) *CharField {
	return &CharField{Name: f.Name, MaxLength: f.Size, PrimaryKey: f.PrimaryKey, Null: f.Nullable}
}

func (self *CharField) FieldName() string   { return self.Name }
func (self *CharField) Constructor() string { return "CharField" }

func (self *CharField) Render() string {
	maxLength := ""
	if self.MaxLength != 0 && self.MaxLength != ir.DefaultVarcharSize {
		maxLength = fmt.Sprintf("max_length=%d", self.MaxLength)
	}
	return declare(self.Name, self.Constructor(),
		maxLength,
		util.MaybeStr(self.PrimaryKey, "primary_key=True"),
		nullKwarg(self.Null),
	)
}

func (self *CharField) ToIR() ir.Field {
	size := self.MaxLength
	if size == 0 {
		size = ir.DefaultVarcharSize
	}
	return ir.Varchar{Name: self.Name, Size: size, PrimaryKey: self.PrimaryKey, Nullable: self.Null}
}

type BooleanField struct {
	Name string
	Null bool
}

func NewBooleanField(f ir.Boolean) *BooleanField {
	return &BooleanField{Name: f.Name, Null: f.Nullable}
}

func (self *BooleanField) FieldName() string   { return self.Name }
func (self *BooleanField) Constructor() string { return "BooleanField" }
func (self *BooleanField) Render() string {
	return declare(self.Name, self.Constructor(), nullKwarg(self.Null))
}
func (self *BooleanField) ToIR() ir.Field { return ir.Boolean{Name: self.Name, Nullable: self.Null} }

type FloatField struct {
	Name string
	Null bool
}

func NewFloatField(f ir.Float) *FloatField {
	return &FloatField{Name: f.Name, Null: f.Nullable}
}

func (self *FloatField) FieldName() string   { return self.Name }
func (self *FloatField) Constructor() string { return "FloatField" }
func (self *FloatField) Render() string {
	return declare(self.Name, self.Constructor(), nullKwarg(self.Null))
}
func (self *FloatField) ToIR() ir.Field { return ir.Float{Name: self.Name, Nullable: self.Null} }

type BlobField struct {
	Name string
	Null bool
}

func NewBlobField(f ir.Bytes) *BlobField {
	return &BlobField{Name: f.Name, Null: f.Nullable}
}

func (self *BlobField) FieldName() string   { return self.Name }
func (self *BlobField) Constructor() string { return "BlobField" }
func (self *BlobField) Render() string {
	return declare(self.Name, self.Constructor(), nullKwarg(self.Null))
}
func (self *BlobField) ToIR() ir.Field { return ir.Bytes{Name: self.Name, Nullable: self.Null} }

type DateTimeField struct {
	Name string
	Null bool
}

func NewDateTimeField(f ir.DateTime) *DateTimeField {
	return &DateTimeField{Name: f.Name, Null: f.Nullable}
}

func (self *DateTimeField) FieldName() string   { return self.Name }
func (self *DateTimeField) Constructor() string { return "DateTimeField" }
func (self *DateTimeField) Render() string {
	return declare(self.Name, self.Constructor(), nullKwarg(self.Null))
}
func (self *DateTimeField) ToIR() ir.Field { return ir.DateTime{Name: self.Name, Nullable: self.Null} }

type JSONField struct {
	Name string
	Null bool
}

func NewJSONField(f ir.Json) *JSONField {
	return &JSONField{Name: f.Name, Null: f.Nullable}
}

func (self *JSONField) FieldName() string   { return self.Name }
func (self *JSONField) Constructor() string { return "JSONField" }
func (self *JSONField) Render() string {
	return declare(self.Name, self.Constructor(), jsonDumps, nullKwarg(self.Null))
}
func (self *JSONField) ToIR() ir.Field { return ir.Json{Name: self.Name, Nullable: self.Null} }

// ArrayField holds a single level of int, varchar or boolean elements. The
// column takes its nullability from the element and is never indexed.
type ArrayField struct {
	Name    string
	Element Field
	Null    bool
}

func NewArrayField(f ir.Array) (*ArrayField, error) {
	var element Field
	switch sub := f.Subfield.(type) {
	case ir.Integer:
		element = NewIntegerField(sub)
	case ir.Varchar:
		element = NewCharField(sub)
	case ir.Boolean:
		element = NewBooleanField(sub)
	case nil:
		return nil, errors.Errorf("array field %s has no element type", f.Name)
	default:
		return nil, errors.Errorf("array field %s cannot hold %s elements", f.Name, sub.Kind())
	}
	return &ArrayField{Name: f.Name, Element: element, Null: f.Subfield.IsNullable()}, nil
}

func (self *ArrayField) FieldName() string   { return self.Name }
func (self *ArrayField) Constructor() string { return "ArrayField" }

func (self *ArrayField) Render() string {
	// AutoField is never an element type
	element := self.Element.Constructor()
	if element == "AutoField" {
		element = "IntegerField"
	}
	return declare(self.Name, self.Constructor(), element, nullKwarg(self.Null), "index=False")
}

func (self *ArrayField) ToIR() ir.Field {
	sub, _ := self.Element.ToIR().(ir.ArrayElement)
	return ir.Array{Name: self.Name, Subfield: sub}
}

type ForeignKeyField struct {
	Name     string
	RefTable string
	RefField string
	Operator ir.RefOperator
	Null     bool
}

func NewForeignKeyField(f ir.ForeignKey) *ForeignKeyField {
	return &ForeignKeyField{
		Name:     f.Name,
		RefTable: f.RefTable,
		RefField: f.RefField,
		Operator: f.RefOperator,
		Null:     f.Nullable,
	}
}

func (self *ForeignKeyField) FieldName() string   { return self.Name }
func (self *ForeignKeyField) Constructor() string { return "ForeignKeyField" }

// Model is the class name of the referenced table
func (self *ForeignKeyField) Model() string {
	return util.PascalCase(self.RefTable)
}

func (self *ForeignKeyField) Render() string {
	return declare(self.Name, self.Constructor(),
		self.Model(),
		fmt.Sprintf("field='%s'", self.RefField),
		"lazy_load=False",
		nullKwarg(self.Null),
	)
}

func (self *ForeignKeyField) ToIR() ir.Field {
	return ir.ForeignKey{
		Name:        self.Name,
		RefTable:    self.RefTable,
		RefField:    self.RefField,
		RefOperator: self.Operator,
		Nullable:    self.Null,
	}
}
