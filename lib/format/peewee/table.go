package peewee

import (
	"fmt"

	"github.com/dbsteward/erdconvert/lib/format"
	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/output"
	"github.com/dbsteward/erdconvert/lib/util"
	"github.com/pkg/errors"
)

// BaseModel is the model class every generated class derives from
const BaseModel = "BaseModel"

// Preamble makes the generated module importable on its own
const Preamble = `import json

from peewee import *
from playhouse.postgres_ext import ArrayField, JSONField


class ` + BaseModel + `(Model):
    pass


`

type fieldConverter func(ir.Field) (Field, error)

// fieldConverters maps each neutral kind to the peewee field built from it
var fieldConverters = map[ir.FieldKind]fieldConverter{
	ir.FieldKindInteger: func(f ir.Field) (Field, error) {
		return NewIntegerField(f.(ir.Integer)), nil
	},
	ir.FieldKindVarchar: func(f ir.Field) (Field, error) {
		return NewCharField(f.(ir.Varchar)), nil
	},
	ir.FieldKindBoolean: func(f ir.Field) (Field, error) {
		return NewBooleanField(f.(ir.Boolean)), nil
	},
	ir.FieldKindFloat: func(f ir.Field) (Field, error) {
		return NewFloatField(f.(ir.Float)), nil
	},
	ir.FieldKindBytes: func(f ir.Field) (Field, error) {
		return NewBlobField(f.(ir.Bytes)), nil
	},
	ir.FieldKindDateTime: func(f ir.Field) (Field, error) {
		return NewDateTimeField(f.(ir.DateTime)), nil
	},
	ir.FieldKindJson: func(f ir.Field) (Field, error) {
		return NewJSONField(f.(ir.Json)), nil
	},
	ir.FieldKindArray: func(f ir.Field) (Field, error) {
		return NewArrayField(f.(ir.Array))
	},
	ir.FieldKindForeignKey: func(f ir.Field) (Field, error) {
		return NewForeignKeyField(f.(ir.ForeignKey)), nil
	},
}

// Table is a peewee model class
type Table struct {
	Name   string
	Fields []Field
}

func FromIR(table *ir.Table) (*Table, error) {
	out := &Table{Name: table.Name}
	for _, f := range table.Fields {
		convert, ok := fieldConverters[f.Kind()]
		if !ok {
			return nil, errors.Errorf("no peewee field for %s field %s.%s", f.Kind(), table.Name, f.FieldName())
		}
		field, err := convert(f)
		if err != nil {
			return nil, errors.Wrapf(err, "while converting table %s", table.Name)
		}
		out.Fields = append(out.Fields, field)
	}
	return out, nil
}

func (self *Table) ToIR() *ir.Table {
	out := ir.NewTable(self.Name)
	for _, f := range self.Fields {
		out.AddField(f.ToIR())
	}
	return out
}

func (self *Table) ClassName() string {
	return util.PascalCase(self.Name)
}

// Render writes the model class followed by its Meta block, which keeps the
// table name as it was declared.
func (self *Table) Render() string {
	seg := output.NewIndentedSegmenter(output.Indent)
	seg.SetHeader(output.NewRawCode("class %s(%s):", self.ClassName(), BaseModel))
	for _, f := range self.Fields {
		seg.WriteCode(output.NewRawCode("%s", f.Render()))
	}
	seg.AppendFooter(output.Blank)
	seg.AppendFooter(output.NewRawCode("%sclass Meta:", output.Indent))
	seg.AppendFooter(output.NewRawCode("%s%stable_name = %s", output.Indent, output.Indent, quote(self.Name)))
	return seg.String()
}

func quote(s string) string {
	return fmt.Sprintf("'%s'", s)
}

var GlobalPeewee = &Peewee{}

// classes are separated by two blank lines
var GlobalLookup = &format.Lookup{
	Renderer:       GlobalPeewee,
	Preamble:       Preamble,
	TableSeparator: "\n\n",
	Extension:      ".py",
}

type Peewee struct{}

func (self *Peewee) RenderTable(table *ir.Table) (string, error) {
	if table == nil {
		return "", errors.New("cannot render nil table")
	}
	t, err := FromIR(table)
	if err != nil {
		return "", err
	}
	return t.Render(), nil
}

// RenderTable converts a neutral table into its peewee model declaration
func RenderTable(table *ir.Table) (string, error) {
	return GlobalPeewee.RenderTable(table)
}
