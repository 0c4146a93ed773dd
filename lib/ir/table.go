package ir

import (
	"fmt"
	"strings"

	"github.com/dbsteward/erdconvert/lib/util"
	"github.com/pkg/errors"
)

// Table is the neutral form of one declared table. Fields keep their
// declaration order; the parser appends to Fields while reading and the
// table is treated as read-only afterwards.
type Table struct {
	Name   string
	Fields []Field
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (self *Table) AddField(f Field) {
	self.Fields = append(self.Fields, f)
}

func (self *Table) TryGetFieldNamed(name string) Field {
	if self == nil {
		return nil
	}
	for _, f := range self.Fields {
		if strings.EqualFold(f.FieldName(), name) {
			return f
		}
	}
	return nil
}

func (self *Table) GetFieldNamed(name string) (Field, error) {
	f := self.TryGetFieldNamed(name)
	if f == nil {
		return nil, errors.Errorf("no field named %s found in table %s", name, self.Name)
	}
	return f, nil
}

func (self *Table) PrimaryKeys() []string {
	out := []string{}
	for _, f := range self.Fields {
		if IsPrimaryKey(f) {
			out = append(out, f.FieldName())
		}
	}
	return out
}

func (self *Table) FieldNames() []string {
	return util.Map(self.Fields, Field.FieldName)
}

// Validate checks the table on its own. References to other tables are
// deliberately left alone.
func (self *Table) Validate() []error {
	var errs []error
	if self.Name == "" {
		errs = append(errs, fmt.Errorf("table has empty name"))
	}
	seen := map[string]bool{}
	for i, f := range self.Fields {
		name := f.FieldName()
		if name == "" {
			errs = append(errs, fmt.Errorf("field %d in table %s has empty name", i+1, self.Name))
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("table %s declares field %s more than once", self.Name, name))
		}
		seen[key] = true
		if arr, ok := f.(Array); ok && arr.Subfield == nil {
			errs = append(errs, fmt.Errorf("array field %s.%s has no element type", self.Name, name))
		}
	}
	if pks := self.PrimaryKeys(); len(pks) > 1 {
		errs = append(errs, fmt.Errorf("table %s has composite primary key (%s), which is not supported", self.Name, strings.Join(pks, ", ")))
	}
	return errs
}
