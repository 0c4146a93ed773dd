package ir

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Schema is every table read from one description file, in file order
type Schema struct {
	Tables []*Table
}

func (self *Schema) GetTableNamed(name string) (*Table, error) {
	matching := []*Table{}
	for _, table := range self.Tables {
		if table.Name == name {
			matching = append(matching, table)
		}
	}
	if len(matching) == 0 {
		return nil, errors.Errorf("no table named %s found", name)
	}
	if len(matching) > 1 {
		return nil, errors.Errorf("more than one table named %s found", name)
	}
	return matching[0], nil
}

func (self *Schema) AddTable(table *Table) {
	self.Tables = append(self.Tables, table)
}

// Validate runs Table.Validate over every table and additionally reports
// tables declared more than once.
func (self *Schema) Validate() []error {
	var errs []error
	seen := map[string]bool{}
	for _, table := range self.Tables {
		key := strings.ToLower(table.Name)
		if table.Name != "" && seen[key] {
			errs = append(errs, fmt.Errorf("table %s is declared more than once", table.Name))
		}
		seen[key] = true
		errs = append(errs, table.Validate()...)
	}
	return errs
}
