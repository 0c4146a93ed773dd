package uml

import (
	"github.com/dbsteward/erdconvert/lib/format"
	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/output"
	"github.com/pkg/errors"
)

var GlobalUML = &UML{}

var GlobalLookup = &format.Lookup{
	Renderer:       GlobalUML,
	TableSeparator: "\n",
	Extension:      ".uml",
}

// UML renders neutral tables back into the description language, in a form
// Reader accepts.
type UML struct{}

func (self *UML) RenderTable(table *ir.Table) (string, error) {
	if table == nil {
		return "", errors.New("cannot render nil table")
	}
	seg := output.NewIndentedSegmenter(output.Indent)
	seg.SetHeader(output.NewRawCode("table %s {", table.Name))
	for _, f := range table.Fields {
		line := FormatField(f)
		if fk, ok := f.(ir.ForeignKey); ok {
			line = FormatReference(fk)
		}
		if line == "" {
			return "", errors.Errorf("field %s in table %s has no description form", f.FieldName(), table.Name)
		}
		seg.WriteCode(output.NewRawCode("%s", line))
	}
	seg.AppendFooter(output.NewRawCode(tableFooter))
	return seg.String(), nil
}
