package uml

import (
	"fmt"

	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/util"
)

// FormatField renders a field back into a declaration line, the inverse of
// ParseField. Defaults are left out: no size for a 256 varchar, no option
// bracket unless the field is nullable or a primary key, and `null` is shown
// in preference to `pk`.
//
// Foreign keys render as the empty string, see FormatReference.
func FormatField(f ir.Field) string {
	if _, isRef := f.(ir.ForeignKey); isRef {
		return ""
	}
	return f.FieldName() + " " + formatType(f)
}

// FormatReference renders a foreign key with its `ref:` option, for output
// that has to read back in.
func FormatReference(f ir.ForeignKey) string {
	return fmt.Sprintf("%s int [%s]", f.Name, util.CondJoin(", ",
		util.MaybeStr(f.Nullable, "null"),
		fmt.Sprintf("ref: %s %s", f.RefOperator, f.Reference()),
	))
}

func formatType(f ir.Field) string {
	switch t := f.(type) {
	case ir.Integer:
		return "int" + formatOptions(t.PrimaryKey, t.Nullable)
	case ir.Varchar:
		size := util.MaybeStr(!t.HasDefaultSize(), fmt.Sprintf("(%d)", t.Size))
		return "varchar" + size + formatOptions(t.PrimaryKey, t.Nullable)
	case ir.Boolean:
		return "boolean" + formatOptions(false, t.Nullable)
	case ir.Float:
		return "float" + formatOptions(false, t.Nullable)
	case ir.Bytes:
		return "bytea" + formatOptions(false, t.Nullable)
	case ir.DateTime:
		return "datetime" + formatOptions(false, t.Nullable)
	case ir.Json:
		return "json" + formatOptions(false, t.Nullable)
	case ir.Array:
		if t.Subfield == nil {
			return "array[]"
		}
		return "array[" + formatType(t.Subfield) + "]"
	}
	return ""
}

func formatOptions(primaryKey, nullable bool) string {
	switch {
	case nullable:
		return " [null]"
	case primaryKey:
		return " [pk]"
	}
	return ""
}
