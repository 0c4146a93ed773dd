package live

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/util"
	"github.com/pkg/errors"
)

// matches format_type output like `character varying(64)` or `character(2)[]`
var charTypePattern = regexp.MustCompile(`^(?:character varying|varchar|character|char)(?:\((\d+)\))?$`)

// Extract reads every table of the given schema and maps it onto neutral
// tables. Columns that have no neutral kind are skipped with a warning, as
// are the key flags of composite primary keys and multi-column foreign keys.
func Extract(ctx context.Context, l *slog.Logger, in Introspector, schema string) (*ir.Schema, error) {
	tables, err := in.GetTableList(ctx, schema)
	if err != nil {
		return nil, errors.Wrapf(err, "while listing tables of schema %s", schema)
	}
	fks, err := in.GetForeignKeys(ctx, schema)
	if err != nil {
		return nil, errors.Wrapf(err, "while listing foreign keys of schema %s", schema)
	}
	refs := map[string]map[string]ForeignKeyEntry{}
	for _, fk := range fks {
		if len(fk.LocalColumns) != 1 {
			l.Warn("skipping multi-column foreign key",
				"constraint", fk.ConstraintName, "table", fk.LocalTable,
				"columns", strings.Join(fk.LocalColumns, ", "))
			continue
		}
		if refs[fk.LocalTable] == nil {
			refs[fk.LocalTable] = map[string]ForeignKeyEntry{}
		}
		refs[fk.LocalTable][fk.LocalColumns[0]] = fk
	}

	out := &ir.Schema{}
	for _, entry := range tables {
		table, err := extractTable(ctx, l, in, entry, refs[entry.Table])
		if err != nil {
			return nil, errors.Wrapf(err, "table %s.%s", entry.Schema, entry.Table)
		}
		out.AddTable(table)
	}
	l.Info("extracted schema", "schema", schema, "tables", len(out.Tables))
	return out, nil
}

func extractTable(ctx context.Context, l *slog.Logger, in Introspector, entry TableEntry, refs map[string]ForeignKeyEntry) (*ir.Table, error) {
	columns, err := in.GetColumns(ctx, entry)
	if err != nil {
		return nil, err
	}
	pk, err := in.GetPrimaryKey(ctx, entry)
	if err != nil {
		return nil, err
	}
	if len(pk) > 1 {
		l.Warn("composite primary key is not supported, columns are extracted without it",
			"table", entry.Table, "columns", strings.Join(pk, ", "))
		pk = nil
	}

	table := ir.NewTable(entry.Table)
	for _, col := range columns {
		if fk, ok := refs[col.Name]; ok {
			if util.Contains(pk, col.Name) {
				l.Warn("primary key that is also a foreign key is not supported, column is extracted as a reference",
					"table", entry.Table, "column", col.Name)
			}
			table.AddField(ir.ForeignKey{
				Name:        col.Name,
				RefTable:    fk.ForeignTable,
				RefField:    fk.ForeignColumns[0],
				RefOperator: ir.RefManyToOne,
				Nullable:    col.Nullable,
			})
			continue
		}
		field, ok := ColumnField(col, util.Contains(pk, col.Name))
		if !ok {
			l.Warn("skipping column of unsupported type",
				"table", entry.Table, "column", col.Name, "type", col.AttrType)
			continue
		}
		table.AddField(field)
	}
	return table, nil
}

// ColumnField maps a postgres column type onto a neutral field. It reports
// false for types with no neutral kind.
func ColumnField(col ColumnEntry, primaryKey bool) (ir.Field, bool) {
	attrType := strings.ToLower(strings.TrimSpace(col.AttrType))
	if element, isArray := strings.CutSuffix(attrType, "[]"); isArray {
		sub, ok := scalarField(ir.ElementName, element, false, col.Nullable)
		if !ok {
			return nil, false
		}
		// only int, varchar and boolean may be array elements
		arrayElement, ok := sub.(ir.ArrayElement)
		if !ok {
			return nil, false
		}
		return ir.Array{Name: col.Name, Subfield: arrayElement}, true
	}
	return scalarField(col.Name, attrType, primaryKey, col.Nullable)
}

func scalarField(name, attrType string, primaryKey, nullable bool) (ir.Field, bool) {
	switch attrType {
	case "smallint", "integer", "bigint":
		return ir.Integer{Name: name, PrimaryKey: primaryKey, Nullable: nullable}, true
	case "text":
		return ir.Varchar{Name: name, Size: ir.DefaultVarcharSize, PrimaryKey: primaryKey, Nullable: nullable}, true
	case "boolean":
		return ir.Boolean{Name: name, Nullable: nullable}, true
	case "real", "double precision":
		return ir.Float{Name: name, Nullable: nullable}, true
	case "bytea":
		return ir.Bytes{Name: name, Nullable: nullable}, true
	case "json", "jsonb":
		return ir.Json{Name: name, Nullable: nullable}, true
	}
	if strings.HasPrefix(attrType, "numeric") {
		return ir.Float{Name: name, Nullable: nullable}, true
	}
	if strings.HasPrefix(attrType, "timestamp") || attrType == "date" {
		return ir.DateTime{Name: name, Nullable: nullable}, true
	}
	if m := charTypePattern.FindStringSubmatch(attrType); m != nil {
		size := ir.DefaultVarcharSize
		if m[1] != "" {
			size, _ = strconv.Atoi(m[1])
		}
		return ir.Varchar{Name: name, Size: size, PrimaryKey: primaryKey, Nullable: nullable}, true
	}
	return nil, false
}
