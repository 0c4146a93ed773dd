package live

import (
	"context"
	"fmt"

	"github.com/jackc/pgtype"
	"github.com/pkg/errors"
)

//go:generate mockgen -destination=mock_introspector.go -package=live github.com/dbsteward/erdconvert/lib/live Introspector

// Introspector reads the catalog of one postgres schema
type Introspector interface {
	GetTableList(ctx context.Context, schema string) ([]TableEntry, error)
	GetColumns(ctx context.Context, table TableEntry) ([]ColumnEntry, error)
	GetPrimaryKey(ctx context.Context, table TableEntry) ([]string, error)
	GetForeignKeys(ctx context.Context, schema string) ([]ForeignKeyEntry, error)
}

type LiveIntrospector struct {
	conn *Connection
}

var _ Introspector = &LiveIntrospector{}

func NewIntrospector(conn *Connection) *LiveIntrospector {
	return &LiveIntrospector{conn}
}

func (self *LiveIntrospector) GetTableList(ctx context.Context, schema string) ([]TableEntry, error) {
	res, err := self.conn.Query(ctx, `
		SELECT c.oid, n.nspname, c.relname
		FROM pg_catalog.pg_class c
		JOIN pg_catalog.pg_namespace n ON (n.oid = c.relnamespace)
		WHERE c.relkind IN ('r', 'p') AND n.nspname = $1
		ORDER BY c.relname
	`, schema)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []TableEntry{}
	for res.Next() {
		entry := TableEntry{}
		err := res.Scan(&entry.Oid, &entry.Schema, &entry.Table)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	if err := res.Err(); err != nil {
		return nil, errors.Wrap(err, "while iterating results")
	}
	return out, nil
}

func (self *LiveIntrospector) GetColumns(ctx context.Context, table TableEntry) ([]ColumnEntry, error) {
	res, err := self.conn.Query(ctx, `
		SELECT attname, NOT attnotnull, attnum, format_type(atttypid, atttypmod)
		FROM pg_catalog.pg_attribute
		WHERE attrelid = $1 AND attnum > 0 AND NOT attisdropped
		ORDER BY attnum ASC
	`, table.Oid)
	if err != nil {
		return nil, errors.Wrapf(err, "while running query for table %s.%s", table.Schema, table.Table)
	}
	defer res.Close()

	out := []ColumnEntry{}
	for res.Next() {
		entry := ColumnEntry{}
		err := res.Scan(&entry.Name, &entry.Nullable, &entry.Position, &entry.AttrType)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		out = append(out, entry)
	}
	if err := res.Err(); err != nil {
		return nil, errors.Wrap(err, "while iterating results")
	}
	return out, nil
}

func (self *LiveIntrospector) GetPrimaryKey(ctx context.Context, table TableEntry) ([]string, error) {
	res, err := self.conn.Query(ctx, `
		SELECT (
			SELECT array_agg(attname ORDER BY k.ord)
			FROM unnest(con.conkey) WITH ORDINALITY AS k(num, ord)
			JOIN pg_catalog.pg_attribute a ON (a.attrelid = con.conrelid AND a.attnum = k.num)
		)::text[]
		FROM pg_catalog.pg_constraint con
		WHERE con.conrelid = $1 AND con.contype = 'p'
	`, table.Oid)
	if err != nil {
		return nil, errors.Wrapf(err, "while running query for table %s.%s", table.Schema, table.Table)
	}
	defer res.Close()

	out := []string{}
	for res.Next() {
		cols := pgtype.TextArray{}
		if err := res.Scan(&cols); err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		names, err := textArrayStrings(cols)
		if err != nil {
			return nil, err
		}
		out = append(out, names...)
	}
	if err := res.Err(); err != nil {
		return nil, errors.Wrap(err, "while iterating results")
	}
	return out, nil
}

func (self *LiveIntrospector) GetForeignKeys(ctx context.Context, schema string) ([]ForeignKeyEntry, error) {
	// local and foreign columns are paired by their position in the constraint
	res, err := self.conn.Query(ctx, `
		SELECT
			con.conname, lt.relname,
			( SELECT array_agg(a.attname ORDER BY k.ord)
				FROM unnest(con.conkey) WITH ORDINALITY AS k(num, ord)
				JOIN pg_catalog.pg_attribute a ON (a.attrelid = con.conrelid AND a.attnum = k.num)
			)::text[],
			ft.relname,
			( SELECT array_agg(a.attname ORDER BY k.ord)
				FROM unnest(con.confkey) WITH ORDINALITY AS k(num, ord)
				JOIN pg_catalog.pg_attribute a ON (a.attrelid = con.confrelid AND a.attnum = k.num)
			)::text[]
		FROM pg_catalog.pg_constraint con
		JOIN pg_catalog.pg_class lt ON (lt.oid = con.conrelid)
		JOIN pg_catalog.pg_namespace ln ON (ln.oid = lt.relnamespace)
		JOIN pg_catalog.pg_class ft ON (ft.oid = con.confrelid)
		WHERE con.contype = 'f' AND ln.nspname = $1
		ORDER BY lt.relname, con.conname
	`, schema)
	if err != nil {
		return nil, errors.Wrap(err, "while running query")
	}
	defer res.Close()

	out := []ForeignKeyEntry{}
	for res.Next() {
		entry := ForeignKeyEntry{}
		local, foreign := pgtype.TextArray{}, pgtype.TextArray{}
		err := res.Scan(&entry.ConstraintName, &entry.LocalTable, &local, &entry.ForeignTable, &foreign)
		if err != nil {
			return nil, errors.Wrap(err, "while scanning result")
		}
		if entry.LocalColumns, err = textArrayStrings(local); err != nil {
			return nil, err
		}
		if entry.ForeignColumns, err = textArrayStrings(foreign); err != nil {
			return nil, err
		}
		if len(entry.LocalColumns) != len(entry.ForeignColumns) {
			return nil, fmt.Errorf("foreign key %s has %d local but %d foreign columns",
				entry.ConstraintName, len(entry.LocalColumns), len(entry.ForeignColumns))
		}
		out = append(out, entry)
	}
	if err := res.Err(); err != nil {
		return nil, errors.Wrap(err, "while iterating results")
	}
	return out, nil
}
