package live

import "github.com/jackc/pgtype"

type TableEntry struct {
	Oid    pgtype.OID
	Schema string
	Table  string
}

type ColumnEntry struct {
	Name     string
	Nullable bool
	Position int
	AttrType string
}

type ForeignKeyEntry struct {
	ConstraintName string
	LocalTable     string
	LocalColumns   []string
	ForeignTable   string
	ForeignColumns []string
}
