package ir

import (
	"fmt"
	"strings"
)

type FieldKind string

const (
	FieldKindInteger    FieldKind = "int"
	FieldKindVarchar    FieldKind = "varchar"
	FieldKindBoolean    FieldKind = "boolean"
	FieldKindFloat      FieldKind = "float"
	FieldKindBytes      FieldKind = "bytea"
	FieldKindDateTime   FieldKind = "datetime"
	FieldKindJson       FieldKind = "json"
	FieldKindArray      FieldKind = "array"
	FieldKindForeignKey FieldKind = "fk"
)

// RefOperator is the relationship marker of a reference:
// '>' many-to-one, '<' one-to-many, '-' one-to-one
type RefOperator string

const (
	RefManyToOne RefOperator = ">"
	RefOneToMany RefOperator = "<"
	RefOneToOne  RefOperator = "-"
)

func NewRefOperator(s string) (RefOperator, error) {
	switch op := RefOperator(strings.TrimSpace(s)); op {
	case RefManyToOne, RefOneToMany, RefOneToOne:
		return op, nil
	}
	return "", fmt.Errorf("invalid reference operator: '%s'", s)
}
