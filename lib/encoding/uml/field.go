package uml

import (
	"strconv"
	"strings"

	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/util"
)

// array elements are parsed as a line of their own under this name
const elementPlaceholder = ir.ElementName

type fieldParser func(line string) (ir.Field, error)

var fieldParsers map[ir.FieldKind]fieldParser

func init() {
	// populated in init because parseArray dispatches back through the map
	fieldParsers = map[ir.FieldKind]fieldParser{
		ir.FieldKindInteger:    parseInteger,
		ir.FieldKindVarchar:    parseVarchar,
		ir.FieldKindArray:      parseArray,
		ir.FieldKindJson:       nullableParser(func(name string, null bool) ir.Field { return ir.Json{Name: name, Nullable: null} }),
		ir.FieldKindForeignKey: parseForeignKey,
		ir.FieldKindBoolean:    nullableParser(func(name string, null bool) ir.Field { return ir.Boolean{Name: name, Nullable: null} }),
		ir.FieldKindDateTime:   nullableParser(func(name string, null bool) ir.Field { return ir.DateTime{Name: name, Nullable: null} }),
		ir.FieldKindFloat:      nullableParser(func(name string, null bool) ir.Field { return ir.Float{Name: name, Nullable: null} }),
		ir.FieldKindBytes:      nullableParser(func(name string, null bool) ir.Field { return ir.Bytes{Name: name, Nullable: null} }),
	}
}

// KnownDataTypes lists the type names accepted in a field declaration
func KnownDataTypes() []string {
	out := []string{}
	for _, kind := range util.SortedKeys(fieldParsers) {
		if kind != ir.FieldKindForeignKey {
			out = append(out, string(kind))
		}
	}
	return out
}

// ParseField converts a single field declaration, such as
// `description varchar(125) [null]`, into its neutral field.
// The line must already be trimmed and must not be blank or a comment.
func ParseField(line string) (ir.Field, error) {
	kind, err := DataType(line)
	if err != nil {
		return nil, err
	}
	parse, ok := fieldParsers[kind]
	if !ok {
		return nil, newParseError(ErrUnknownDataType, line, "`%s` is not one of %s", kind, strings.Join(KnownDataTypes(), ", "))
	}
	return parse(line)
}

func matchField(line string) (name, dataType, options string, err error) {
	m := fieldPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", newParseError(ErrInvalidLineFormat, line, "expected `name type [options]`")
	}
	return m[1], m[2], m[3], nil
}

func parseInteger(line string) (ir.Field, error) {
	name, _, options, err := matchField(line)
	if err != nil {
		return nil, err
	}
	opts := parseOptions(options)
	return ir.Integer{Name: name, PrimaryKey: opts.primaryKey, Nullable: opts.nullable}, nil
}

func parseVarchar(line string) (ir.Field, error) {
	name, dataType, options, err := matchField(line)
	if err != nil {
		return nil, err
	}
	size, err := parseSize(dataType, line)
	if err != nil {
		return nil, err
	}
	opts := parseOptions(options)
	return ir.Varchar{Name: name, Size: size, PrimaryKey: opts.primaryKey, Nullable: opts.nullable}, nil
}

func parseSize(dataType, line string) (int, error) {
	m := varcharPattern.FindStringSubmatch(dataType)
	if m == nil || m[1] == "" {
		return ir.DefaultVarcharSize, nil
	}
	size, err := strconv.Atoi(m[1])
	if err != nil || size <= 0 {
		return 0, newParseError(ErrInvalidLineFormat, line, "invalid varchar size %q", m[1])
	}
	return size, nil
}

// nullableParser builds the parser of a kind whose only option is nullability
func nullableParser(build func(name string, nullable bool) ir.Field) fieldParser {
	return func(line string) (ir.Field, error) {
		name, _, options, err := matchField(line)
		if err != nil {
			return nil, err
		}
		return build(name, parseOptions(options).nullable), nil
	}
}

func parseForeignKey(line string) (ir.Field, error) {
	name, options, err := matchForeignKey(line)
	if err != nil {
		return nil, err
	}
	opts := parseOptions(options)
	table, field, op, err := opts.getRef(line)
	if err != nil {
		return nil, err
	}
	return ir.ForeignKey{
		Name:        name,
		RefTable:    table,
		RefField:    field,
		RefOperator: op,
		Nullable:    opts.nullable,
	}, nil
}

// a reference declared on an array line refers from the column as a whole
func matchForeignKey(line string) (name, options string, err error) {
	if m := arrayFieldPattern.FindStringSubmatch(line); m != nil {
		return m[1], m[4], nil
	}
	name, _, options, err = matchField(line)
	return name, options, err
}

// parseArray handles `name array[element] [options]`. Element options go
// inside the bracket, as in `tags array[varchar(32) [null]]`. The only
// option honoured after the bracket is `null`, which makes the elements, and
// so the column, nullable.
func parseArray(line string) (ir.Field, error) {
	m := arrayFieldPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, newParseError(ErrInvalidLineFormat, line, "expected `name array[type] [options]`")
	}
	sub, err := parseElement(strings.TrimSpace(m[3]), line)
	if err != nil {
		return nil, err
	}
	if parseOptions(m[4]).nullable {
		sub = nullableElement(sub)
	}
	return ir.Array{Name: m[1], Subfield: sub}, nil
}

func nullableElement(sub ir.ArrayElement) ir.ArrayElement {
	switch e := sub.(type) {
	case ir.Integer:
		e.Nullable = true
		return e
	case ir.Varchar:
		e.Nullable = true
		return e
	case ir.Boolean:
		e.Nullable = true
		return e
	}
	return sub
}

func parseElement(element, line string) (ir.ArrayElement, error) {
	elementLine := elementPlaceholder + " " + element
	kind, err := DataType(elementLine)
	if err != nil {
		return nil, reattach(err, line, "array element")
	}
	switch kind {
	case ir.FieldKindInteger, ir.FieldKindVarchar, ir.FieldKindBoolean:
	default:
		if _, known := fieldParsers[kind]; !known {
			return nil, newParseError(ErrUnknownDataType, line, "array element `%s` is not one of %s", kind, strings.Join(KnownDataTypes(), ", "))
		}
		return nil, newParseError(ErrUnsupportedArrayElement, line, "arrays may only hold int, varchar or boolean, not %s", kind)
	}
	f, err := fieldParsers[kind](elementLine)
	if err != nil {
		return nil, reattach(err, line, "array element")
	}
	return f.(ir.ArrayElement), nil
}

// reattach points an error raised on a synthetic element line back at the
// line the user wrote
func reattach(err error, line, context string) error {
	if perr, ok := err.(*ParseError); ok {
		perr.Line = line
		perr.Detail = util.CondJoin(": ", context, perr.Detail)
	}
	return err
}
