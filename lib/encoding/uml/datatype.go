package uml

import (
	"regexp"
	"strings"

	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/dbsteward/erdconvert/lib/util"
)

var (
	// name, type with optional (size) or [element], optional [options]
	fieldPattern = regexp.MustCompile(`^\s*([a-zA-Z_]\w*)\s+(\w+(?:\(\d+\))?(?:\[\w+\])?)\s*(?:\[(.*?)\])?\s*$`)
	// name, array[element], optional [options]
	arrayFieldPattern = regexp.MustCompile(`^\s*([a-zA-Z_]\w*)\s+((?i:array))\s*\[(.*?)\]\s*(?:\[([^\[\]]*)\])?\s*$`)
	varcharPattern    = regexp.MustCompile(`(?i)^varchar(?:\((\d+)\))?$`)
	refPattern        = regexp.MustCompile(`(?i)^ref:\s*([<>-])\s*([a-zA-Z_][a-zA-Z0-9_.]*)$`)
	refMarkerPattern  = regexp.MustCompile(`(?i)\bref\b`)
)

// DataType determines the declared type of a field line. Lines carrying a
// `ref` option are always foreign keys, whatever type they spell out. On an
// array line only the options after the element bracket count.
// Otherwise the type is the second token without its (size) or [element]
// suffix, lower-cased.
func DataType(line string) (ir.FieldKind, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return "", newParseError(ErrInvalidLineFormat, line, "expected a field name followed by a type")
	}
	typ := tokens[1]
	if i := strings.IndexAny(typ, "(["); i >= 0 {
		typ = typ[:i]
	}
	kind := ir.FieldKind(strings.ToLower(typ))
	options := strings.Join(tokens[1:], " ")
	if kind == ir.FieldKindArray {
		// a ref inside the element bracket belongs to the element, which the
		// array parser rejects on its own
		options = ""
		if m := arrayFieldPattern.FindStringSubmatch(line); m != nil {
			options = m[4]
		}
	}
	if refMarkerPattern.MatchString(options) {
		return ir.FieldKindForeignKey, nil
	}
	return kind, nil
}

type fieldOptions struct {
	tokens     []string // trimmed, whitespace squashed and lower-cased
	raw        []string // trimmed only
	primaryKey bool
	nullable   bool
}

func parseOptions(options string) fieldOptions {
	out := fieldOptions{}
	for _, tok := range strings.Split(options, ",") {
		raw := strings.TrimSpace(tok)
		if raw == "" {
			continue
		}
		out.raw = append(out.raw, raw)
		out.tokens = append(out.tokens, strings.ToLower(util.SquashSpace(raw)))
	}
	out.primaryKey = util.Contains(out.tokens, "pk")
	out.nullable = getNullable(out.tokens)
	return out
}

// null wins over not null; saying neither means not null
func getNullable(tokens []string) bool {
	if util.Contains(tokens, "null") {
		return true
	}
	if util.Contains(tokens, "not null") {
		return false
	}
	return false
}

// getRef finds and parses the `ref: <op> table.field` option. Table and
// field keep the case they were written in.
func (o fieldOptions) getRef(line string) (table, field string, op ir.RefOperator, err error) {
	idx := util.IndexOfFunc(o.tokens, "ref:", func(tok, marker string) bool {
		return strings.Contains(tok, marker)
	})
	if idx < 0 {
		return "", "", "", newParseError(ErrMissingReference, line, "no `ref:` option")
	}
	raw := o.raw[idx]
	m := refPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", "", "", newParseError(ErrMissingReference, line, "malformed reference %q, expected `ref: <op> table.field`", raw)
	}
	op, err = ir.NewRefOperator(m[1])
	if err != nil {
		return "", "", "", newParseError(ErrMissingReference, line, "%s", err.Error())
	}
	parts := strings.Split(m[2], ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", newParseError(ErrMissingReference, line, "malformed reference target %q, expected table.field", m[2])
	}
	return parts[0], parts[1], op, nil
}
