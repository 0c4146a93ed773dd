package uml

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/pkg/errors"
)

var tableHeaderPattern = regexp.MustCompile(`^table\s+([a-zA-Z_]\w*)\s*\{$`)

const (
	commentPrefix = "//"
	tableFooter   = "}"
)

// Reader pulls tables one at a time out of a description stream. It is
// forward-only: lines are consumed as they are read and nothing is kept once
// a table has been returned.
type Reader struct {
	// Strict turns a table that runs off the end of its block into an
	// ErrUnterminatedTable instead of a warning.
	Strict bool
	Logger *slog.Logger

	scanner *bufio.Scanner
	lineNo  int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		Logger:  slog.New(discardHandler{}),
	}
}

// ParseAllTables is the lazy table sequence over r. Call Next until it
// returns io.EOF.
func ParseAllTables(r io.Reader) *Reader {
	return NewReader(r)
}

// nextLine returns the next trimmed line that is neither blank nor a comment
func (self *Reader) nextLine() (string, bool, error) {
	for self.scanner.Scan() {
		self.lineNo++
		line := strings.TrimSpace(self.scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		return line, true, nil
	}
	if err := self.scanner.Err(); err != nil {
		return "", false, errors.Wrapf(err, "while reading line %d", self.lineNo+1)
	}
	return "", false, nil
}

// Next returns the next table in the stream, or io.EOF when there are no
// more tables.
func (self *Reader) Next() (*ir.Table, error) {
	line, ok, err := self.nextLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, io.EOF
	}
	m := tableHeaderPattern.FindStringSubmatch(line)
	if m == nil {
		return nil, atLine(newParseError(ErrMalformedTableHeader, line, "expected `table <name> {`"), self.lineNo)
	}
	table := ir.NewTable(m[1])
	headerLineNo := self.lineNo

	for {
		line, ok, err := self.nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return self.unterminated(table, headerLineNo, "end of input")
		}
		if line == tableFooter {
			self.Logger.Debug("read table", "table", table.Name, "fields", len(table.Fields))
			return table, nil
		}
		// a header before `}` is an error whether strict or not
		if tableHeaderPattern.MatchString(line) {
			return table, self.unterminatedError(table, headerLineNo, "start of another table at line "+strconv.Itoa(self.lineNo))
		}
		field, err := ParseField(line)
		if err != nil {
			return nil, atLine(err, self.lineNo)
		}
		table.AddField(field)
	}
}

func (self *Reader) unterminatedError(table *ir.Table, headerLineNo int, reachedWhat string) error {
	return &ParseError{
		Kind:   ErrUnterminatedTable,
		Line:   "table " + table.Name + " {",
		LineNo: headerLineNo,
		Detail: "reached " + reachedWhat + " before `}`",
	}
}

func (self *Reader) unterminated(table *ir.Table, headerLineNo int, reachedWhat string) (*ir.Table, error) {
	if self.Strict {
		return table, self.unterminatedError(table, headerLineNo, reachedWhat)
	}
	self.Logger.Warn("table is missing its closing brace",
		"table", table.Name, "line", headerLineNo, "reached", reachedWhat)
	return table, nil
}

// ReadSchema drains the reader into a schema, stopping at the first error
func (self *Reader) ReadSchema() (*ir.Schema, error) {
	schema := &ir.Schema{}
	for {
		table, err := self.Next()
		if err == io.EOF {
			return schema, nil
		}
		if err != nil {
			return schema, err
		}
		schema.AddTable(table)
	}
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
