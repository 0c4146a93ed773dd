package output

import (
	"fmt"
	"strings"

	"github.com/dbsteward/erdconvert/lib/util"
)

// Indent is one level of indentation in every generated format
const Indent = "    "

type ToCode interface {
	ToCode() string
}

func NewRawCode(format string, args ...interface{}) rawCode {
	return rawCode(fmt.Sprintf(format, args...))
}

type rawCode string

func (c rawCode) ToCode() string {
	return string(c)
}

// Blank is an empty line
var Blank ToCode = rawCode("")

func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// NewIndentedSegmenter returns a segmenter that indents every body
// statement by the given prefix
func NewIndentedSegmenter(indent string) *Segmenter {
	return &Segmenter{indent: indent}
}

// Segmenter is a output segmenter that holds everything
// internally in arrays and the returns the properly ordered
// list from Lines()
type Segmenter struct {
	indent string
	Header []ToCode
	Body   []ToCode
	Footer []ToCode
	final  []string
}

// Close compiles the different parts into a single list of lines.
// Nothing may be written after Close.
func (s *Segmenter) Close() error {
	s.final = nil
	for _, stmt := range s.Header {
		s.final = append(s.final, stmt.ToCode())
	}
	for _, stmt := range s.Body {
		s.final = append(s.final, util.PrefixLines(stmt.ToCode(), s.indent))
	}
	for _, stmt := range s.Footer {
		s.final = append(s.final, stmt.ToCode())
	}
	s.Header = nil
	s.Body = nil
	s.Footer = nil
	return nil
}

// SetHeader removes any previous header statements and
// starts the header fresh
func (s *Segmenter) SetHeader(stmt ToCode) error {
	s.Header = []ToCode{stmt}
	return nil
}

// AppendFooter adds a new statement to the footer
func (s *Segmenter) AppendFooter(stmt ToCode) error {
	if stmt == nil {
		return nil
	}
	s.Footer = append(s.Footer, stmt)
	return nil
}

// WriteCode appends each generator to the body in turn. Generators
// producing the empty string are dropped.
func (s *Segmenter) WriteCode(generators ...ToCode) error {
	for _, g := range generators {
		if g == nil || g.ToCode() == "" {
			continue
		}
		s.Body = append(s.Body, g)
	}
	return nil
}

// Lines compiles the 3 parts in a single list if it
// wasn't previously done, then returns that list.
func (s *Segmenter) Lines() []string {
	if s.final == nil {
		_ = s.Close()
	}
	return s.final
}

// String returns all lines, each terminated by a newline
func (s *Segmenter) String() string {
	lines := s.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
