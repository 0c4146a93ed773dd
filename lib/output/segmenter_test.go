package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmenter_Lines(t *testing.T) {
	seg := NewIndentedSegmenter(Indent)
	seg.SetHeader(NewRawCode("table %s {", "x"))
	seg.WriteCode(NewRawCode("a int"), nil, Blank, NewRawCode("b\nc"))
	seg.AppendFooter(NewRawCode("}"))

	assert.Equal(t, []string{"table x {", "    a int", "    b\n    c", "}"}, seg.Lines())
	assert.Equal(t, "table x {\n    a int\n    b\n    c\n}\n", seg.String())
}

func TestSegmenter_Empty(t *testing.T) {
	assert.Equal(t, "", NewSegmenter().String())
}
