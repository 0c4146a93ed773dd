package lib

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsteward/erdconvert/lib/encoding/uml"
	"github.com/dbsteward/erdconvert/lib/format/peewee"
)

func testConfig() (*Config, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	return &Config{Logger: slog.New(slog.NewTextHandler(logs, nil))}, logs
}

func readGolden(t *testing.T, name string) string {
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

func TestConvertFile_Peewee(t *testing.T) {
	cfg, logs := testConfig()
	out := &bytes.Buffer{}
	n, err := ConvertFile(cfg, peewee.GlobalLookup, filepath.Join("testdata", "blog.uml"), out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, readGolden(t, "blog.py"), out.String())
	assert.Contains(t, logs.String(), "table=blog_post")
	assert.Contains(t, logs.String(), "tables=2")
}

func TestConvertFile_UML(t *testing.T) {
	cfg, _ := testConfig()
	out := &bytes.Buffer{}
	_, err := ConvertFile(cfg, uml.GlobalLookup, filepath.Join("testdata", "blog.uml"), out)
	require.NoError(t, err)
	normalized := readGolden(t, "blog_normalized.uml")
	assert.Equal(t, normalized, out.String())

	// normalizing is idempotent
	again := &bytes.Buffer{}
	_, err = Convert(cfg, uml.GlobalLookup, strings.NewReader(normalized), again)
	require.NoError(t, err)
	assert.Equal(t, normalized, again.String())
}

func TestConvertFile_Missing(t *testing.T) {
	cfg, _ := testConfig()
	_, err := ConvertFile(cfg, peewee.GlobalLookup, filepath.Join("testdata", "nope.uml"), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestConvert_StopsAtFirstBadLine(t *testing.T) {
	cfg, _ := testConfig()
	input := "table a {\n  id int [pk]\n}\ntable b {\n  mood bogus\n}\ntable c {\n  id int\n}\n"
	out := &bytes.Buffer{}
	n, err := Convert(cfg, peewee.GlobalLookup, strings.NewReader(input), out)
	assert.True(t, errors.Is(err, uml.ErrUnknownDataType))
	assert.Contains(t, err.Error(), "mood bogus")
	assert.Equal(t, 1, n)
	assert.True(t, strings.HasPrefix(out.String(), peewee.Preamble))
	assert.Contains(t, out.String(), "class A(BaseModel):")
	assert.NotContains(t, out.String(), "class C(BaseModel):")
}

func TestConvert_Strict(t *testing.T) {
	input := "table a {\n  id int [pk]\n"

	cfg, logs := testConfig()
	n, err := Convert(cfg, peewee.GlobalLookup, strings.NewReader(input), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, logs.String(), "level=WARN")

	cfg.Strict = true
	_, err = Convert(cfg, peewee.GlobalLookup, strings.NewReader(input), &bytes.Buffer{})
	assert.True(t, errors.Is(err, uml.ErrUnterminatedTable))
}

func TestConvert_PreambleOnlyOnce(t *testing.T) {
	cfg, _ := testConfig()
	input := "table a {\n  id int [pk]\n}\ntable b {\n  id int [pk]\n}\n"

	out := &bytes.Buffer{}
	_, err := Convert(cfg, peewee.GlobalLookup, strings.NewReader(input), out)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "from peewee import *"))
	assert.True(t, strings.HasPrefix(out.String(), peewee.Preamble+"class A(BaseModel):"))

	out.Reset()
	_, err = Convert(cfg, peewee.GlobalLookup, strings.NewReader(""), out)
	require.NoError(t, err)
	assert.Empty(t, out.String())

	out.Reset()
	_, err = Convert(cfg, uml.GlobalLookup, strings.NewReader(input), out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "table a {"))
}

func TestConvert_Validate(t *testing.T) {
	input := readGolden(t, "invalid.uml")

	cfg, _ := testConfig()
	out := &bytes.Buffer{}
	n, err := Convert(cfg, peewee.GlobalLookup, strings.NewReader(input), out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cfg.Validate = true
	out.Reset()
	_, err = Convert(cfg, peewee.GlobalLookup, strings.NewReader(input), out)
	require.Error(t, err)
	assert.Empty(t, out.String())

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)
	assert.Contains(t, merr.Errors[0].Error(), "declares field id more than once")
	assert.Contains(t, merr.Errors[1].Error(), "composite primary key")
	assert.Contains(t, merr.Errors[2].Error(), "table user is declared more than once")
}

func TestConvert_ValidatePasses(t *testing.T) {
	cfg, _ := testConfig()
	cfg.Validate = true
	out := &bytes.Buffer{}
	n, err := Convert(cfg, peewee.GlobalLookup, strings.NewReader(readGolden(t, "blog.uml")), out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, readGolden(t, "blog.py"), out.String())
}

func TestLogHandler_ForwardsToZerolog(t *testing.T) {
	buf := &bytes.Buffer{}
	erd := &ERDConvert{logger: zerolog.New(buf).Level(zerolog.InfoLevel)}
	l := slog.New(newLogHandler(erd))

	l.Debug("hidden")
	l.Warn("table is missing its closing brace", "table", "a")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "table=a")
}
