package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	f, err := NewFormat("PeeWee")
	require.NoError(t, err)
	assert.Equal(t, FormatPeewee, f)

	_, err = NewFormat("django")
	assert.Error(t, err)

	var parsed Format
	require.NoError(t, parsed.UnmarshalText([]byte("uml")))
	assert.Equal(t, FormatUML, parsed)
}

func TestLookupMap_Get(t *testing.T) {
	peewee := &Lookup{Extension: ".py"}
	m := LookupMap{FormatPeewee: peewee}

	got, err := m.Get(FormatUnknown)
	require.NoError(t, err)
	assert.Same(t, peewee, got)

	_, err = m.Get(FormatUML)
	assert.Error(t, err)
}
