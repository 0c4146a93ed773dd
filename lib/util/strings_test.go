package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"user":          "User",
		"user_profile":  "UserProfile",
		"blog__post_":   "BlogPost",
		"already_Camel": "AlreadyCamel",
		"HTTPLog":       "HTTPLog",
		"":              "",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, PascalCase(in), in)
	}
}

func TestCondJoin(t *testing.T) {
	assert.Equal(t, "foo, bar", CondJoin(", ", "foo", "", "bar"))
	assert.Equal(t, "", CondJoin(", ", "", ""))
}

func TestSquashSpace(t *testing.T) {
	assert.Equal(t, "not null", SquashSpace("  not \t  null "))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}

func TestBasename(t *testing.T) {
	assert.Equal(t, "blog", Basename("/tmp/schemas/blog.uml", ".uml"))
}
