package util

import (
	"strings"
	"unicode"
)

func PrefixLines(str, prefix string) string {
	return prefix + strings.ReplaceAll(str, "\n", "\n"+prefix)
}

// joins the listed strings together with the given separator,
// but only if the string is not empty
// e.g. CondJoin(",", "foo", "", "bar") results in "foo,bar"
// whereas strings.Join([]string{"foo", "", "bar"},",") would result in "foo,,bar"
func CondJoin(sep string, strs ...string) string {
	out := ""
	for _, s := range strs {
		if s != "" {
			if out != "" {
				out += sep
			}
			out += s
		}
	}
	return out
}

func MaybeStr(cond bool, str string) string {
	return ChooseStr(cond, str, "")
}

func ChooseStr(cond bool, trueStr, falseStr string) string {
	if cond {
		return trueStr
	}
	return falseStr
}

// collapses every run of whitespace into a single space and trims the ends,
// so "not   null" and " not null " compare equal
func SquashSpace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// converts snake_case to PascalCase: "user_profile" -> "UserProfile".
// Characters after the first of each segment keep their case.
func PascalCase(str string) string {
	out := strings.Builder{}
	for _, part := range strings.Split(str, "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		out.WriteString(string(runes))
	}
	return out.String()
}
