package format

import (
	"fmt"
	"strings"
)

// Format names a target declaration syntax
type Format string

const (
	FormatUnknown Format = ""
	FormatPeewee  Format = "peewee"
	FormatUML     Format = "uml"
)

const DefaultFormat = FormatPeewee

func NewFormat(from string) (Format, error) {
	to := Format(strings.ToLower(from))
	if to.Equals(FormatUnknown) || to.Equals(FormatPeewee) || to.Equals(FormatUML) {
		return to, nil
	}
	return to, fmt.Errorf("unknown Format: '%s'", from)
}

func (f Format) Equals(other Format) bool {
	return strings.EqualFold(string(f), string(other))
}

// UnmarshalText lets go-arg parse the flag directly into a Format
func (f *Format) UnmarshalText(b []byte) error {
	v, err := NewFormat(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
