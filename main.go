package main

import (
	"github.com/dbsteward/erdconvert/lib"
	"github.com/dbsteward/erdconvert/lib/encoding/uml"
	"github.com/dbsteward/erdconvert/lib/format"
	"github.com/dbsteward/erdconvert/lib/format/peewee"
)

func main() {
	erd := lib.NewERDConvert(format.LookupMap{
		format.FormatPeewee: peewee.GlobalLookup,
		format.FormatUML:    uml.GlobalLookup,
	})
	erd.ArgParse()
	erd.Notice("Done")
}
