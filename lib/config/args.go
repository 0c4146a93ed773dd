package config

import (
	"github.com/dbsteward/erdconvert/lib/format"
)

type Args struct {
	// Global Switches and Flags
	Format  format.Format `arg:"--format" help:"output format, peewee or uml. Defaults to peewee when converting and uml when extracting"`
	Verbose []bool        `arg:"-v" help:"see more detail (verbose). -vvv is not advised for normal use."`
	Quiet   []bool        `arg:"-q" help:"see less detail (quiet)."`
	Debug   bool          `arg:"--debug" help:"display extended information about errors. Automatically implies -vv."`
	// Handled by go-arg
	// Help bool `arg:"-h,--help" help:"show this usage information"`

	// Converting a description file
	File     string `arg:"--file" help:"description file to convert"`
	Strict   bool   `arg:"--strict" help:"fail on a table missing its closing brace instead of warning"`
	Validate bool   `arg:"--validate" help:"check every table for duplicate fields and tables and composite primary keys before rendering"`

	// Database definition extraction
	DbSchemaDump bool    `arg:"--dbschemadump" help:"extract the description of a live postgres schema"`
	DbHost       string  `arg:"--dbhost"`
	DbPort       uint    `arg:"--dbport" default:"5432"`
	DbName       string  `arg:"--dbname"`
	DbUser       string  `arg:"--dbuser"`
	DbPassword   *string `arg:"--dbpassword" help:"prompted for on the terminal when not given"`
	DbSchema     string  `arg:"--dbschema" default:"public"`

	// Output options
	ResFile   string `arg:"--resfile" help:"file to write the result to instead of stdout"`
	OutputDir string `arg:"--outputdir" help:"directory to write <input name><format extension> into"`
}
