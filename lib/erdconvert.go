package lib

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dbsteward/erdconvert/lib/config"
	"github.com/dbsteward/erdconvert/lib/format"
	"github.com/dbsteward/erdconvert/lib/live"
	"github.com/dbsteward/erdconvert/lib/util"
)

var Version = "1.0.0"

type ERDConvert struct {
	logger    zerolog.Logger
	slogger   *slog.Logger
	lookupMap format.LookupMap
	config    *Config
}

func NewERDConvert(lookupMap format.LookupMap) *ERDConvert {
	erd := &ERDConvert{
		logger:    zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
		lookupMap: lookupMap,
	}
	erd.slogger = slog.New(newLogHandler(erd))
	return erd
}

func (self *ERDConvert) ArgParse() {
	args := &config.Args{}
	arg.MustParse(args)

	self.setVerbosity(args)

	if args.DbSchemaDump && len(args.File) > 0 {
		self.Fatal("Parameter error: file and dbschemadump options are not to be mixed")
	}
	if len(args.ResFile) > 0 && len(args.OutputDir) > 0 {
		self.Fatal("Parameter error: resfile and outputdir options are not to be mixed")
	}

	// determine operation and check arguments for each
	mode := ModeUnknown
	switch {
	case args.DbSchemaDump:
		mode = ModeExtract
	case len(args.File) > 0:
		mode = ModeConvert
	}

	if mode == ModeExtract {
		if len(args.DbHost) == 0 {
			self.Fatal("dbhost not specified")
		}
		if len(args.DbName) == 0 {
			self.Fatal("dbname not specified")
		}
		if len(args.DbUser) == 0 {
			self.Fatal("dbuser not specified")
		}
	}
	if mode == ModeExtract && args.Strict {
		self.Warning("strict only applies when converting a description file")
	}
	if len(args.OutputDir) > 0 && !util.IsDir(args.OutputDir) {
		self.Fatal("outputdir is not a directory, must be a writable directory")
	}

	self.Notice("erdconvert version %s", Version)

	// extraction produces the description language unless told otherwise
	targetFormat := args.Format
	if targetFormat == format.FormatUnknown && mode == ModeExtract {
		targetFormat = format.FormatUML
	}
	if targetFormat == format.FormatUnknown {
		targetFormat = format.DefaultFormat
	}
	lookup, err := self.lookupMap.Get(targetFormat)
	if err != nil {
		self.Fatal("%s", err.Error())
	}
	self.Notice("Using format=%s", targetFormat)

	self.config = &Config{
		Logger:   self.slogger,
		Format:   targetFormat,
		Strict:   args.Strict,
		Validate: args.Validate,
	}

	switch mode {
	case ModeConvert:
		err = self.doConvert(lookup, args.File, self.outputFile(args, args.File, lookup))
	case ModeExtract:
		err = self.doExtract(lookup, args, self.outputFile(args, args.DbName, lookup))
	default:
		self.Fatal("No operation specified")
	}
	if err != nil {
		self.Fatal("%s", err.Error())
	}
}

func (self *ERDConvert) Fatal(s string, args ...interface{}) {
	self.logger.Fatal().Msgf(s, args...)
}

func (self *ERDConvert) Warning(s string, args ...interface{}) {
	self.logger.Warn().Msgf(s, args...)
}
func (self *ERDConvert) Notice(s string, args ...interface{}) {
	self.Info(s, args...)
}
func (self *ERDConvert) Info(s string, args ...interface{}) {
	self.logger.Info().Msgf(s, args...)
}

func (self *ERDConvert) setVerbosity(args *config.Args) {
	// remember, lower level is higher verbosity
	// we're abusing the fact that zerolog.LogLevel is defined as an int8
	level := zerolog.InfoLevel

	if args.Debug {
		level = zerolog.TraceLevel
	}

	for _, v := range args.Verbose {
		if v {
			level -= 1
		} else {
			level += 1
		}
	}
	for _, q := range args.Quiet {
		if q {
			level += 1
		} else {
			level -= 1
		}
	}

	// clamp it to valid values
	if level > zerolog.PanicLevel {
		level = zerolog.PanicLevel
	}
	if level < zerolog.TraceLevel {
		level = zerolog.TraceLevel
	}

	self.logger = self.logger.Level(level)
}

// outputFile picks where results go; the empty string means stdout
func (self *ERDConvert) outputFile(args *config.Args, input string, lookup *format.Lookup) string {
	if len(args.ResFile) > 0 {
		return args.ResFile
	}
	if len(args.OutputDir) > 0 {
		return path.Join(args.OutputDir, util.Basename(input, path.Ext(input))+lookup.Extension)
	}
	return ""
}

func (self *ERDConvert) doConvert(lookup *format.Lookup, file string, outputFile string) error {
	self.Info("Converting %s", file)
	buf := &bytes.Buffer{}
	n, err := ConvertFile(self.config, lookup, file, buf)
	if err != nil {
		return err
	}
	self.Info("%d tables converted", n)
	return self.saveResult(buf.String(), outputFile)
}

func (self *ERDConvert) doExtract(lookup *format.Lookup, args *config.Args, outputFile string) error {
	var pass string
	if args.DbPassword != nil {
		pass = *args.DbPassword
	} else {
		var err error
		pass, err = util.PromptPassword("Password: ")
		if err != nil {
			return errors.Wrap(err, "could not read password")
		}
	}

	ctx := context.Background()
	conn, err := live.NewConnection(ctx, args.DbHost, args.DbPort, args.DbName, args.DbUser, pass)
	if err != nil {
		return err
	}
	defer conn.Disconnect()

	schema, err := live.Extract(ctx, self.slogger, live.NewIntrospector(conn), args.DbSchema)
	if err != nil {
		return err
	}
	if self.config.Validate {
		if err := ValidateSchema(schema); err != nil {
			return err
		}
	}
	buf := &bytes.Buffer{}
	if _, err := WriteTables(self.config, lookup, schema.Tables, buf); err != nil {
		return err
	}
	return self.saveResult(buf.String(), outputFile)
}

func (self *ERDConvert) saveResult(content string, outputFile string) error {
	if outputFile == "" {
		_, err := os.Stdout.WriteString(content)
		return errors.Wrap(err, "could not write result to stdout")
	}
	self.Notice("Saving result to %s", outputFile)
	if err := util.WriteFile(content, outputFile); err != nil {
		return errors.Wrapf(err, "could not write result to %s", outputFile)
	}
	return nil
}
