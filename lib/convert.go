package lib

import (
	"io"
	"os"

	"github.com/dbsteward/erdconvert/lib/encoding/uml"
	"github.com/dbsteward/erdconvert/lib/format"
	"github.com/dbsteward/erdconvert/lib/ir"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ConvertFile converts the description file at path, writing the rendered
// tables to out. It returns the number of tables written.
func ConvertFile(cfg *Config, lookup *format.Lookup, path string, out io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not read description file %s", path)
	}
	defer f.Close()

	n, err := Convert(cfg, lookup, f, out)
	if err != nil {
		return n, errors.Wrapf(err, "while converting %s", path)
	}
	return n, nil
}

// Convert streams tables out of in, rendering each as soon as it is read.
// In validate mode the whole input is read and checked first, and nothing is
// written unless every table passes.
func Convert(cfg *Config, lookup *format.Lookup, in io.Reader, out io.Writer) (int, error) {
	reader := uml.ParseAllTables(in)
	reader.Strict = cfg.Strict
	reader.Logger = cfg.logger()

	if cfg.Validate {
		schema, err := reader.ReadSchema()
		if err != nil {
			return 0, err
		}
		if err := ValidateSchema(schema); err != nil {
			return 0, err
		}
		return WriteTables(cfg, lookup, schema.Tables, out)
	}

	count := 0
	for {
		table, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		if err := writeTable(cfg, lookup, table, count == 0, out); err != nil {
			return count, err
		}
		count++
	}
	cfg.logger().Info("conversion finished", "tables", count)
	return count, nil
}

// WriteTables renders already parsed tables in order
func WriteTables(cfg *Config, lookup *format.Lookup, tables []*ir.Table, out io.Writer) (int, error) {
	for i, table := range tables {
		if err := writeTable(cfg, lookup, table, i == 0, out); err != nil {
			return i, err
		}
	}
	cfg.logger().Info("conversion finished", "tables", len(tables))
	return len(tables), nil
}

func writeTable(cfg *Config, lookup *format.Lookup, table *ir.Table, first bool, out io.Writer) error {
	code, err := lookup.Renderer.RenderTable(table)
	if err != nil {
		return errors.Wrapf(err, "could not render table %s", table.Name)
	}
	if first {
		code = lookup.Preamble + code
	} else {
		code = lookup.TableSeparator + code
	}
	if _, err := io.WriteString(out, code); err != nil {
		return errors.Wrapf(err, "could not write table %s", table.Name)
	}
	cfg.logger().Info("rendered table", "table", table.Name, "fields", len(table.Fields))
	return nil
}

// ValidateSchema collects every problem in the schema into one error
func ValidateSchema(schema *ir.Schema) error {
	errs := schema.Validate()
	if len(errs) > 0 {
		return &multierror.Error{
			Errors: errs,
		}
	}
	return nil
}
