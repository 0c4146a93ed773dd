package format

import "github.com/dbsteward/erdconvert/lib/ir"

// Renderer turns one neutral table into declaration text in its format
type Renderer interface {
	RenderTable(table *ir.Table) (string, error)
}
