package ir

// Field is one column of a Table. The set of implementations is closed:
// Integer, Varchar, Boolean, Float, Bytes, DateTime, Json, Array and
// ForeignKey. A field's kind never changes after construction.
type Field interface {
	FieldName() string
	Kind() FieldKind
	isField()
}

// ArrayElement is the subset of fields that may appear inside an Array.
type ArrayElement interface {
	Field
	IsNullable() bool
	isArrayElement()
}

type Integer struct {
	Name       string
	PrimaryKey bool
	Nullable   bool
}

func (f Integer) FieldName() string { return f.Name }
func (f Integer) Kind() FieldKind   { return FieldKindInteger }
func (f Integer) IsNullable() bool  { return f.Nullable }
func (Integer) isField()            {}
func (Integer) isArrayElement()     {}

// DefaultVarcharSize is assumed whenever a varchar is declared without a size.
const DefaultVarcharSize = 256

type Varchar struct {
	Name       string
	Size       int
	PrimaryKey bool
	Nullable   bool
}

// NewVarchar returns a Varchar of the default size
func NewVarchar(name string) Varchar {
	return Varchar{Name: name, Size: DefaultVarcharSize}
}

func (f Varchar) FieldName() string { return f.Name }
func (f Varchar) Kind() FieldKind   { return FieldKindVarchar }
func (f Varchar) IsNullable() bool  { return f.Nullable }
func (Varchar) isField()            {}
func (Varchar) isArrayElement()     {}

// HasDefaultSize is true when the size is the implicit one, either
// explicitly or because it was never set.
func (f Varchar) HasDefaultSize() bool {
	return f.Size == DefaultVarcharSize || f.Size == 0
}

type Boolean struct {
	Name     string
	Nullable bool
}

func (f Boolean) FieldName() string { return f.Name }
func (f Boolean) Kind() FieldKind   { return FieldKindBoolean }
func (f Boolean) IsNullable() bool  { return f.Nullable }
func (Boolean) isField()            {}
func (Boolean) isArrayElement()     {}

type Float struct {
	Name     string
	Nullable bool
}

func (f Float) FieldName() string { return f.Name }
func (f Float) Kind() FieldKind   { return FieldKindFloat }
func (Float) isField()            {}

type Bytes struct {
	Name     string
	Nullable bool
}

func (f Bytes) FieldName() string { return f.Name }
func (f Bytes) Kind() FieldKind   { return FieldKindBytes }
func (Bytes) isField()            {}

type DateTime struct {
	Name     string
	Nullable bool
}

func (f DateTime) FieldName() string { return f.Name }
func (f DateTime) Kind() FieldKind   { return FieldKindDateTime }
func (DateTime) isField()            {}

type Json struct {
	Name     string
	Nullable bool
}

func (f Json) FieldName() string { return f.Name }
func (f Json) Kind() FieldKind   { return FieldKindJson }
func (Json) isField()            {}

// ElementName is the name every array element carries
const ElementName = "default"

// Array holds exactly one level of elements; arrays of arrays are not
// representable.
type Array struct {
	Name     string
	Subfield ArrayElement
}

func (f Array) FieldName() string { return f.Name }
func (f Array) Kind() FieldKind   { return FieldKindArray }
func (Array) isField()            {}

type ForeignKey struct {
	Name        string
	RefTable    string
	RefField    string
	RefOperator RefOperator
	Nullable    bool
}

func (f ForeignKey) FieldName() string { return f.Name }
func (f ForeignKey) Kind() FieldKind   { return FieldKindForeignKey }
func (ForeignKey) isField()            {}

// Reference returns the referenced "table.field" pair
func (f ForeignKey) Reference() string {
	return f.RefTable + "." + f.RefField
}

// IsPrimaryKey reports whether the field is flagged as a primary key. Only
// integers and varchars can carry the flag.
func IsPrimaryKey(f Field) bool {
	switch t := f.(type) {
	case Integer:
		return t.PrimaryKey
	case Varchar:
		return t.PrimaryKey
	}
	return false
}

// IsNullable reports the nullability of any field. Arrays take the
// nullability of their element.
func IsNullable(f Field) bool {
	switch t := f.(type) {
	case Integer:
		return t.Nullable
	case Varchar:
		return t.Nullable
	case Boolean:
		return t.Nullable
	case Float:
		return t.Nullable
	case Bytes:
		return t.Nullable
	case DateTime:
		return t.Nullable
	case Json:
		return t.Nullable
	case ForeignKey:
		return t.Nullable
	case Array:
		if t.Subfield == nil {
			return false
		}
		return t.Subfield.IsNullable()
	}
	return false
}
