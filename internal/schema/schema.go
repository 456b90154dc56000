// Package schema implements the Avro schema graph the translator builds
// from an XSD document. It is a tagged variant over schema kinds rather
// than an inheritance hierarchy: every traversal is an exhaustive switch
// over Kind.
//
// Named nodes (Record, Enum) are mutable while the translator is filling
// them in, which is what lets a self-referencing XSD complex type resolve
// to the same node instead of recursing forever (see the registry
// package's PlaceholderRecord).
package schema

// Kind tags the variant a Node holds.
type Kind int

const (
	KindPrimitive Kind = iota
	KindRecord
	KindEnum
	KindArray
	KindMap
	KindUnion
)

// Primitive type names, matching the Avro primitive type set.
const (
	Boolean = "boolean"
	Int     = "int"
	Long    = "long"
	Float   = "float"
	Double  = "double"
	Bytes   = "bytes"
	String  = "string"
)

// Node is any member of the Avro schema graph.
type Node interface {
	Kind() Kind
}

// Primitive is a leaf scalar node.
type Primitive struct {
	Name string // one of Boolean, Int, Long, Float, Double, Bytes, String
}

func (*Primitive) Kind() Kind { return KindPrimitive }

// Field is a named member of a Record.
type Field struct {
	Name    string
	Schema  Node
	Default any
	HasDefault bool
	Source  string // provenance, rendered by the root package's Source type
}

// Record is a named, ordered collection of fields. Records are built
// incrementally: a Placeholder is registered with no Fields, and Fields is
// populated once the complex type's content has been translated. A field
// whose Schema is this same *Record (directly, or through an Array/Union)
// is how recursion is represented — the pointer, not the name, carries the
// identity.
type Record struct {
	Name   string
	Fields []Field

	// Source annotates the record itself, not a field of it. Only the
	// synthetic multi-root document record carries one (the literal
	// "document" sentinel); ordinary records leave this empty.
	Source string
}

func (*Record) Kind() Kind { return KindRecord }

// Enum is a named, closed set of symbols.
type Enum struct {
	Name    string
	Symbols []string
}

func (*Enum) Kind() Kind { return KindEnum }

// Array wraps a repeated element schema.
type Array struct {
	Items Node
}

func (*Array) Kind() Kind { return KindArray }

// Map wraps a wildcard-collected value schema; Avro map keys are always
// strings.
type Map struct {
	Values Node
}

func (*Map) Kind() Kind { return KindMap }

// Union is an ordered list of member schemas. The translator only ever
// produces the two-member [T, null] shape described in spec.md, but Union
// is general so the exporter doesn't need a special case.
type Union struct {
	Members []Node
}

func (*Union) Kind() Kind { return KindUnion }

// NullableOf wraps n in a [n, null] union, unless it already is one.
func NullableOf(n Node) *Union {
	if u, ok := n.(*Union); ok {
		return u
	}
	return &Union{Members: []Node{n, &Primitive{Name: "null"}}}
}

// IsNull reports whether n is the Avro null primitive.
func IsNull(n Node) bool {
	p, ok := n.(*Primitive)
	return ok && p.Name == "null"
}
