// Package provenance defines the Source annotation carried by every
// translated Avro field, so the translator, the avro exporter, and the
// datum builder can all construct and parse it without importing the root
// package (which imports them in turn). The root package re-exports these
// names as xmlavro.Source / xmlavro.ElementSource / etc.
package provenance

import "strings"

// Kind tags the flavor of XML construct a Source describes.
type Kind int

const (
	// KindNone marks a field with no single XML origin — the wildcard map
	// field, or a schema not derived from one named XML construct.
	KindNone Kind = iota
	KindElement
	KindAttribute
	// KindDocument marks the synthetic top-level record that wraps several
	// global root elements.
	KindDocument
)

// Prop is the Avro schema/field property name the Source annotation is
// serialized under, per spec.md §6.
const Prop = "source"

// WildcardField is the reserved field name for the map collecting
// xs:any-matched elements.
const WildcardField = "others"

// SimpleContentValueField is the field synthesized for the text value of a
// complex type with simple content (an xs:extension over a primitive base
// plus attributes) — the part of the spec's Non-goals ("no mixed content
// beyond simple-content extensions") that is in scope.
const SimpleContentValueField = "value"

// Source is the provenance annotation carried by every translated Avro
// field (and by the synthetic document record): the original XML local
// name, and whether it came from an attribute rather than an element. It
// round-trips through the Avro "source" property so the datum builder can
// route XML children back to the field that produced them.
type Source struct {
	Kind Kind
	Name string
}

// Element builds the Source for a field populated from a child element
// named name.
func Element(name string) Source { return Source{Kind: KindElement, Name: name} }

// Attribute builds the Source for a field populated from an attribute
// named name.
func Attribute(name string) Source { return Source{Kind: KindAttribute, Name: name} }

// Document is the sentinel Source for the synthetic multi-root record.
var Document = Source{Kind: KindDocument}

// None is the zero Source, used for the wildcard map field and for
// schemas with no single XML origin.
var None = Source{Kind: KindNone}

// String renders the Source the way spec.md §3/§6 observed it in tests:
// "element <name>", "attribute <name>", the literal "document", or "" for
// KindNone.
func (s Source) String() string {
	switch s.Kind {
	case KindElement:
		return "element " + s.Name
	case KindAttribute:
		return "attribute " + s.Name
	case KindDocument:
		return "document"
	default:
		return ""
	}
}

// IsAttribute reports whether s describes an attribute origin.
func (s Source) IsAttribute() bool { return s.Kind == KindAttribute }

// Parse parses the string form written by String, as read back from an
// Avro field's "source" property by the datum builder.
func Parse(text string) Source {
	switch {
	case text == "":
		return None
	case text == "document":
		return Document
	case strings.HasPrefix(text, "element "):
		return Element(strings.TrimPrefix(text, "element "))
	case strings.HasPrefix(text, "attribute "):
		return Attribute(strings.TrimPrefix(text, "attribute "))
	default:
		return None
	}
}
