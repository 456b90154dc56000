package xmlavro

import "github.com/avroxsd/xmlavro/internal/provenance"

// SourceKind tags the flavor of XML construct a field's Source annotation
// describes.
type SourceKind = provenance.Kind

const (
	// SourceNone marks a field with no single XML origin — the wildcard
	// map field, or a schema not derived from one named XML construct.
	SourceNone = provenance.KindNone
	SourceElement = provenance.KindElement
	SourceAttribute = provenance.KindAttribute
	// SourceDocument marks the synthetic top-level record that wraps
	// several global root elements.
	SourceDocument = provenance.KindDocument
)

// WildcardField is the reserved field name for the map collecting
// xs:any-matched elements.
const WildcardField = provenance.WildcardField

// Source is the provenance annotation carried by every translated Avro
// field (and by the synthetic document record): the original XML local
// name, and whether it came from an attribute rather than an element. It
// round-trips through the Avro "source" property so the datum builder can
// route XML children back to the field that produced them.
type Source = provenance.Source

// ElementSource builds the Source for a field populated from a child
// element named name.
func ElementSource(name string) Source { return provenance.Element(name) }

// AttributeSource builds the Source for a field populated from an
// attribute named name.
func AttributeSource(name string) Source { return provenance.Attribute(name) }

// DocumentSource is the sentinel Source for the synthetic multi-root
// record.
var DocumentSource = provenance.Document

// NoSource is the zero Source, used for the wildcard map field and for
// schemas with no single XML origin.
var NoSource = provenance.None

// ParseSource parses the string form written by Source.String, as read
// back from an Avro field's "source" property by the datum builder.
func ParseSource(text string) Source { return provenance.Parse(text) }
