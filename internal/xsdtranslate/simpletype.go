package xsdtranslate

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"

	"github.com/avroxsd/xmlavro/internal/names"
	"github.com/avroxsd/xmlavro/internal/schema"
)

// translateSimpleTypeAnonymous translates an inline xs:simpleType with no
// name attribute: an enumeration becomes an Avro enum named by the
// registry's generated enumN, and any other restriction degrades to its
// base primitive, per spec.md §4.3.
func (t *translator) translateSimpleTypeAnonymous(decl *xmltree.Element) (schema.Node, error) {
	restr := firstChild(decl, "restriction")
	if restr == nil {
		return &schema.Primitive{Name: schema.String}, nil
	}
	if symbols := enumerationSymbols(restr, t.reg.Sanitizer()); len(symbols) > 0 {
		return t.reg.AnonymousEnum(symbols), nil
	}
	base := restr.Attr("", "base")
	if base == "" {
		return &schema.Primitive{Name: schema.String}, nil
	}
	return t.resolveTypeRef(restr.Resolve(base))
}

// translateSimpleTypeNamed is translateSimpleTypeAnonymous for a
// top-level named xs:simpleType, interning the resulting enum (if any)
// under qname so repeated references share the same *schema.Enum.
func (t *translator) translateSimpleTypeNamed(qname xml.Name, decl *xmltree.Element) (schema.Node, error) {
	restr := firstChild(decl, "restriction")
	if restr == nil {
		return &schema.Primitive{Name: schema.String}, nil
	}
	if symbols := enumerationSymbols(restr, t.reg.Sanitizer()); len(symbols) > 0 {
		return t.reg.NamedEnum(qname, symbols), nil
	}
	base := restr.Attr("", "base")
	if base == "" {
		return &schema.Primitive{Name: schema.String}, nil
	}
	return t.resolveTypeRef(restr.Resolve(base))
}

// enumerationSymbols collects and sanitizes the value of every
// xs:enumeration facet directly under restr, in declaration order.
func enumerationSymbols(restr *xmltree.Element, san *names.Sanitizer) []string {
	var symbols []string
	for _, e := range directChildren(restr, "enumeration") {
		symbols = append(symbols, san.Name(e.Attr("", "value")))
	}
	return symbols
}
