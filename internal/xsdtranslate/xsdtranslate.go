// Package xsdtranslate walks a parsed XSD document and builds the Avro
// schema graph (internal/schema) it describes, per spec.md §4.3. It hand-
// walks the xmltree.Element DOM rather than going through
// aqwari.net/xml/xsd's Schema/ComplexType model: that model doesn't
// retain global top-level elements and flattens xs:choice into plain
// optionality, both of which the root-shaping and choice rules here need
// to see directly. It does still use aqwari.net/xml/xsd for primitive
// built-in classification (primitives.go).
package xsdtranslate

import (
	"encoding/xml"
	"strconv"

	"aqwari.net/xml/xmltree"

	"github.com/avroxsd/xmlavro/internal/converr"
	"github.com/avroxsd/xmlavro/internal/names"
	"github.com/avroxsd/xmlavro/internal/provenance"
	"github.com/avroxsd/xmlavro/internal/registry"
	"github.com/avroxsd/xmlavro/internal/schema"
)

// xsdNS is the one XSD namespace the translator understands, per spec.md
// §6.
const xsdNS = "http://www.w3.org/2001/XMLSchema"

// Translate walks an XSD document's root xs:schema element and returns
// the Avro schema it describes. doc must already be namespace-resolved
// xmltree output (see aqwari.net/xml/xmltree.Parse).
func Translate(doc *xmltree.Element) (schema.Node, error) {
	if doc.Name.Space != xsdNS || doc.Name.Local != "schema" {
		return nil, converr.New(converr.ReasonMissingNamespace,
			"document root is not bound to the XML Schema namespace %s", xsdNS)
	}

	t := &translator{
		reg:         registry.New(),
		schemaNS:    doc.Attr("", "targetNamespace"),
		complexDecl: make(map[xml.Name]*xmltree.Element),
		simpleDecl:  make(map[xml.Name]*xmltree.Element),
		globalElem:  make(map[xml.Name]*xmltree.Element),
	}
	t.index(doc)
	return t.translateRoot(doc)
}

// translator holds the state shared across one Translate call: the
// registry (and its sanitizer), and the indexes of top-level declarations
// a type or element reference resolves against. It is discarded when
// Translate returns, matching spec.md §5.
type translator struct {
	reg      *registry.Registry
	schemaNS string

	complexDecl map[xml.Name]*xmltree.Element
	simpleDecl  map[xml.Name]*xmltree.Element
	globalElem  map[xml.Name]*xmltree.Element
}

// index scans doc's direct children and records every named top-level
// complexType, simpleType and element declaration, in document order.
func (t *translator) index(doc *xmltree.Element) {
	for i := range doc.Children {
		child := &doc.Children[i]
		if child.Name.Space != xsdNS {
			continue
		}
		name := child.Attr("", "name")
		if name == "" {
			continue
		}
		qname := xml.Name{Space: t.schemaNS, Local: name}
		switch child.Name.Local {
		case "complexType":
			t.complexDecl[qname] = child
		case "simpleType":
			t.simpleDecl[qname] = child
		case "element":
			t.globalElem[qname] = child
		}
	}
}

// translateRoot applies spec.md §4.3's root-shaping rules to doc's
// global elements.
func (t *translator) translateRoot(doc *xmltree.Element) (schema.Node, error) {
	var roots []*xmltree.Element
	for i := range doc.Children {
		child := &doc.Children[i]
		if child.Name.Space == xsdNS && child.Name.Local == "element" && child.Attr("", "name") != "" {
			roots = append(roots, child)
		}
	}
	if len(roots) == 0 {
		return nil, converr.New(converr.ReasonUnsupportedXSDConstruct, "xs:schema declares no global elements")
	}

	if len(roots) == 1 {
		return t.translateGlobalElementType(roots[0])
	}

	rec := &schema.Record{Name: "document", Source: provenance.Document.String()}
	dedup := names.NewDeduper()
	for _, el := range roots {
		elType, err := t.translateGlobalElementType(el)
		if err != nil {
			return nil, err
		}
		localName := el.Attr("", "name")
		fieldName := dedup.Next(t.reg.Sanitizer().Name(localName))
		rec.Fields = append(rec.Fields, schema.Field{
			Name:   fieldName,
			Schema: schema.NullableOf(elType),
			Source: provenance.Element(localName).String(),
		})
	}
	return rec, nil
}

// translateGlobalElementType resolves a global xs:element's type, exactly
// as an ordinary element particle would, but without the optional/array
// wrapping that only applies to elements nested inside a content model.
func (t *translator) translateGlobalElementType(el *xmltree.Element) (schema.Node, error) {
	return t.resolveElementType(el)
}

// directChildren returns el's immediate children in the XSD namespace
// named local, as addressable pointers into el.Children.
func directChildren(el *xmltree.Element, local string) []*xmltree.Element {
	var out []*xmltree.Element
	for i := range el.Children {
		child := &el.Children[i]
		if child.Name.Space == xsdNS && child.Name.Local == local {
			out = append(out, child)
		}
	}
	return out
}

// firstChild returns el's first immediate XSD-namespace child named
// local, or nil.
func firstChild(el *xmltree.Element, local string) *xmltree.Element {
	for i := range el.Children {
		child := &el.Children[i]
		if child.Name.Space == xsdNS && child.Name.Local == local {
			return child
		}
	}
	return nil
}

// maxOccursPlural reports whether el's maxOccurs attribute allows more
// than one occurrence: the literal "unbounded", or a numeric value
// greater than 1.
func maxOccursPlural(el *xmltree.Element) bool {
	v := el.Attr("", "maxOccurs")
	if v == "" {
		return false
	}
	if v == "unbounded" {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n > 1
}

// minOccursZero reports whether el's minOccurs attribute is explicitly 0.
// The XSD default, when absent, is 1.
func minOccursZero(el *xmltree.Element) bool {
	return el.Attr("", "minOccurs") == "0"
}
