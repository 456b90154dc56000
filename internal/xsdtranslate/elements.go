package xsdtranslate

import (
	"encoding/xml"

	"aqwari.net/xml/xmltree"

	"github.com/avroxsd/xmlavro/internal/converr"
	"github.com/avroxsd/xmlavro/internal/names"
	"github.com/avroxsd/xmlavro/internal/provenance"
	"github.com/avroxsd/xmlavro/internal/schema"
)

// resolveTypeRef translates the type a "type" attribute (on an element or
// attribute particle) or an xs:extension/xs:restriction "base" attribute
// points to: an already-registered named type, an XSD built-in, or one of
// this document's own named complexType/simpleType declarations.
func (t *translator) resolveTypeRef(qname xml.Name) (schema.Node, error) {
	if rec, ok := t.reg.LookupRecord(qname); ok {
		return rec, nil
	}
	if e, ok := t.reg.LookupEnum(qname); ok {
		return e, nil
	}
	if isBuiltin(qname) {
		return primitiveFor(qname), nil
	}
	if decl, ok := t.complexDecl[qname]; ok {
		rec := t.reg.PlaceholderRecord(qname)
		if err := t.fillComplexContent(rec, decl); err != nil {
			return nil, err
		}
		return rec, nil
	}
	if decl, ok := t.simpleDecl[qname]; ok {
		return t.translateSimpleTypeNamed(qname, decl)
	}
	return nil, converr.New(converr.ReasonUnsupportedXSDConstruct, "unknown type reference %s", qname.Local)
}

// resolveElementType resolves the Avro schema an xs:element particle's
// content translates to, whether declared via a "type" attribute, a "ref"
// to a global element, an inline xs:complexType/xs:simpleType, or (absent
// any of those) the no-declared-type default of string.
func (t *translator) resolveElementType(el *xmltree.Element) (schema.Node, error) {
	if typeAttr := el.Attr("", "type"); typeAttr != "" {
		return t.resolveTypeRef(el.Resolve(typeAttr))
	}
	if ref := el.Attr("", "ref"); ref != "" {
		qname := el.Resolve(ref)
		decl, ok := t.globalElem[qname]
		if !ok {
			return nil, converr.New(converr.ReasonUnsupportedXSDConstruct, "unresolved element ref %s", qname.Local)
		}
		return t.resolveElementType(decl)
	}
	if inline := firstChild(el, "complexType"); inline != nil {
		return t.translateComplexTypeAnonymous(inline)
	}
	if inline := firstChild(el, "simpleType"); inline != nil {
		return t.translateSimpleTypeAnonymous(inline)
	}
	// No declared type at all. The subset this translator supports has
	// no xs:anyType modeling, so an element with neither a type nor
	// inline content degrades the same way an untyped attribute does.
	return &schema.Primitive{Name: schema.String}, nil
}

// translateElementParticle translates one xs:element appearing inside a
// content model (sequence/all/choice), applying the cardinality rules of
// spec.md §3/§4.3: maxOccurs>1 wins over everything and produces an
// array; otherwise minOccurs=0 or a choice branch produces [T,null];
// otherwise the field is the bare type.
func (t *translator) translateElementParticle(el *xmltree.Element, insideChoice bool, dedup *names.Deduper) (schema.Field, error) {
	localName := el.Attr("", "name")
	if localName == "" {
		if ref := el.Attr("", "ref"); ref != "" {
			localName = el.Resolve(ref).Local
		}
	}
	if localName == "" {
		return schema.Field{}, converr.New(converr.ReasonUnsupportedXSDConstruct, "xs:element particle has neither name nor ref")
	}

	elemType, err := t.resolveElementType(el)
	if err != nil {
		return schema.Field{}, err
	}

	var fieldSchema schema.Node
	switch {
	case maxOccursPlural(el):
		fieldSchema = &schema.Array{Items: elemType}
	case insideChoice || minOccursZero(el):
		fieldSchema = schema.NullableOf(elemType)
	default:
		fieldSchema = elemType
	}

	name := dedup.Next(t.reg.Sanitizer().Name(localName))
	return schema.Field{
		Name:   name,
		Schema: fieldSchema,
		Source: provenance.Element(localName).String(),
	}, nil
}

// translateAttributeParticle translates one xs:attribute declaration.
// use="prohibited" reports skip=true and no field; every other use value
// follows spec.md §4.3 step 2.
func (t *translator) translateAttributeParticle(el *xmltree.Element, dedup *names.Deduper) (field schema.Field, skip bool, err error) {
	use := el.Attr("", "use")
	if use == "" {
		use = "optional"
	}
	if use == "prohibited" {
		return schema.Field{}, true, nil
	}

	localName := el.Attr("", "name")
	if localName == "" {
		if ref := el.Attr("", "ref"); ref != "" {
			localName = el.Resolve(ref).Local
		}
	}
	if localName == "" {
		return schema.Field{}, false, converr.New(converr.ReasonUnsupportedXSDConstruct, "xs:attribute particle has neither name nor ref")
	}

	var attrType schema.Node
	switch {
	case el.Attr("", "type") != "":
		attrType, err = t.resolveTypeRef(el.Resolve(el.Attr("", "type")))
		if err != nil {
			return schema.Field{}, false, err
		}
	default:
		if inline := firstChild(el, "simpleType"); inline != nil {
			attrType, err = t.translateSimpleTypeAnonymous(inline)
			if err != nil {
				return schema.Field{}, false, err
			}
		} else {
			attrType = &schema.Primitive{Name: schema.String}
		}
	}

	if use != "required" {
		attrType = schema.NullableOf(attrType)
	}

	name := dedup.Next(t.reg.Sanitizer().Name(localName))
	return schema.Field{
		Name:   name,
		Schema: attrType,
		Source: provenance.Attribute(localName).String(),
	}, false, nil
}
