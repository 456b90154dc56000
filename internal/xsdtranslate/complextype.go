package xsdtranslate

import (
	"aqwari.net/xml/xmltree"

	"github.com/avroxsd/xmlavro/internal/converr"
	"github.com/avroxsd/xmlavro/internal/names"
	"github.com/avroxsd/xmlavro/internal/provenance"
	"github.com/avroxsd/xmlavro/internal/schema"
)

// translateComplexTypeAnonymous translates an inline xs:complexType that
// has no name attribute — one nested directly under an xs:element. Per
// the reference converter's rootRecord fixture, anonymous complex types
// always get the registry's generated typeN name, even when they are the
// sole content of the document's single root element.
func (t *translator) translateComplexTypeAnonymous(decl *xmltree.Element) (*schema.Record, error) {
	rec := t.reg.AnonymousRecord()
	if err := t.fillComplexContent(rec, decl); err != nil {
		return nil, err
	}
	return rec, nil
}

// fillComplexContent walks one xs:complexType declaration's attributes
// and content particle and fills rec.Fields, per spec.md §4.3's complex
// type translation rules. rec must already be registered (as a
// Placeholder or an AnonymousRecord) before this is called, so a
// recursive self-reference encountered while walking resolves to the
// same pointer.
func (t *translator) fillComplexContent(rec *schema.Record, decl *xmltree.Element) error {
	dedup := names.NewDeduper()
	var fields []schema.Field
	var wildcardAdded bool

	// xs:simpleContent/xs:complexContent wrap an xs:extension (or
	// xs:restriction) that names a base type and adds its own
	// attributes/content. This is the "simple-content extension" the
	// spec's Non-goals explicitly leave in scope.
	contentHost := decl
	if sc := firstChild(decl, "simpleContent"); sc != nil {
		derivation := firstChild(sc, "extension")
		if derivation == nil {
			derivation = firstChild(sc, "restriction")
		}
		if derivation == nil {
			return converr.New(converr.ReasonUnsupportedXSDConstruct, "xs:simpleContent without extension or restriction")
		}
		baseType, err := t.resolveTypeRef(derivation.Resolve(derivation.Attr("", "base")))
		if err != nil {
			return err
		}
		fields = append(fields, schema.Field{
			Name:   provenance.SimpleContentValueField,
			Schema: baseType,
			Source: provenance.None.String(),
		})
		dedup.Next(provenance.SimpleContentValueField)
		contentHost = derivation
	} else if cc := firstChild(decl, "complexContent"); cc != nil {
		derivation := firstChild(cc, "extension")
		if derivation == nil {
			derivation = firstChild(cc, "restriction")
		}
		if derivation == nil {
			return converr.New(converr.ReasonUnsupportedXSDConstruct, "xs:complexContent without extension or restriction")
		}
		if derivation.Name.Local == "extension" {
			baseType, err := t.resolveTypeRef(derivation.Resolve(derivation.Attr("", "base")))
			if err != nil {
				return err
			}
			baseRec, ok := baseType.(*schema.Record)
			if !ok {
				return converr.New(converr.ReasonUnsupportedXSDConstruct, "xs:extension base is not a complex type")
			}
			for _, f := range baseRec.Fields {
				fields = append(fields, f)
				dedup.Next(f.Name)
			}
		}
		contentHost = derivation
	}

	for _, attrEl := range directChildren(contentHost, "attribute") {
		f, skip, err := t.translateAttributeParticle(attrEl, dedup)
		if err != nil {
			return err
		}
		if !skip {
			fields = append(fields, f)
		}
	}

	for i := range contentHost.Children {
		child := &contentHost.Children[i]
		if child.Name.Space != xsdNS {
			continue
		}
		switch child.Name.Local {
		case "sequence", "all":
			if err := t.walkParticle(child, false, &fields, &wildcardAdded, dedup); err != nil {
				return err
			}
		case "choice":
			if err := t.walkParticle(child, true, &fields, &wildcardAdded, dedup); err != nil {
				return err
			}
		case "element":
			// A bare element particle directly under the type, with no
			// enclosing sequence/all/choice, behaves like a one-element
			// sequence.
			f, err := t.translateElementParticle(child, false, dedup)
			if err != nil {
				return err
			}
			fields = append(fields, f)
		case "any":
			t.addWildcard(&fields, &wildcardAdded)
		}
	}

	rec.Fields = fields
	return nil
}

// walkParticle flattens an xs:sequence/xs:all/xs:choice group's direct
// children into fields, recursing into nested groups. insideChoice, once
// true, stays true for everything nested beneath the choice: every
// immediate (and nested) branch of a choice is optional, per spec.md
// §4.3.
func (t *translator) walkParticle(group *xmltree.Element, insideChoice bool, fields *[]schema.Field, wildcardAdded *bool, dedup *names.Deduper) error {
	for i := range group.Children {
		child := &group.Children[i]
		if child.Name.Space != xsdNS {
			continue
		}
		switch child.Name.Local {
		case "element":
			f, err := t.translateElementParticle(child, insideChoice, dedup)
			if err != nil {
				return err
			}
			*fields = append(*fields, f)
		case "any":
			t.addWildcard(fields, wildcardAdded)
		case "sequence", "all":
			if err := t.walkParticle(child, insideChoice, fields, wildcardAdded, dedup); err != nil {
				return err
			}
		case "choice":
			if err := t.walkParticle(child, true, fields, wildcardAdded, dedup); err != nil {
				return err
			}
		}
	}
	return nil
}

// addWildcard appends the single "others" map field the first time an
// xs:any is seen; later xs:any siblings (at any nesting depth within the
// same complex type) collapse into that same field, per spec.md §4.3
// step 3.
func (t *translator) addWildcard(fields *[]schema.Field, wildcardAdded *bool) {
	if *wildcardAdded {
		return
	}
	*wildcardAdded = true
	*fields = append(*fields, schema.Field{
		Name:   provenance.WildcardField,
		Schema: &schema.Map{Values: &schema.Primitive{Name: schema.String}},
		Source: provenance.None.String(),
	})
}
