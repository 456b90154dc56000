// Package xmlbuild consumes a translated Avro schema (internal/avroexport's
// output) plus an XML instance DOM and produces an Avro generic datum, per
// spec.md §4.4: a map[string]any for records and wildcard maps, a []any
// for arrays, and a native Go scalar for primitives and enum values.
package xmlbuild

import (
	"strings"

	"aqwari.net/xml/xmltree"
	"github.com/hamba/avro/v2"

	"github.com/avroxsd/xmlavro/internal/converr"
	"github.com/avroxsd/xmlavro/internal/provenance"
)

// Build produces the datum root describes, dispatching on its schema
// kind per spec.md §4.4.
func Build(sch avro.Schema, root *xmltree.Element) (any, error) {
	return buildNode(sch, root, "$root")
}

// buildNode builds the datum el's content represents, where sch is the
// (non-union) schema that content must match. Callers holding a
// [T,null]-union field schema resolve to the non-null member before
// calling this.
func buildNode(sch avro.Schema, el *xmltree.Element, fieldName string) (any, error) {
	switch s := sch.(type) {
	case *avro.RecordSchema:
		if isDocument(s) {
			return buildDocument(s, el)
		}
		return buildRecord(s, el)
	case *avro.RefSchema:
		// A repeated occurrence of a named record or enum (e.g. a
		// recursive field) parses as a reference to the named schema.
		return buildNode(s.Schema(), el, fieldName)
	case *avro.EnumSchema:
		return strings.TrimSpace(textContent(el)), nil
	case *avro.PrimitiveSchema:
		return parsePrimitive(fieldName, s.Type(), textContent(el))
	case *avro.UnionSchema:
		non := nonNullMember(s)
		if non == nil {
			return nil, converr.New(converr.ReasonDatumParse, "field %s: union has no non-null member", fieldName)
		}
		return buildNode(non, el, fieldName)
	default:
		return nil, converr.New(converr.ReasonDatumParse, "field %s: schema kind %v cannot be built from a single XML element", fieldName, sch.Type())
	}
}

func isDocument(rs *avro.RecordSchema) bool {
	s, _ := rs.Prop(provenance.Prop).(string)
	return s == provenance.Document.String()
}

// buildDocument implements spec.md §4.4's "Record with Source = document"
// dispatch: the instance's root element is one of the global elements, so
// it fills the one field whose source names it (wrapped in that field's
// [T,null] union) and every other field stays null.
func buildDocument(rs *avro.RecordSchema, root *xmltree.Element) (map[string]any, error) {
	datum := make(map[string]any, len(rs.Fields()))
	assigned := make(map[string]bool, len(rs.Fields()))
	wildcard := findWildcardField(rs)

	f := findFieldBySource(rs, provenance.Element(root.Name.Local).String())
	if f == nil {
		assignWildcard(datum, wildcard, root)
	} else {
		v, err := buildField(f, root)
		if err != nil {
			return nil, err
		}
		datum[f.Name()] = v
		assigned[f.Name()] = true
	}

	for _, f := range rs.Fields() {
		if !assigned[f.Name()] {
			// Every document-level field is [T,null] per spec.md §4.3's
			// root-shaping rule; an unseen global root is simply absent.
			datum[f.Name()] = nil
		}
	}
	return datum, nil
}

// buildRecord implements spec.md §4.4's "Populating a record from an XML
// element" rules: attributes first, then children in document order,
// then defaulting whatever was never assigned.
func buildRecord(rs *avro.RecordSchema, el *xmltree.Element) (map[string]any, error) {
	datum := make(map[string]any, len(rs.Fields()))
	assigned := make(map[string]bool, len(rs.Fields()))

	for _, attr := range el.StartElement.Attr {
		f := findFieldBySource(rs, provenance.Attribute(attr.Name.Local).String())
		if f == nil {
			continue
		}
		v, err := parsePrimitiveField(f, attr.Value)
		if err != nil {
			return nil, err
		}
		datum[f.Name()] = v
		assigned[f.Name()] = true
	}

	wildcard := findWildcardField(rs)
	for i := range el.Children {
		child := &el.Children[i]
		f := findFieldBySource(rs, provenance.Element(child.Name.Local).String())
		if f == nil {
			assignWildcard(datum, wildcard, child)
			continue
		}
		if arr, ok := f.Type().(*avro.ArraySchema); ok {
			v, err := buildNode(arr.Items(), child, f.Name())
			if err != nil {
				return nil, err
			}
			existing, _ := datum[f.Name()].([]any)
			datum[f.Name()] = append(existing, v)
			assigned[f.Name()] = true
			continue
		}
		v, err := buildField(f, child)
		if err != nil {
			return nil, err
		}
		datum[f.Name()] = v
		assigned[f.Name()] = true
	}

	for _, f := range rs.Fields() {
		if assigned[f.Name()] {
			continue
		}
		switch f.Type().(type) {
		case *avro.ArraySchema:
			datum[f.Name()] = []any{}
		case *avro.UnionSchema:
			datum[f.Name()] = nil
		case *avro.MapSchema:
			datum[f.Name()] = map[string]any{}
		default:
			return nil, converr.New(converr.ReasonDatumParse, "field %s has no matching XML input", f.Name())
		}
	}
	return datum, nil
}

// buildField builds the value for a non-array field (plain, or [T,null])
// from the XML element that matched it by Source.
func buildField(f *avro.Field, el *xmltree.Element) (any, error) {
	if union, ok := f.Type().(*avro.UnionSchema); ok {
		non := nonNullMember(union)
		if non == nil {
			return nil, converr.New(converr.ReasonDatumParse, "field %s: union has no non-null member", f.Name())
		}
		return buildNode(non, el, f.Name())
	}
	return buildNode(f.Type(), el, f.Name())
}

// parsePrimitiveField parses an attribute's text into the scalar type a
// (possibly [T,null]-wrapped) field declares.
func parsePrimitiveField(f *avro.Field, text string) (any, error) {
	typ := f.Type()
	if union, ok := typ.(*avro.UnionSchema); ok {
		non := nonNullMember(union)
		if non == nil {
			return nil, converr.New(converr.ReasonDatumParse, "field %s: union has no non-null member", f.Name())
		}
		typ = non
	}
	if _, ok := typ.(*avro.EnumSchema); ok {
		return strings.TrimSpace(text), nil
	}
	prim, ok := typ.(*avro.PrimitiveSchema)
	if !ok {
		return nil, converr.New(converr.ReasonDatumParse, "field %s: attribute value cannot populate schema kind %v", f.Name(), typ.Type())
	}
	return parsePrimitive(f.Name(), prim.Type(), text)
}

// findFieldBySource finds the field in rs whose "source" property equals
// want, per spec.md §3's provenance round-trip.
func findFieldBySource(rs *avro.RecordSchema, want string) *avro.Field {
	for _, f := range rs.Fields() {
		if s, _ := f.Prop(provenance.Prop).(string); s == want {
			return f
		}
	}
	return nil
}

// findWildcardField finds rs's single map-typed wildcard field, if any.
func findWildcardField(rs *avro.RecordSchema) *avro.Field {
	for _, f := range rs.Fields() {
		if f.Name() != provenance.WildcardField {
			continue
		}
		if _, ok := f.Type().(*avro.MapSchema); ok {
			return f
		}
	}
	return nil
}

// assignWildcard inserts child's (local name, text content) pair into
// datum's wildcard map field, creating the map on first use. A nil
// wildcard is a silent no-op: there is nowhere for an unmatched child to
// go, per spec.md §4.4.
func assignWildcard(datum map[string]any, wildcard *avro.Field, child *xmltree.Element) {
	if wildcard == nil {
		return
	}
	m, _ := datum[wildcard.Name()].(map[string]any)
	if m == nil {
		m = make(map[string]any)
	}
	m[child.Name.Local] = textContent(child)
	datum[wildcard.Name()] = m
}

// nonNullMember returns the first non-null member of a union, matching
// the translator's invariant of always emitting [T, null] (never the
// reverse).
func nonNullMember(u *avro.UnionSchema) avro.Schema {
	for _, m := range u.Types() {
		if m.Type() != avro.Null {
			return m
		}
	}
	return nil
}

// textContent returns el's raw text content. Trimming is type-dependent
// (spec.md §4.5: numeric and boolean text is trimmed, string text is
// taken verbatim) and is applied by parsePrimitive, not here.
func textContent(el *xmltree.Element) string {
	return string(el.Content)
}
