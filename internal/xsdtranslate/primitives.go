package xsdtranslate

import (
	"encoding/xml"

	xsdmodel "aqwari.net/xml/xsd"

	"github.com/avroxsd/xmlavro/internal/schema"
)

// isBuiltin reports whether qname names an XSD built-in simple type —
// the gate the translator checks before consulting its own named-type
// declarations, since a qname in the XSD namespace is never a
// user-declared type.
func isBuiltin(qname xml.Name) bool {
	_, err := xsdmodel.ParseBuiltin(qname)
	return err == nil
}

// primitiveFor maps an XSD built-in type name to the Avro primitive it
// translates to, per spec.md §4.3. qname must already be namespace-
// resolved (see xmltree.Element.Resolve). Any simple type that isn't one
// of the XSD built-ins recognized here — including types this package
// doesn't special-case, like xs:string itself — degrades to the "any
// other simple type" row: Avro string.
func primitiveFor(qname xml.Name) *schema.Primitive {
	b, err := xsdmodel.ParseBuiltin(qname)
	if err != nil {
		// Not a recognized XSD built-in at all (e.g. an unresolved
		// prefix): still a string per the "any other simple type" rule.
		return &schema.Primitive{Name: schema.String}
	}
	switch b {
	case xsdmodel.Boolean:
		return &schema.Primitive{Name: schema.Boolean}
	case xsdmodel.Byte, xsdmodel.Short, xsdmodel.Int, xsdmodel.UnsignedByte, xsdmodel.UnsignedShort:
		return &schema.Primitive{Name: schema.Int}
	case xsdmodel.Long, xsdmodel.UnsignedInt:
		return &schema.Primitive{Name: schema.Long}
	case xsdmodel.Float:
		return &schema.Primitive{Name: schema.Float}
	case xsdmodel.Double, xsdmodel.Decimal:
		return &schema.Primitive{Name: schema.Double}
	case xsdmodel.HexBinary, xsdmodel.Base64Binary:
		return &schema.Primitive{Name: schema.Bytes}
	default:
		return &schema.Primitive{Name: schema.String}
	}
}
