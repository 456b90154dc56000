// Package xmlavro converts between XML Schema (XSD) and the Avro
// schema/data model, and between concrete XML documents and Avro-shaped
// generic records.
//
// - CreateSchema walks an XSD document and produces a hamba/avro/v2 Schema
//   that faithfully expresses the structural and type-level content of any
//   conforming XML instance.
// - CreateDatum walks an XML document conforming to that schema and
//   produces an in-memory Avro-typed datum (a primitive, a map[string]any
//   record, a []any array, or a map[string]any wildcard map).
//
// Design policy:
//   - Keep only the public surface (CreateSchema, CreateDatum, the error
//     and Source types) in the root package; put the schema graph,
//     registry, translator, exporter, and datum builder under internal/.
//   - Errors are always *ConverterError; a failed conversion leaves no
//     partial result.
//
// Typical usage:
//
//	schema, err := xmlavro.CreateSchema(xsdBytes)
//	datum, err := xmlavro.CreateDatum(schema, xmlBytes)
package xmlavro
