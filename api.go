package xmlavro

import (
	"aqwari.net/xml/xmltree"
	"github.com/hamba/avro/v2"

	"github.com/avroxsd/xmlavro/internal/avroexport"
	"github.com/avroxsd/xmlavro/internal/converr"
	"github.com/avroxsd/xmlavro/internal/xmlbuild"
	"github.com/avroxsd/xmlavro/internal/xsdtranslate"
)

// CreateSchema walks an XSD document and produces the Avro schema it
// describes, per spec.md §4.3. A malformed XSD, an XSD with no (or the
// wrong) target namespace, or an XSD construct outside the supported
// subset (§6) all surface as a *ConverterError.
func CreateSchema(xsd []byte) (avro.Schema, error) {
	doc, err := xmltree.Parse(xsd)
	if err != nil {
		return nil, WrapConverterError(ReasonXMLParse, err, "parsing XSD document")
	}

	ir, err := xsdtranslate.Translate(doc)
	if err != nil {
		logger.Sugar().Errorw("xsd translation failed", "error", err)
		if ce, ok := converr.As(err); ok {
			return nil, ce
		}
		return nil, WrapConverterError(ReasonSchemaValidation, err, "translating XSD to Avro schema")
	}

	sch, err := avroexport.Export(ir)
	if err != nil {
		logger.Sugar().Errorw("avro schema export failed", "error", err)
		if ce, ok := converr.As(err); ok {
			return nil, ce
		}
		return nil, WrapConverterError(ReasonSchemaValidation, err, "exporting translated schema to Avro")
	}

	logger.Sugar().Infow("created avro schema", "type", sch.Type())
	return sch, nil
}

// CreateDatum walks an XML document conforming to schema and produces an
// in-memory Avro-typed datum: a primitive, a map[string]any record, a
// []any array, or a map[string]any wildcard map, per spec.md §4.4.
func CreateDatum(schema avro.Schema, xmlDoc []byte) (any, error) {
	root, err := xmltree.Parse(xmlDoc)
	if err != nil {
		return nil, WrapConverterError(ReasonXMLParse, err, "parsing XML instance document")
	}

	datum, err := xmlbuild.Build(schema, root)
	if err != nil {
		logger.Sugar().Errorw("datum build failed", "error", err)
		if ce, ok := converr.As(err); ok {
			return nil, ce
		}
		return nil, WrapConverterError(ReasonDatumParse, err, "building datum from XML instance")
	}

	logger.Sugar().Debugw("built datum from XML instance")
	return datum, nil
}
