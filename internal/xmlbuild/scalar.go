package xmlbuild

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/hamba/avro/v2"

	"github.com/avroxsd/xmlavro/internal/converr"
)

// parsePrimitive parses text into the Go value matching typ, per spec.md
// §4.5. fieldName is only used to annotate a parse failure.
func parsePrimitive(fieldName string, typ avro.Type, text string) (any, error) {
	switch typ {
	case avro.Boolean:
		return parseBoolean(fieldName, text)
	case avro.Int:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, converr.Wrap(converr.ReasonDatumParse, err, "field %s: invalid int %q", fieldName, text)
		}
		return int32(n), nil
	case avro.Long:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, converr.Wrap(converr.ReasonDatumParse, err, "field %s: invalid long %q", fieldName, text)
		}
		return n, nil
	case avro.Float:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
		if err != nil {
			return nil, converr.Wrap(converr.ReasonDatumParse, err, "field %s: invalid float %q", fieldName, text)
		}
		return float32(f), nil
	case avro.Double:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, converr.Wrap(converr.ReasonDatumParse, err, "field %s: invalid double %q", fieldName, text)
		}
		return f, nil
	case avro.Bytes:
		return parseBytes(fieldName, text)
	default:
		// string, and anything else not listed in §4.5: taken verbatim.
		return text, nil
	}
}

func parseBoolean(fieldName, text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, converr.New(converr.ReasonDatumParse, "field %s: invalid boolean %q", fieldName, text)
	}
}

// parseBytes decodes hexBinary or base64Binary text. The translated
// schema no longer distinguishes which of the two the originating XSD
// type was (both map to Avro bytes per spec.md §4.3), so this tries
// hexBinary first — it only matches even-length strings drawn from
// [0-9a-fA-F] — and falls back to standard base64.
func parseBytes(fieldName, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if b, err := hex.DecodeString(text); err == nil {
		return b, nil
	}
	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, converr.Wrap(converr.ReasonDatumParse, err, "field %s: invalid hexBinary/base64Binary %q", fieldName, text)
	}
	return b, nil
}
