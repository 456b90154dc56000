// Package avroexport converts a finished internal/schema graph into a
// real hamba/avro/v2 Schema. The internal graph is built incrementally
// with placeholder-then-fill recursion (see internal/registry), which
// leaves genuinely cyclic Go pointers in the tree once translation is
// done; hamba/avro's own constructors build schemas bottom-up and have
// no way to accept a not-yet-built parent from inside one of its own
// fields. Rather than guess at a constructor-level workaround, this
// package renders the graph to the same JSON text form any other Avro
// tool would produce — where a second occurrence of a named record or
// enum is just its name, exactly how Avro expresses recursive schemas on
// the wire — and hands that to avro.Parse, the same entry point
// confluentinc-confluent-kafka-go uses to turn schema registry text into
// an avro.Schema.
package avroexport

import (
	"encoding/json"

	"github.com/hamba/avro/v2"

	"github.com/avroxsd/xmlavro/internal/converr"
	"github.com/avroxsd/xmlavro/internal/schema"
)

// Export converts root into an avro.Schema.
func Export(root schema.Node) (avro.Schema, error) {
	emitted := make(map[string]bool)
	tree := nodeJSON(root, emitted)
	text, err := json.Marshal(tree)
	if err != nil {
		return nil, converr.Wrap(converr.ReasonSchemaValidation, err, "marshaling translated schema to Avro JSON")
	}
	sch, err := avro.Parse(string(text))
	if err != nil {
		return nil, converr.Wrap(converr.ReasonSchemaValidation, err, "parsing translated schema as Avro: %s", text)
	}
	return sch, nil
}

// nodeJSON renders one internal/schema node into the value encoding/json
// will marshal to its Avro JSON Schema form. emitted tracks which named
// records/enums have already been written in full elsewhere in the
// document; a second occurrence of the same name is written as a bare
// name reference instead of being redefined.
func nodeJSON(n schema.Node, emitted map[string]bool) any {
	switch v := n.(type) {
	case *schema.Primitive:
		return v.Name
	case *schema.Array:
		return map[string]any{
			"type":  "array",
			"items": nodeJSON(v.Items, emitted),
		}
	case *schema.Map:
		return map[string]any{
			"type":   "map",
			"values": nodeJSON(v.Values, emitted),
		}
	case *schema.Union:
		members := make([]any, len(v.Members))
		for i, m := range v.Members {
			members[i] = nodeJSON(m, emitted)
		}
		return members
	case *schema.Enum:
		if emitted[v.Name] {
			return v.Name
		}
		emitted[v.Name] = true
		return map[string]any{
			"type":    "enum",
			"name":    v.Name,
			"symbols": v.Symbols,
		}
	case *schema.Record:
		if emitted[v.Name] {
			return v.Name
		}
		emitted[v.Name] = true
		fields := make([]any, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = fieldJSON(f, emitted)
		}
		m := map[string]any{
			"type":   "record",
			"name":   v.Name,
			"fields": fields,
		}
		if v.Source != "" {
			m["source"] = v.Source
		}
		return m
	default:
		// Every node the translator produces is one of the above; this
		// only fires if internal/schema grows a kind nodeJSON wasn't
		// updated for.
		return nil
	}
}

func fieldJSON(f schema.Field, emitted map[string]bool) map[string]any {
	m := map[string]any{
		"name": f.Name,
		"type": nodeJSON(f.Schema, emitted),
	}
	if f.Source != "" {
		m["source"] = f.Source
	}
	if f.HasDefault {
		m["default"] = f.Default
	}
	return m
}
