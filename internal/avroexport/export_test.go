package avroexport

import (
	"testing"

	"github.com/hamba/avro/v2"

	"github.com/avroxsd/xmlavro/internal/schema"
)

func TestExport_RecordWithSourceProps(t *testing.T) {
	rec := &schema.Record{
		Name: "root",
		Fields: []schema.Field{
			{Name: "i", Schema: &schema.Primitive{Name: schema.Int}, Source: "element i"},
			{Name: "s", Schema: schema.NullableOf(&schema.Primitive{Name: schema.String}), Source: "element s"},
		},
	}

	out, err := Export(rec)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	recSchema, ok := out.(*avro.RecordSchema)
	if !ok {
		t.Fatalf("Export returned %T, want *avro.RecordSchema", out)
	}
	if recSchema.FullName() != "root" {
		t.Fatalf("record name = %q, want root", recSchema.FullName())
	}
	fields := recSchema.Fields()
	if len(fields) != 2 {
		t.Fatalf("record has %d fields, want 2", len(fields))
	}
	if got, _ := fields[0].Prop("source").(string); got != "element i" {
		t.Fatalf("field i source prop = %q, want %q", got, "element i")
	}
	if fields[1].Type().Type() != avro.Union {
		t.Fatalf("field s type = %v, want union", fields[1].Type().Type())
	}
}

func TestExport_DocumentRecordSourceProp(t *testing.T) {
	rec := &schema.Record{
		Name:   "document",
		Source: "document",
		Fields: []schema.Field{
			{Name: "i", Schema: schema.NullableOf(&schema.Primitive{Name: schema.Int}), Source: "element i"},
		},
	}

	out, err := Export(rec)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	recSchema := out.(*avro.RecordSchema)
	if got, _ := recSchema.Prop("source").(string); got != "document" {
		t.Fatalf("document record source prop = %q, want %q", got, "document")
	}
}

func TestExport_RecursiveRecordByName(t *testing.T) {
	rec := &schema.Record{Name: "t"}
	rec.Fields = []schema.Field{
		{Name: "node", Schema: schema.NullableOf(rec), Source: "element node"},
	}

	out, err := Export(rec)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	recSchema, ok := out.(*avro.RecordSchema)
	if !ok {
		t.Fatalf("Export returned %T, want *avro.RecordSchema", out)
	}
	union, ok := recSchema.Fields()[0].Type().(*avro.UnionSchema)
	if !ok {
		t.Fatalf("node field type is %T, want *avro.UnionSchema", recSchema.Fields()[0].Type())
	}
	var inner *avro.RecordSchema
	for _, m := range union.Types() {
		if rs, ok := m.(*avro.RecordSchema); ok {
			inner = rs
		}
	}
	if inner == nil {
		t.Fatal("union has no record member")
	}
	if inner.FullName() != "t" {
		t.Fatalf("recursive member name = %q, want t", inner.FullName())
	}
}

func TestExport_WildcardMapField(t *testing.T) {
	rec := &schema.Record{
		Name: "root",
		Fields: []schema.Field{
			{Name: "others", Schema: &schema.Map{Values: &schema.Primitive{Name: schema.String}}},
		},
	}

	out, err := Export(rec)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	recSchema := out.(*avro.RecordSchema)
	mapSchema, ok := recSchema.Fields()[0].Type().(*avro.MapSchema)
	if !ok {
		t.Fatalf("others field type is %T, want *avro.MapSchema", recSchema.Fields()[0].Type())
	}
	if mapSchema.Values().Type() != avro.String {
		t.Fatalf("map values type = %v, want string", mapSchema.Values().Type())
	}
}
