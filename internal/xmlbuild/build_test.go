package xmlbuild

import (
	"reflect"
	"testing"

	"aqwari.net/xml/xmltree"
	"github.com/hamba/avro/v2"
)

func mustSchema(t *testing.T, text string) avro.Schema {
	t.Helper()
	sch, err := avro.Parse(text)
	if err != nil {
		t.Fatalf("avro.Parse: %v", err)
	}
	return sch
}

func mustParseXML(t *testing.T, doc string) *xmltree.Element {
	t.Helper()
	el, err := xmltree.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("xmltree.Parse: %v", err)
	}
	return el
}

func TestBuild_PrimitiveRoot(t *testing.T) {
	sch := mustSchema(t, `"int"`)
	el := mustParseXML(t, `<i>1</i>`)
	got, err := Build(sch, el)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got != int32(1) {
		t.Fatalf("got %v (%T), want int32(1)", got, got)
	}
}

func TestBuild_SeveralRoots(t *testing.T) {
	sch := mustSchema(t, `{
		"type": "record", "name": "document", "source": "document",
		"fields": [
			{"name": "i", "type": ["int", "null"], "source": "element i"},
			{"name": "r", "type": [{
				"type": "record", "name": "type0",
				"fields": [{"name": "s", "type": "string", "source": "element s"}]
			}, "null"], "source": "element r"}
		]
	}`)

	gotI, err := Build(sch, mustParseXML(t, `<i>5</i>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{"i": int32(5), "r": nil}
	if !reflect.DeepEqual(gotI, want) {
		t.Fatalf("got %#v, want %#v", gotI, want)
	}

	gotR, err := Build(sch, mustParseXML(t, `<r><s>s</s></r>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want2 := map[string]any{"i": nil, "r": map[string]any{"s": "s"}}
	if !reflect.DeepEqual(gotR, want2) {
		t.Fatalf("got %#v, want %#v", gotR, want2)
	}
}

func TestBuild_Recursion(t *testing.T) {
	sch := mustSchema(t, `{
		"type": "record", "name": "t",
		"fields": [{"name": "node", "type": ["t", "null"], "source": "element node"}]
	}`)
	got, err := Build(sch, mustParseXML(t, `<root><node/></root>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{"node": map[string]any{"node": nil}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestBuild_Wildcard(t *testing.T) {
	sch := mustSchema(t, `{
		"type": "record", "name": "root",
		"fields": [
			{"name": "field", "type": "string", "source": "element field"},
			{"name": "others", "type": {"type": "map", "values": "string"}}
		]
	}`)
	got, err := Build(sch, mustParseXML(t, `<root><field>field</field><field0>field0</field0><field1>field1</field1></root>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{
		"field":  "field",
		"others": map[string]any{"field0": "field0", "field1": "field1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	got2, err := Build(sch, mustParseXML(t, `<root><field>field</field></root>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want2 := map[string]any{"field": "field", "others": map[string]any{}}
	if !reflect.DeepEqual(got2, want2) {
		t.Fatalf("got %#v, want %#v", got2, want2)
	}
}

func TestBuild_Array(t *testing.T) {
	sch := mustSchema(t, `{
		"type": "record", "name": "root",
		"fields": [{"name": "value", "type": {"type": "array", "items": "string"}, "source": "element value"}]
	}`)
	got, err := Build(sch, mustParseXML(t, `<root><value>1</value><value>2</value><value>3</value></root>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{"value": []any{"1", "2", "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestBuild_Choice(t *testing.T) {
	sch := mustSchema(t, `{
		"type": "record", "name": "root",
		"fields": [
			{"name": "s", "type": ["string", "null"], "source": "element s"},
			{"name": "i", "type": ["int", "null"], "source": "element i"}
		]
	}`)
	got, err := Build(sch, mustParseXML(t, `<root><s>s</s></root>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{"s": "s", "i": nil}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	got2, err := Build(sch, mustParseXML(t, `<root><i>1</i></root>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want2 := map[string]any{"s": nil, "i": int32(1)}
	if !reflect.DeepEqual(got2, want2) {
		t.Fatalf("got %#v, want %#v", got2, want2)
	}
}

func TestBuild_AttributesAndRequiredFailure(t *testing.T) {
	sch := mustSchema(t, `{
		"type": "record", "name": "root",
		"fields": [{"name": "id", "type": "string", "source": "attribute id"}]
	}`)
	_, err := Build(sch, mustParseXML(t, `<root/>`))
	if err == nil {
		t.Fatal("expected a datum-build failure for a missing non-nullable attribute")
	}

	got, err := Build(sch, mustParseXML(t, `<root id="x"/>`))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := map[string]any{"id": "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}
