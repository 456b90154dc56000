package registry

import (
	"encoding/xml"
	"testing"
)

func TestPlaceholderRecord_SameQNameReusesPointer(t *testing.T) {
	r := New()
	qname := xml.Name{Local: "type"}

	first := r.PlaceholderRecord(qname)
	second := r.PlaceholderRecord(qname)

	if first != second {
		t.Fatalf("PlaceholderRecord returned distinct pointers for the same qname")
	}
	if first.Name != "type" {
		t.Fatalf("Name = %q, want %q", first.Name, "type")
	}
}

func TestAnonymousRecord_SequentialNaming(t *testing.T) {
	r := New()
	a := r.AnonymousRecord()
	b := r.AnonymousRecord()

	if a.Name != "type0" || b.Name != "type1" {
		t.Fatalf("got names %q, %q; want type0, type1", a.Name, b.Name)
	}
}

func TestAnonymousEnum_SequentialNaming(t *testing.T) {
	r := New()
	a := r.AnonymousEnum([]string{"x"})
	b := r.AnonymousEnum([]string{"y"})

	if a.Name != "enum0" || b.Name != "enum1" {
		t.Fatalf("got names %q, %q; want enum0, enum1", a.Name, b.Name)
	}
}

func TestNamedEnum_Interned(t *testing.T) {
	r := New()
	qname := xml.Name{Local: "Color"}
	a := r.NamedEnum(qname, []string{"red", "green"})
	b := r.NamedEnum(qname, []string{"unused"})

	if a != b {
		t.Fatalf("NamedEnum returned distinct pointers for the same qname")
	}
	if a.Name != "Color" {
		t.Fatalf("Name = %q, want %q", a.Name, "Color")
	}
}
