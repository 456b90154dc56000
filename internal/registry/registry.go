// Package registry interns named Avro schema nodes by XSD qualified name,
// hands out stable generated names for anonymous complex/simple types, and
// is the recursion-breaking mechanism: a named record is registered as an
// empty Placeholder before its fields are translated, so a self-reference
// encountered mid-translation resolves to the same *schema.Record pointer
// the caller will go on to fill in.
//
// A Registry is scoped to one CreateSchema call and discarded on return,
// matching spec.md §5.
package registry

import (
	"encoding/xml"
	"strconv"

	"github.com/avroxsd/xmlavro/internal/names"
	"github.com/avroxsd/xmlavro/internal/schema"
)

// Registry interns named schema.Record and schema.Enum nodes.
type Registry struct {
	records map[xml.Name]*schema.Record
	enums   map[xml.Name]*schema.Enum

	anonType int
	anonEnum int

	sanitizer *names.Sanitizer
}

// New returns an empty Registry backed by a fresh name Sanitizer.
func New() *Registry {
	return &Registry{
		records:   make(map[xml.Name]*schema.Record),
		enums:     make(map[xml.Name]*schema.Enum),
		sanitizer: names.NewSanitizer(),
	}
}

// Sanitizer exposes the Registry's shared name Sanitizer, so callers doing
// one-off name sanitization (field names, enum symbols) use the same
// reserved-word counter as type naming.
func (r *Registry) Sanitizer() *names.Sanitizer { return r.sanitizer }

// LookupRecord returns the already-registered record for qname, if any.
func (r *Registry) LookupRecord(qname xml.Name) (*schema.Record, bool) {
	rec, ok := r.records[qname]
	return rec, ok
}

// LookupEnum returns the already-registered enum for qname, if any.
func (r *Registry) LookupEnum(qname xml.Name) (*schema.Enum, bool) {
	e, ok := r.enums[qname]
	return e, ok
}

// PlaceholderRecord registers an empty *schema.Record for qname (a named
// complex type) before its fields are known, so recursive references
// resolve to this exact pointer. Calling it twice for the same qname
// returns the existing placeholder.
func (r *Registry) PlaceholderRecord(qname xml.Name) *schema.Record {
	if rec, ok := r.records[qname]; ok {
		return rec
	}
	rec := &schema.Record{Name: r.sanitizer.Name(qname.Local)}
	r.records[qname] = rec
	return rec
}

// AnonymousRecord registers a new placeholder record for an anonymous
// complex type, generating the next type0, type1, … name in
// first-encounter order.
func (r *Registry) AnonymousRecord() *schema.Record {
	name := "type" + strconv.Itoa(r.anonType)
	r.anonType++
	rec := &schema.Record{Name: name}
	return rec
}

// NamedEnum registers a new enum for the named simple type qname, or
// returns the existing one.
func (r *Registry) NamedEnum(qname xml.Name, symbols []string) *schema.Enum {
	if e, ok := r.enums[qname]; ok {
		return e
	}
	e := &schema.Enum{Name: r.sanitizer.Name(qname.Local), Symbols: symbols}
	r.enums[qname] = e
	return e
}

// AnonymousEnum registers a new enum for an anonymous simple type,
// generating the next enum0, enum1, … name in first-encounter order.
func (r *Registry) AnonymousEnum(symbols []string) *schema.Enum {
	name := "enum" + strconv.Itoa(r.anonEnum)
	r.anonEnum++
	return &schema.Enum{Name: name, Symbols: symbols}
}
