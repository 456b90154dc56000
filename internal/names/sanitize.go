// Package names sanitizes XML names into legal Avro identifiers and
// resolves the collisions that sanitization can introduce.
package names

import "strconv"

// reserved holds the Avro type names that a sanitized identifier must not
// collide with.
var reserved = map[string]bool{
	"boolean": true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
	"bytes":   true,
	"string":  true,
	"null":    true,
	"record":  true,
	"enum":    true,
	"array":   true,
	"map":     true,
	"union":   true,
	"fixed":   true,
}

// Sanitizer maps XML NCNames (or generated names) to legal Avro
// identifiers for the duration of a single translation. It is stateful:
// the numeric suffix used to disambiguate a reserved-word collision is a
// counter shared across every call, not restarted per name — a schema
// that happens to sanitize both "string" and "record" gets "string0" and
// "record1", never two "…0"s. This mirrors the reference converter's
// SchemaBuilder.validName, whose fixtures are reproduced in
// sanitize_test.go.
type Sanitizer struct {
	nextReserved int
}

// NewSanitizer returns a Sanitizer with a fresh reserved-collision
// counter.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Name applies spec.md §4.1 rules 1-3. An empty input yields an empty
// result.
func (s *Sanitizer) Name(name string) string {
	if name == "" {
		return ""
	}
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.' || c == '-':
			out = append(out, '_')
		case c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9'):
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return ""
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]byte{'_'}, out...)
	}
	return s.disambiguateReserved(string(out))
}

// disambiguateReserved appends the Sanitizer's shared counter to name if
// it collides with a reserved Avro type name, advancing the counter only
// when it does.
func (s *Sanitizer) disambiguateReserved(name string) string {
	if !reserved[name] {
		return name
	}
	for {
		candidate := name + strconv.Itoa(s.nextReserved)
		s.nextReserved++
		if !reserved[candidate] {
			return candidate
		}
	}
}

// Deduper resolves duplicate field names within a single record by
// appending 0, 1, 2, … to every occurrence after the first, in declaration
// order.
type Deduper struct {
	seen map[string]int
}

// NewDeduper returns a fresh, empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]int)}
}

// Next returns name unchanged the first time it's seen, and name+N (N
// starting at 0) on every subsequent call with the same name.
func (d *Deduper) Next(name string) string {
	n, ok := d.seen[name]
	if !ok {
		d.seen[name] = 0
		return name
	}
	d.seen[name] = n + 1
	return name + strconv.Itoa(n)
}
