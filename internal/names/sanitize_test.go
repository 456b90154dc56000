package names

import "testing"

func TestSanitizer_Name(t *testing.T) {
	s := NewSanitizer()

	// Character stripping, with '.' and '-' normalized to '_'.
	if got := s.Name("$a#1"); got != "a1" {
		t.Fatalf("Name(%q) = %q, want %q", "$a#1", got, "a1")
	}
	if got := s.Name("a.1"); got != "a_1" {
		t.Fatalf("Name(%q) = %q, want %q", "a.1", got, "a_1")
	}
	if got := s.Name("a-1"); got != "a_1" {
		t.Fatalf("Name(%q) = %q, want %q", "a-1", got, "a_1")
	}

	// Reserved-word collisions share one counter across calls, so the
	// second collision in this Sanitizer's lifetime gets suffix 1, not 0.
	if got := s.Name("string"); got != "string0" {
		t.Fatalf("Name(%q) = %q, want %q", "string", got, "string0")
	}
	if got := s.Name("record"); got != "record1" {
		t.Fatalf("Name(%q) = %q, want %q", "record", got, "record1")
	}
}

func TestSanitizer_EmptyAndLeadingDigit(t *testing.T) {
	s := NewSanitizer()
	if got := s.Name(""); got != "" {
		t.Fatalf("Name(\"\") = %q, want empty", got)
	}
	if got := s.Name("1abc"); got != "_1abc" {
		t.Fatalf("Name(%q) = %q, want %q", "1abc", got, "_1abc")
	}
}

func TestSanitizer_FreshInstancePerSuffix(t *testing.T) {
	// A fresh Sanitizer always starts its reserved counter at 0.
	s := NewSanitizer()
	if got := s.Name("int"); got != "int0" {
		t.Fatalf("Name(%q) = %q, want %q", "int", got, "int0")
	}
}

func TestDeduper_Next(t *testing.T) {
	d := NewDeduper()
	cases := []struct{ in, want string }{
		{"field", "field"},
		{"field", "field0"},
		{"field", "field1"},
		{"other", "other"},
	}
	for _, c := range cases {
		if got := d.Next(c.in); got != c.want {
			t.Fatalf("Next(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
