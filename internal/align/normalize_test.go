package align

import (
	"reflect"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "punctuation stripped", in: "Hello, World!", want: "hello world"},
		{name: "apostrophes removed", in: "don't stop", want: "dont stop"},
		{name: "whitespace collapsed", in: "  many   spaces\tand\nlines ", want: "many spaces and lines"},
		{name: "digits kept", in: "Step 2: attach part 7B", want: "step 2 attach part 7b"},
		{name: "empty", in: "", want: ""},
		{name: "punctuation only", in: "?!...", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeText(tc.in); got != tc.want {
				t.Fatalf("normalizeText(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeWords(t *testing.T) {
	got := normalizeWords("Hello, World! Again.")
	want := []string{"hello", "world", "again"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeWords() = %v, want %v", got, want)
	}

	if words := normalizeWords("?!"); words != nil {
		t.Fatalf("normalizeWords on punctuation-only input = %v, want nil", words)
	}
	if words := normalizeWords(""); words != nil {
		t.Fatalf("normalizeWords on empty input = %v, want nil", words)
	}
}
