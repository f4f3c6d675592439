package resolve

import (
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"array", []string{"array"}, "Single word"},
		{"array splice", []string{"array", "splice"}, "Two words"},
		{"array.splice", []string{"array", "splice"}, "Dot split"},
		{"array.splcie", []string{"array", "splcie"}, "Dot split keeps typos"},
		{"array.splice();", []string{"array", "splice"}, "Parens and semicolon stripped"},
		{"  array   splice  ", []string{"array", "splice"}, "Whitespace runs collapsed"},
		{"Array.Splice", []string{"Array", "Splice"}, "Case preserved"},
		{"array.", []string{"array", ""}, "Trailing dot keeps empty token"},
		{"a.b.c", []string{"a", "b", "c"}, "Multiple dots"},
		{"", []string{""}, "Empty input yields one empty token"},
		{"   ", []string{""}, "Blank input yields one empty token"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Tokenize(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

// Dot-splitting never reduces the token count below the word count.
func TestTokenizeNeverShrinks(t *testing.T) {
	inputs := []string{
		"array splice",
		"a.b c.d e",
		"one two three four",
		"dotted.path.here plain",
	}
	for _, in := range inputs {
		words := len(strings.Fields(in))
		if got := len(Tokenize(in)); got < words {
			t.Errorf("Tokenize(%q) produced %d tokens for %d words", in, got, words)
		}
	}
}
