package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text", input: "jdoe", want: "jdoe"},
		{name: "script tag", input: "<script>", want: "&lt;script&gt;"},
		{name: "ampersand", input: "a&b", want: "a&amp;b"},
		{name: "double quote", input: `say "hi"`, want: "say &quot;hi&quot;"},
		{name: "single quote", input: "o'brien", want: "o&#039;brien"},
		{name: "all five", input: `&<>"'`, want: "&amp;&lt;&gt;&quot;&#039;"},
		{name: "unicode passes through", input: "müller@campus.édu", want: "müller@campus.édu"},
		{name: "whitespace preserved", input: "  a b\t", want: "  a b\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

func TestEscape_NotIdempotent(t *testing.T) {
	once := Escape("&")
	twice := Escape(once)

	assert.Equal(t, "&amp;", once)
	assert.Equal(t, "&amp;amp;", twice)
}

// TestEscape_NoBareMarkupCharacters checks that every markup character left in
// the output belongs to one of the five substituted references.
func TestEscape_NoBareMarkupCharacters(t *testing.T) {
	inputs := []string{
		`<img src="x" onerror='alert(1)'>`,
		"&&&<<<>>>",
		`"'"'`,
		"&amp; already escaped",
		"tom & jerry <3",
		strings.Repeat(`<&>"'`, 50),
	}

	refs := []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#039;"}

	for _, in := range inputs {
		out := Escape(in)

		stripped := out
		for _, ref := range refs {
			stripped = strings.ReplaceAll(stripped, ref, "")
		}

		assert.NotContainsf(t, stripped, "&", "input %q", in)
		assert.NotContainsf(t, stripped, "<", "input %q", in)
		assert.NotContainsf(t, stripped, ">", "input %q", in)
		assert.NotContainsf(t, stripped, `"`, "input %q", in)
		assert.NotContainsf(t, stripped, "'", "input %q", in)
	}
}

func FuzzEscape(f *testing.F) {
	for _, seed := range []string{
		"",
		"jdoe",
		"<script>alert(1)</script>",
		"a&b",
		`"'`,
		"&amp;",
		"&lt;&#039;",
		"müller@campus.édu",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		out := Escape(in)

		for _, c := range []string{"<", ">", `"`, "'"} {
			if strings.Contains(out, c) {
				t.Fatalf("Escape(%q) = %q contains bare %q", in, out, c)
			}
		}

		// &amp; goes last so a decoded ampersand cannot start a new reference.
		back := out
		for _, ref := range [][2]string{
			{"&lt;", "<"},
			{"&gt;", ">"},
			{"&quot;", `"`},
			{"&#039;", "'"},
			{"&amp;", "&"},
		} {
			back = strings.ReplaceAll(back, ref[0], ref[1])
		}
		if back != in {
			t.Fatalf("unescaping %q gave %q, want %q", out, back, in)
		}
	})
}
