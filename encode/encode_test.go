package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/format"
	"github.com/signadot/symx/parse"
)

type result struct {
	Variables    []string `json:"variables" yaml:"variables"`
	IsPolynomial bool     `json:"isPolynomial" yaml:"isPolynomial"`
	Simplified   string   `json:"simplified" yaml:"simplified"`
}

func mustParse(t *testing.T, s string) ast.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func encodeString(t *testing.T, v any, opts ...EncodeOption) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(v, &buf, opts...); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return buf.String()
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name string
		v    any
		f    format.Format
		want string
	}{
		{"node", mustParse(t, "x^2+1"), format.TextFormat, "x^2 + 1\n"},
		{"string", "2 * x", format.TextFormat, "2 * x\n"},
		{"number", 9.0, format.TextFormat, "9\n"},
		{"fraction", 0.25, format.TextFormat, "0.25\n"},
		{"int", 3, format.TextFormat, "3\n"},
		{"bool", true, format.TextFormat, "true\n"},
		{"latex node", mustParse(t, "x^2 / 2"), format.LaTeXFormat, "\\frac{{x}^{2}}{2}\n"},
		{"latex string", "x * y", format.LaTeXFormat, "x \\cdot y\n"},
		{"latex unparsable", "x +", format.LaTeXFormat, "x +\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := encodeString(t, tc.v, EncodeFormat(tc.f))
			if got != tc.want {
				t.Errorf("Encode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeDocuments(t *testing.T) {
	want := result{Variables: []string{"x"}, IsPolynomial: true, Simplified: "x^2 + 1"}

	y := encodeString(t, want, EncodeFormat(format.YAMLFormat))
	var got result
	if err := yaml.Unmarshal([]byte(y), &got); err != nil {
		t.Fatalf("yaml output %q: %v", y, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml mismatch (-want +got):\n%s", diff)
	}

	j := encodeString(t, want, EncodeFormat(format.JSONFormat))
	got = result{}
	if err := json.Unmarshal([]byte(j), &got); err != nil {
		t.Fatalf("json output %q: %v", j, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(j, "\n  \"isPolynomial\": true") {
		t.Errorf("json not indented:\n%s", j)
	}

	// structured values in text format fall back to yaml
	if txt := encodeString(t, want); txt != y {
		t.Errorf("text fallback = %q, want %q", txt, y)
	}
}

func TestEncodeNodeDocument(t *testing.T) {
	n := mustParse(t, "x + 1")
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat} {
		t.Run(f.String(), func(t *testing.T) {
			out := encodeString(t, n, EncodeFormat(f))
			var m map[string]any
			if err := yaml.Unmarshal([]byte(out), &m); err != nil {
				t.Fatalf("output %q: %v", out, err)
			}
			if m["type"] != "Operator" || m["symbol"] != "+" {
				t.Errorf("decoded %v", m)
			}
			// json documents decode back into a tree
			d, err := json.Marshal(m)
			if err != nil {
				t.Fatal(err)
			}
			back, err := ast.FromJSON(d)
			if err != nil {
				t.Fatal(err)
			}
			if !ast.Equal(back, n) {
				t.Errorf("decoded %s, want %s", back, n)
			}
		})
	}
}

func TestEncodeBadFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode("x", &buf, EncodeFormat(format.Format(42)))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("Encode() error = %v, want %v", err, format.ErrBadFormat)
	}
}

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func forceColor(t *testing.T) {
	t.Helper()
	saved := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = saved })
}

func TestColors(t *testing.T) {
	forceColor(t)
	c := NewColors()
	for _, in := range []string{"sin(x) + 2 * y^3", "(-1) / x^2", "100%"} {
		got := c.Expr(in)
		if escapes.ReplaceAllString(got, "") != in {
			t.Errorf("Expr(%q) = %q changes the text", in, got)
		}
	}
	if got := c.Expr("sin(x)"); got == "sin(x)" {
		t.Error("Expr() added no colour")
	}
	if got := c.Expr("x $ 2"); got != "x $ 2" {
		t.Errorf("Expr() of untokenizable text = %q", got)
	}
	if got := c.Color(ast.ConstantKind, ValueColor, "5%"); escapes.ReplaceAllString(got, "") != "5%" {
		t.Errorf("Color() = %q mangles %%", got)
	}

	doc := "variables:\n- x\ndegree: 2\nsimplified: x + 1\n"
	got := c.Document(doc)
	if got == doc {
		t.Error("Document() added no colour")
	}
	if escapes.ReplaceAllString(got, "") != doc {
		t.Errorf("Document() = %q changes the text", got)
	}

	out := encodeString(t, mustParse(t, "x+1"), EncodeColors(c))
	if escapes.ReplaceAllString(out, "") != "x + 1\n" || out == "x + 1\n" {
		t.Errorf("coloured Encode() = %q", out)
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"2 * x + 2 * 1", "2 * x + 2", "2 * x + 2[- * 1-]"},
		{"x", "x", "x"},
		{"x + 0", "x + y", "x + {+y+}[-0-]"},
	}
	for _, tc := range tests {
		t.Run(tc.from, func(t *testing.T) {
			got := Diff(tc.from, tc.to, nil)
			if !sameDiff(got, tc.want, tc.from, tc.to) {
				t.Errorf("Diff() = %q, want %q", got, tc.want)
			}
		})
	}
}

// sameDiff accepts any rendering that replays from into to, preferring
// the exact expected text.
func sameDiff(got, want, from, to string) bool {
	if got == want {
		return true
	}
	del := regexp.MustCompile(`\[-(.*?)-\]`)
	ins := regexp.MustCompile(`\{\+(.*?)\+\}`)
	return ins.ReplaceAllString(del.ReplaceAllString(got, ""), "$1") == to &&
		del.ReplaceAllString(ins.ReplaceAllString(got, ""), "$1") == from
}
