package simplify

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/symx/ast"
	"github.com/signadot/symx/parse"
)

func mustParse(t *testing.T, s string) ast.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("ParseString(%q) error = %v", s, err)
	}
	return n
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x + 0", "x"},
		{"0 + x", "x"},
		{"x * 1", "x"},
		{"1 * x", "x"},
		{"x * 0", "0"},
		{"0 * (x + y^2)", "0"},
		{"x ^ 1", "x"},
		{"x ^ 0", "1"},
		{"0 ^ x", "0"},
		{"0 ^ 0", "1"},
		{"(x^2)^3", "x^6"},
		{"(x^a)^b", "x^(a * b)"},
		{"2 * (x + 1)", "2 * x + 2"},
		{"a * (b + c)", "a * b + a * c"},
		{"y + x", "x + y"},
		{"b * a", "a * b"},
		{"x * (y + 0)", "x * y"},
		{"(x + 0) * (y * 1)", "x * y"},
		{"x - 0", "x"},
		{"x / 1", "x"},
		{"0 / x", "0"},
		{"2 + 3 * 4", "14"},
		{"2^10 - 24", "1000"},
		{"1 / 4", "0.25"},
		{"1 / 0", "1 / 0"},
		{"3 * x^(3 - 1)", "3 * x^2"},
		{"2 * x^1 + 2 * 1 + 0", "2 * x + 2"},
		{"x^(2 + 1) / (2 + 1)", "x^3 / 3"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Simplify(mustParse(t, tc.in))
			if err != nil {
				t.Fatalf("Simplify(%q) error = %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Errorf("Simplify(%q) = %q, want %q", tc.in, got.String(), tc.want)
			}
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	inputs := []string{
		"x^2 + 2*x + 1",
		"(a + b) * (c + d)",
		"x * (y * (z + 1))",
		"((x^2)^3)^0.5 * 1 + 0",
		"b + a - (c * 0)",
		"x / (y - y)",
		"(x + 1) * (x - 1)",
	}
	s := New()
	for _, in := range inputs {
		once, err := s.Simplify(mustParse(t, in))
		if err != nil {
			t.Fatalf("Simplify(%q) error = %v", in, err)
		}
		twice, err := s.Simplify(once)
		if err != nil {
			t.Fatalf("Simplify(Simplify(%q)) error = %v", in, err)
		}
		if !ast.Equal(once, twice) {
			t.Errorf("not idempotent on %q: %s then %s", in, once, twice)
		}
	}
}

func TestSimplifyRejectsFunctions(t *testing.T) {
	for _, in := range []string{
		"sin(x)^2 + cos(x)^2",
		"x + 0 + log(x)",
		"exp(0)",
		"2 * tan(x * 1)",
	} {
		_, err := Simplify(mustParse(t, in))
		if !errors.Is(err, ast.ErrUnsupported) {
			t.Errorf("Simplify(%q) error = %v, want %v", in, err, ast.ErrUnsupported)
		}
	}
}

func TestSimplifyDoesNotModifyInput(t *testing.T) {
	in := mustParse(t, "a * (b + c) + 0")
	before := in.String()
	if _, err := Simplify(in); err != nil {
		t.Fatal(err)
	}
	if in.String() != before {
		t.Errorf("input changed from %q to %q", before, in.String())
	}
}

func TestSimplifyNoSharedChildren(t *testing.T) {
	got, err := Simplify(mustParse(t, "(x + 1) * (y + z)"))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[ast.Node]bool{}
	ast.Walk(got, func(n ast.Node) bool {
		if seen[n] {
			t.Errorf("node %s reachable twice in %s", n, got)
		}
		seen[n] = true
		return true
	})
}

func TestTrace(t *testing.T) {
	var passes []string
	s := New(Trace(func(_ int, n ast.Node) {
		passes = append(passes, n.String())
	}))
	got, err := s.Simplify(mustParse(t, "2 * (x + 1)"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"2 * x + 2"}
	if diff := cmp.Diff(want, passes); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "2 * x + 2" {
		t.Errorf("Simplify() = %s", got)
	}
}

func TestMaxPasses(t *testing.T) {
	got, err := New(MaxPasses(1)).Simplify(mustParse(t, "x * (y * (z + 1))"))
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "x * (y * z) + x * y" {
		t.Errorf("Simplify() with one pass = %s", got)
	}
}

func TestSimplifyLongSum(t *testing.T) {
	in := "x * (" + strings.Repeat("y + ", 80) + "y)"
	once, err := Simplify(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Simplify(once)
	if err != nil {
		t.Fatal(err)
	}
	if !ast.Equal(once, twice) {
		t.Errorf("not idempotent: size %d then %d", ast.Size(once), ast.Size(twice))
	}
	ast.Walk(once, func(n ast.Node) bool {
		if ast.IsOp(n, "*") && ast.IsOp(n.(*ast.Operator).Right, "+") {
			t.Errorf("undistributed product %s", n)
			return false
		}
		return true
	})
	if got, want := ast.Size(once), 81*4-1; got != want {
		t.Errorf("Size() = %d, want %d", got, want)
	}
}
