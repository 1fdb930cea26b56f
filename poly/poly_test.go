package poly

import (
	"errors"
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

func TestIsPolynomial(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"x^2 + 2*x + 1", true},
		{"x*y + 3", true},
		{"7", true},
		{"x / 2", true},
		{"x^2^2", true},
		{"1 / x", false},
		{"x / 0", false},
		{"x^0.5", false},
		{"x^y", false},
		{"sin(x)", false},
		{"2 * exp(1)", false},
	}
	for _, tc := range tests {
		if got := IsPolynomial(mustParse(t, tc.in)); got != tc.want {
			t.Errorf("IsPolynomial(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDegree(t *testing.T) {
	tests := []struct {
		in   string
		v    string
		want int
	}{
		{"x^3 + x", "x", 3},
		{"x*y^2", "x", 1},
		{"x*y^2", "y", 2},
		{"(x + 1)^2 * x", "x", 3},
		{"5", "x", 0},
		{"y", "x", 0},
		{"1 / x", "x", -1},
		{"sin(y) * x", "x", 1},
		{"(x^1000)^1000", "x", 1000000},
	}
	for _, tc := range tests {
		got, err := Degree(mustParse(t, tc.in), tc.v)
		if err != nil {
			t.Fatalf("Degree(%q, %q) error = %v", tc.in, tc.v, err)
		}
		if got != tc.want {
			t.Errorf("Degree(%q, %q) = %d, want %d", tc.in, tc.v, got, tc.want)
		}
	}
	for _, in := range []string{
		"2^x",
		"sin(x)",
		"x^y",
		"((x^2147483647)^2147483647)^2147483647",
		"(x^65536)^65536",
		"x^2147483647 * x^2147483647",
		"1 / x^2147483647 / x^2147483647",
	} {
		if _, err := Degree(mustParse(t, in), "x"); !errors.Is(err, ErrNotPolynomial) {
			t.Errorf("Degree(%q) error = %v, want %v", in, err, ErrNotPolynomial)
		}
	}
}

func TestCoefficients(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"x^2 + 2*x + 1", []float64{1, 2, 1}},
		{"(x + 1)^3", []float64{1, 3, 3, 1}},
		{"x/2 - 3", []float64{-3, 0.5}},
		{"x - x", []float64{0}},
		{"x * (x - 2)", []float64{0, -2, 1}},
		{"2^3", []float64{8}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Coefficients(mustParse(t, tc.in), "x")
			if err != nil {
				t.Fatalf("Coefficients() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Coefficients() mismatch (-want +got):\n%s", diff)
			}
		})
	}
	for _, in := range []string{"x*y", "1/x", "x^100", "log(x)"} {
		if _, err := Coefficients(mustParse(t, in), "x"); !errors.Is(err, ErrNotPolynomial) {
			t.Errorf("Coefficients(%q) error = %v, want %v", in, err, ErrNotPolynomial)
		}
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x^2 + 2*x + 1", "(x + 1)^2"},
		{"2*x^2 - 2", "2 * (x + 1) * (x - 1)"},
		{"x^3 - x", "x * (x + 1) * (x - 1)"},
		{"x^2 - 5*x + 6", "(x - 2) * (x - 3)"},
		{"2*x^2 + 3*x + 1", "(x + 1) * (2 * x + 1)"},
		{"x^4 - 1", "(x + 1) * (x - 1) * (x^2 + 1)"},
		{"0 - x^2 + 1", "(-1) * (x + 1) * (x - 1)"},
		{"4*x + 8", "4 * (x + 2)"},
		{"x^2 + 1", "x^2 + 1"},
		{"x^3", "x^3"},
		{"x", "x"},
		{"7", "7"},
		{"x^2 / 2", "x^2 / 2"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			in := mustParse(t, tc.in)
			got, err := Factor(in, "x")
			if err != nil {
				t.Fatalf("Factor() error = %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("Factor(%q) = %q, want %q", tc.in, got, tc.want)
			}
			for _, x := range []float64{-2, 0.5, 3} {
				env := map[string]float64{"x": x}
				a, err := ast.Evaluate(in, env)
				if err != nil {
					t.Fatal(err)
				}
				b, err := ast.Evaluate(got, env)
				if err != nil {
					t.Fatal(err)
				}
				if a != b {
					t.Errorf("Factor(%q) at x=%v: %v != %v", tc.in, x, b, a)
				}
			}
		})
	}
}

func TestFactorNotPolynomial(t *testing.T) {
	_, err := Factorizer{}.Factor(mustParse(t, "x^2 * y"), "x")
	if !errors.Is(err, ErrNotPolynomial) {
		t.Errorf("Factor() error = %v, want %v", err, ErrNotPolynomial)
	}
}
