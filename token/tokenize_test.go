package token

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tt struct {
	Type TokenType
	Text string
}

func simple(toks []Token) []tt {
	res := make([]tt, len(toks))
	for i := range toks {
		res[i] = tt{toks[i].Type, toks[i].Text}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tt
	}{
		{
			name: "polynomial",
			in:   "x^2 + 2*x + 1",
			want: []tt{
				{TIdent, "x"}, {TOp, "^"}, {TNumber, "2"}, {TOp, "+"},
				{TNumber, "2"}, {TOp, "*"}, {TIdent, "x"}, {TOp, "+"}, {TNumber, "1"},
			},
		},
		{
			name: "decimals",
			in:   "3.25 / 4.",
			want: []tt{{TNumber, "3.25"}, {TOp, "/"}, {TNumber, "4."}},
		},
		{
			name: "function",
			in:   "sin(theta)",
			want: []tt{{TIdent, "sin"}, {TOp, "("}, {TIdent, "theta"}, {TOp, ")"}},
		},
		{
			name: "no spaces",
			in:   "2x",
			want: []tt{{TNumber, "2"}, {TIdent, "x"}},
		},
		{
			name: "tabs",
			in:   "\ta\t-\tb ",
			want: []tt{{TIdent, "a"}, {TOp, "-"}, {TIdent, "b"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.in)
			if err != nil {
				t.Fatalf("Tokenize(%q) error = %v", tc.in, err)
			}
			if diff := cmp.Diff(tc.want, simple(toks)); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}

func TestTokenizePositions(t *testing.T) {
	toks, err := Tokenize("ab + 12")
	if err != nil {
		t.Fatal(err)
	}
	got := []int{toks[0].Pos.I, toks[1].Pos.I, toks[2].Pos.I}
	if diff := cmp.Diff([]int{0, 3, 5}, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	v, err := toks[2].Number()
	if err != nil || v != 12 {
		t.Errorf("Number() = %v, %v", v, err)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
		pos  int
	}{
		{"", ErrEmptyInput, -1},
		{"   \t ", ErrEmptyInput, -1},
		{"x + $", ErrLex, 4},
		{"x % 2", ErrLex, 2},
		{"1,5", ErrLex, 1},
		{".5", ErrLex, 0},
		{"x²", ErrLex, 1},
	}
	for _, tc := range tests {
		_, err := Tokenize(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Tokenize(%q) error = %v, want %v", tc.in, err, tc.want)
			continue
		}
		if tc.pos < 0 {
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("Tokenize(%q) error %T is not a *TokenizeErr", tc.in, err)
			continue
		}
		if te.Pos.I != tc.pos {
			t.Errorf("Tokenize(%q) error at %d, want %d", tc.in, te.Pos.I, tc.pos)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"x + 1", true},
		{"(x + 1) * (y - 2)", true},
		{"sin(x) + cos(y)", true},
		{"((x))", true},
		{"x +* 2", false},
		{"+ x", false},
		{"x -", false},
		{"(x + 1", false},
		{"x + 1)", false},
		{")x(", false},
		{"2 * (- x)", false},
		{"2 * (-3)", true},
		{"(-0.5)^2", true},
		{"(-2 + x)", false},
		{"-2", true},
		{" -0.25 ", true},
		{"-2 + x", false},
		{"- 2", false},
		{"(x +)", false},
		{"sin x", false},
		{"sin", false},
		{"()", false},
	}
	for _, tc := range tests {
		_, err := Lex(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("Lex(%q) error = %v", tc.in, err)
			}
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("Lex(%q) error = %v, want %v", tc.in, err, ErrSyntax)
		}
	}
}

func TestPrintTokens(t *testing.T) {
	toks, err := Tokenize("x+1")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	PrintTokens(&buf, toks, "lex")
	want := "lex tokens:\n" +
		"\tTIdent `x` `...x+1...` at offset 0 (col=1)\n" +
		"\tTOp `+` `...x+1...` at offset 1 (col=2)\n" +
		"\tTNumber `1` `...x+1...` at offset 2 (col=3)\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PrintTokens() mismatch (-want +got):\n%s", diff)
	}
}

func TestNegativeLiteral(t *testing.T) {
	toks, err := Tokenize("x * (-2.5) - (- 1)")
	if err != nil {
		t.Fatal(err)
	}
	want := []tt{
		{TIdent, "x"}, {TOp, "*"}, {TOp, "("}, {TNumber, "-2.5"}, {TOp, ")"},
		{TOp, "-"}, {TOp, "("}, {TOp, "-"}, {TNumber, "1"}, {TOp, ")"},
	}
	if diff := cmp.Diff(want, simple(toks)); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
	v, err := toks[3].Number()
	if err != nil || v != -2.5 {
		t.Errorf("Number() = %v, %v", v, err)
	}

	toks, err = Tokenize("-5")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]tt{{TNumber, "-5"}}, simple(toks)); diff != "" {
		t.Errorf("Tokenize(-5) mismatch (-want +got):\n%s", diff)
	}
}
