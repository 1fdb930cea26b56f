package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2", 2},
		{"1/4", 0.25},
		{"2^10", 1024},
		{"-3 + 0.5", -2.5},
		{"sin(pi/2)", 1},
		{"exp(0) + log(1)", 1},
		{"y * 2", 6},
	}
	env := Env{"y": 3}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Value(tc.in, env)
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("Value() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValueErrors(t *testing.T) {
	for _, in := range []string{"", "1 +", "\"s\"", "true", "log(0)", "1/0", "z + 1"} {
		t.Run(in, func(t *testing.T) {
			if _, err := Value(in, Env{}); !errors.Is(err, ErrBinding) {
				t.Errorf("Value(%q) error = %v, want %v", in, err, ErrBinding)
			}
		})
	}
}

func TestSet(t *testing.T) {
	env := Env{}
	for _, a := range []string{"x=2", "y=1/3", "z=x*3", "w=-0.5", "pi=3"} {
		if err := Set(env, a); err != nil {
			t.Fatalf("Set(%q) error = %v", a, err)
		}
	}
	want := Env{"x": 2, "y": 1.0 / 3, "z": 6, "w": -0.5, "pi": 3}
	if diff := cmp.Diff(want, env, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Set() mismatch (-want +got):\n%s", diff)
	}
	for _, a := range []string{"x", "=1", "x=", "x=true", "x=[1, 2]"} {
		if err := Set(Env{}, a); !errors.Is(err, ErrBinding) {
			t.Errorf("Set(%q) error = %v, want %v", a, err, ErrBinding)
		}
	}
}

func TestFromOS(t *testing.T) {
	t.Setenv("SYMX_TEST_ENV", "a: 2\nb: a^2\nc: 1/8\n")
	env := Env{}
	if err := FromOS(env, "SYMX_TEST_ENV"); err != nil {
		t.Fatal(err)
	}
	want := Env{"a": 2, "b": 4, "c": 0.125}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Errorf("FromOS() mismatch (-want +got):\n%s", diff)
	}

	t.Setenv("SYMX_TEST_ENV", "")
	env = Env{}
	if err := FromOS(env, "SYMX_TEST_ENV"); err != nil || len(env) != 0 {
		t.Errorf("FromOS() of blank variable = %v, %v", env, err)
	}

	if err := FromYAML(Env{}, []byte("a: b + 1\n")); !errors.Is(err, ErrBinding) {
		t.Errorf("FromYAML() error = %v, want %v", err, ErrBinding)
	}
}
