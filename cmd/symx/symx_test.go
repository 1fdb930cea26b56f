package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/parse"
	"github.com/signadot/symx/transform"
)

func TestReadSteps(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "steps.yaml")
	src := "- op: substitute\n  args: [x, y + 1]\n- op: simplify\n- op: differentiate\n  args: [y]\n"
	if err := os.WriteFile(file, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := readSteps(file)
	if err != nil {
		t.Fatal(err)
	}
	want := []transform.Step{
		{Op: "substitute", Args: []string{"x", "y + 1"}},
		{Op: "simplify"},
		{Op: "differentiate", Args: []string{"y"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("readSteps() mismatch (-want +got):\n%s", diff)
	}

	res, err := transform.New().Chain("2*x", got)
	if err != nil {
		t.Fatal(err)
	}
	if res != "2" {
		t.Errorf("Chain() = %q, want 2", res)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("- op: simplify\n  arg: [x]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readSteps(bad); err == nil {
		t.Error("readSteps() accepted an unknown field")
	}
	if _, err := readSteps(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("readSteps() of a missing file succeeded")
	}
}

func TestWriteTree(t *testing.T) {
	n, err := parse.ParseString("sin(x) + 2 * y")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	plain := &encode.Colors{Default: func(s string, _ ...any) string { return s }}
	if err := writeTree(&buf, plain, n, 0); err != nil {
		t.Fatal(err)
	}
	want := "+\n  sin\n    x\n  *\n    2\n    y\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("writeTree() mismatch (-want +got):\n%s", diff)
	}
}
