package attrtree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/attrtree/go-attrtree/encode"
	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"
)

func TestMerge(t *testing.T) {
	base := MustNew(ir.Map{ir.P("a", ir.Map{ir.P("x", 1), ir.P("y", 2)}), ir.P("l", []any{1})})
	over := MustNew(ir.Map{ir.P("a", ir.Map{ir.P("y", 3), ir.P("z", 4)}), ir.P("l", []any{2, 3})})
	res, err := Merge(base, over, MustNew(ir.Kw{ir.P("b", true)}))
	if err != nil {
		t.Fatal(err)
	}
	want := MustNew(ir.Map{
		ir.P("a", ir.Map{ir.P("x", 1), ir.P("y", 3), ir.P("z", 4)}),
		ir.P("l", []any{2, 3}),
		ir.P("b", true),
	})
	if !res.Equal(want) {
		t.Errorf("got %s want %s", res, want)
	}
	if base.Child("a").Has("z") || base.Has("b") {
		t.Errorf("base modified: %s", base)
	}
	res.Child("a").Set("z", 5)
	if *over.Child("a").Get("z").Int64 != 4 {
		t.Errorf("source shared with result")
	}
}

func TestDiffPatch(t *testing.T) {
	a := MustNew(ir.Map{ir.P("a", 1), ir.P("b", ir.Map{ir.P("c", []any{1, 2})})})
	b := MustNew(ir.Map{ir.P("a", 1), ir.P("b", ir.Map{ir.P("c", []any{1, 2, 3})}), ir.P("d", "x")})
	if Diff(a, a.DeepClone()) != nil {
		t.Errorf("diff of equal Nodes")
	}
	d := Diff(a, b)
	got, err := Patch(a, d)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(b) {
		t.Errorf("got %s want %s", got, b)
	}
	if _, err := Patch(b, d); err == nil {
		t.Errorf("patch applied twice")
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	n := MustNew(ir.Map{ir.P("name", "x"), ir.P("n", 1), ir.P("l", []any{true, nil})})
	for _, name := range []string{"a.json", "a.yaml", "a.yml", "a"} {
		p := filepath.Join(dir, name)
		if err := WriteFile(p, n); err != nil {
			t.Fatal(err)
		}
		got, err := ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(n) {
			t.Errorf("%s: got %s want %s", name, got, n)
		}
	}
	p := filepath.Join(dir, "b.json")
	if err := WriteFile(p, n, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	d, _ := os.ReadFile(p)
	if strings.HasPrefix(string(d), "{") {
		t.Errorf("format option ignored: %s", d)
	}
	if _, err := ReadFile(p); err == nil {
		t.Errorf("YAML read as JSON")
	}
	if _, err := ReadFile(p, parse.ParseYAML()); err != nil {
		t.Errorf("format option: %v", err)
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "n.att")
	n := MustNew(ir.Map{ir.P(ir.Tuple{1, 2}, 1.0), ir.P(3, ir.Tuple{"a"})})
	if err := Save(p, n); err != nil {
		t.Fatal(err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != n.String() {
		t.Errorf("got %s want %s", got, n)
	}
	if err := Save(p, MustNew(ir.Map{ir.P("o", struct{}{})})); !errors.Is(err, ir.ErrOpaque) {
		t.Errorf("opaque: %v", err)
	}
}
