package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("ParseFormat(%s) = %s", f, got)
		}
	}
	if f, err := ParseFormat("yml"); err != nil || !f.IsYAML() {
		t.Errorf("yml: %s %v", f, err)
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("toml: %v", err)
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		got, ok := FromSuffix(f.Suffix())
		if !ok || got != f {
			t.Errorf("FromSuffix(%s) = %s, %t", f.Suffix(), got, ok)
		}
	}
	if _, ok := FromSuffix(".txt"); ok {
		t.Errorf(".txt has a format")
	}
	if ReprFormat.CanParse() {
		t.Errorf("repr is parseable")
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("repr")); err != nil || f != ReprFormat {
		t.Errorf("got %s, %v", f, err)
	}
	if err := f.UnmarshalText([]byte("x")); err == nil {
		t.Errorf("x accepted")
	}
}
