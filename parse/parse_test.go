package parse

import (
	"testing"

	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

type parseTest struct {
	in   string
	opts []ParseOption
	out  string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, out: "None"},
		{in: `22`, out: "22"},
		{in: `1e14`, out: "1e+14"},
		{in: `"hello"`, out: "'hello'"},
		{in: `{"b": 1, "a": [true, {"c": null}]}`, out: "{'b': 1, 'a': [True, {'c': None}]}"},
		{in: `[[]]`, out: "[[]]"},
		{in: `hello`, opts: []ParseOption{ParseYAML()}, out: "'hello'"},
		{in: "b: 1\na:\n  - x\n  - 2.5\n", opts: []ParseOption{ParseYAML()}, out: "{'b': 1, 'a': ['x', 2.5]}"},
		{in: "1: one\ntrue: t\n", opts: []ParseOption{ParseYAML()}, out: "{1: 'one', True: 't'}"},
		{in: "a: {b: {c: 1}}\n", opts: []ParseOption{ParseFormat(format.YAMLFormat)}, out: "{'a': {'b': {'c': 1}}}"},
		{in: "a: 1\na: 2\n", opts: []ParseOption{ParseYAML(), AllowDuplicateKeys(true)}, out: "{'a': 2}"},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			v, err := Parse([]byte(pt.in), pt.opts...)
			require.NoError(t, err)
			require.Equal(t, pt.out, v.Repr())
		})
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: `{"a": }`},
		{in: `{} {}`},
		{in: "a: [\n", opts: []ParseOption{ParseYAML()}},
		{in: "a: 1\na: 2\n", opts: []ParseOption{ParseYAML()}},
		{in: `[[[1]]]`, opts: []ParseOption{MaxDepth(2)}},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			_, err := Parse([]byte(pt.in), pt.opts...)
			require.ErrorIs(t, err, ErrParse)
		})
	}
	_, err := Parse([]byte("x"), ParseFormat(format.ReprFormat))
	require.ErrorIs(t, err, format.ErrBadFormat)
}

func TestFromYAMLKeys(t *testing.T) {
	x, err := fromYAML(yaml.MapSlice{{Key: []any{1, []any{"a"}}, Value: "pair"}}, false)
	require.NoError(t, err)
	require.Equal(t, "{(1, ('a',)): 'pair'}", ir.ValueOf(x).Repr())

	_, err = fromYAML(yaml.MapSlice{{Key: yaml.MapSlice{{Key: "a", Value: 1}}, Value: "x"}}, false)
	require.ErrorIs(t, err, ErrMapKey)
}

func TestParseNode(t *testing.T) {
	n, err := ParseNode([]byte("z: 1\na: 2\n"), ParseYAML())
	require.NoError(t, err)
	require.True(t, n.Equal(map[string]int{"a": 2, "z": 1}))
	require.Equal(t, []string{"z", "a"}, []string{n.Keys()[0].String, n.Keys()[1].String})

	_, err = ParseNode([]byte(`[1]`))
	require.ErrorIs(t, err, ErrNotNode)

	require.Equal(t, format.YAMLFormat, GetFormat(ParseYAML()))
}

func TestParseMatchesJSON(t *testing.T) {
	doc := `{"a": {"b": [1, 2.5, "x"]}, "c": null}`
	j, err := Parse([]byte(doc))
	require.NoError(t, err)
	y, err := Parse([]byte(doc), ParseYAML())
	require.NoError(t, err)
	require.True(t, ir.Equal(j, y), "%s != %s", j.Repr(), y.Repr())
}
