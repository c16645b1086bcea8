package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func fixture() *ir.Node {
	return ir.MustNew(ir.Map{
		ir.P("name", "att"),
		ir.P("n", 3),
		ir.P("f", 1.5),
		ir.P("l", []any{1, "x", nil, true}),
		ir.P("t", ir.Tuple{1, 2}),
		ir.P("sub", ir.Map{ir.P("z", ir.Map{}), ir.P("a", []any{})}),
		ir.P(2, "two"),
	})
}

func TestEncodeJSONCompact(t *testing.T) {
	n := fixture()
	want, err := n.MarshalJSON()
	require.NoError(t, err)
	got := MustString(n, Indent(0))
	require.Equal(t, string(want), got)
}

func TestEncodeJSONIndent(t *testing.T) {
	n := ir.MustNew(ir.Map{ir.P("a", 1), ir.P("b", []any{true}), ir.P("c", ir.Map{})})
	got := MustString(n)
	want := "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ],\n  \"c\": {}\n}"
	require.Equal(t, want, got)
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	n := fixture()
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(n, buf, Indent(4)))
	v, err := parse.Parse(buf.Bytes(), parse.ParseJSON())
	require.NoError(t, err)
	// tuples come back as lists and the int key as a string
	require.Equal(t, n.Len(), v.Node.Len())
	require.True(t, v.Node.Has("2"))
	require.Equal(t, ir.ListType, v.Node.Get("t").Type)
	require.Equal(t, n.Keys()[0].String, v.Node.Keys()[0].String)
}

func TestEncodeYAML(t *testing.T) {
	n := fixture()
	n.Delete(2)
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(n, buf, EncodeFormat(format.YAMLFormat)))
	out := buf.String()
	require.Less(t, strings.Index(out, "name:"), strings.Index(out, "sub:"))
	require.Less(t, strings.Index(out, "z:"), strings.Index(out, "a:"))

	v, err := parse.Parse(buf.Bytes(), parse.ParseYAML())
	require.NoError(t, err)
	n.Set("t", []any{1, 2})
	require.True(t, ir.Equal(v, ir.FromNode(n)), "%s\n%s", out, v.Repr())
}

func TestEncodeYAMLTupleKey(t *testing.T) {
	n := ir.MustNew(ir.Map{ir.P(ir.Tuple{1, 2}, "x")})
	err := Encode(n, &bytes.Buffer{}, EncodeFormat(format.YAMLFormat))
	require.ErrorIs(t, err, ErrEncoding)
	require.ErrorIs(t, err, ir.ErrUnsupportedKey)

	err = Encode(n, &bytes.Buffer{})
	require.ErrorIs(t, err, ir.ErrUnsupportedKey)
}

func TestEncodeRepr(t *testing.T) {
	n := fixture()
	got := MustString(n, EncodeFormat(format.ReprFormat))
	require.Equal(t, n.String(), got)
}

func TestEncodeColors(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = old }()

	n := ir.MustNew(ir.Map{ir.P("a", "b")})
	plain := MustString(n)
	colored := MustString(n, EncodeColors(NewColors()))
	require.NotEqual(t, plain, colored)
	require.Contains(t, colored, "\x1b[")
	require.Equal(t, plain, MustString(n, EncodeColors(NewColors()), EncodeColors(nil)))

	colored = MustString(n, EncodeFormat(format.YAMLFormat), EncodeColors(NewColors()))
	require.Contains(t, colored, "\x1b[")
	require.Contains(t, colored, "a")
}

func TestFormatFromOpts(t *testing.T) {
	require.Equal(t, format.JSONFormat, FormatFromOpts())
	require.Equal(t, format.YAMLFormat, FormatFromOpts(Indent(3), EncodeFormat(format.YAMLFormat)))
}

func TestColorsGet(t *testing.T) {
	c := NewColors()
	require.NotNil(t, c.Get(ir.StringType, ValueColor))
	c = &Colors{Default: colorDefault}
	require.Equal(t, "x%", c.Color(ir.StringType, ValueColor, "x%"))
}

func TestEncodeYAMLScalarKeys(t *testing.T) {
	n := ir.MustNew(ir.Map{ir.P(2, "two"), ir.P(true, 1), ir.P(nil, 0)})
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(n, buf, EncodeFormat(format.YAMLFormat)))
	v, err := parse.ParseNode(buf.Bytes(), parse.ParseYAML())
	require.NoError(t, err)
	require.Equal(t, "two", v.Get("2").String)
	require.True(t, v.Has("true"))
	require.True(t, v.Has("null"))
}
