package query

import (
	"testing"

	"github.com/attrtree/go-attrtree/ir"
	"github.com/stretchr/testify/require"
)

func fixture() *ir.Node {
	return ir.MustNew(ir.Map{
		ir.P("name", "web"),
		ir.P("replicas", 3),
		ir.P("container", ir.Map{ir.P("image", "nginx"), ir.P("ports", []any{80, 443})}),
		ir.P(1, "one"),
	})
}

func TestEval(t *testing.T) {
	n := fixture()
	for _, tc := range []struct {
		src  string
		want any
	}{
		{`replicas * 2`, 6},
		{`name + "-svc"`, "web-svc"},
		{`container.image`, "nginx"},
		{`len(container.ports)`, 2},
		{`$env["1"]`, "one"},
		{`path("$.container.ports[1]")`, 443},
		{`path("$.nothing")`, nil},
		{`missing`, nil},
	} {
		got, err := Eval(n, tc.src)
		require.NoError(t, err, tc.src)
		require.True(t, ir.Equal(ir.ValueOf(tc.want), got), "%s: %s", tc.src, got.Repr())
	}
}

func TestTest(t *testing.T) {
	n := fixture()
	for src, want := range map[string]bool{
		`replicas > 1`:              true,
		`replicas > 5`:              false,
		`has("$.container.image")`:  true,
		`has("$.container.tag")`:    false,
		`name == "web" && has("$")`: true,
		`container.ports`:           true,
		`""`:                        false,
	} {
		got, err := Test(n, src)
		require.NoError(t, err, src)
		require.Equal(t, want, got, src)
	}
}

func TestErrors(t *testing.T) {
	n := fixture()
	_, err := Eval(n, `replicas +`)
	require.ErrorIs(t, err, ErrQuery)
	_, err = Eval(n, `path("container")`)
	require.ErrorIs(t, err, ErrQuery)

	bad := ir.MustNew(ir.Map{ir.P(ir.Tuple{1}, 1)})
	_, err = Eval(bad, `true`)
	require.ErrorIs(t, err, ErrQuery)
	require.ErrorIs(t, err, ir.ErrUnsupportedKey)
}

func TestFilter(t *testing.T) {
	vs := []ir.Value{
		ir.ValueOf(ir.Map{ir.P("n", 1)}),
		ir.ValueOf(ir.Map{ir.P("n", 5)}),
		ir.FromInt(7),
		ir.ValueOf(ir.Map{ir.P("m", 5)}),
	}
	got, err := Filter(vs, `n != nil && n > 2`)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, int64(5), *got[0].Node.Get("n").Int64)
}
