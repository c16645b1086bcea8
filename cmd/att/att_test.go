package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/parse"
	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/require"
)

func TestPathArg(t *testing.T) {
	p, rest, err := pathArg([]string{".a.b", "f"})
	require.NoError(t, err)
	require.Equal(t, "$.a.b", p)
	require.Equal(t, []string{"f"}, rest)

	_, _, err = pathArg(nil)
	require.ErrorIs(t, err, cli.ErrUsage)
	_, _, err = pathArg([]string{""})
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestInputs(t *testing.T) {
	require.Equal(t, []string{"-"}, inputs(nil))
	require.Equal(t, []string{"a", "b"}, inputs([]string{"a", "b"}))
	require.Equal(t, 2, count(true, false, true))
}

func TestGetish(t *testing.T) {
	opts := []parse.ParseOption{parse.ParseYAML()}
	n, err := getish(true, false, nil, "a: 1", opts)
	require.NoError(t, err)
	require.True(t, n.Has("a"))

	p := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(p, []byte("b: 2\n"), 0o644))
	n, err = getish(false, false, nil, p, opts)
	require.NoError(t, err)
	require.True(t, n.Has("b"))

	_, err = getish(true, true, nil, p, opts)
	require.ErrorIs(t, err, cli.ErrUsage)
	_, err = getish(true, false, nil, "[1]", opts)
	require.Error(t, err)
}

func TestFormats(t *testing.T) {
	cfg := &MainConfig{}
	require.Equal(t, format.YAMLFormat, cfg.inFormat())
	cfg.J = true
	require.Equal(t, format.JSONFormat, cfg.inFormat())
	_, err := cfg.fmtFunc(&cfg.InFormat)(nil, "repr")
	require.NoError(t, err)
	require.Equal(t, format.ReprFormat, *cfg.InFormat)
	_, err = cfg.fmtFunc(&cfg.InFormat)(nil, "xml")
	require.ErrorIs(t, err, cli.ErrUsage)
}

func TestEnvFunc(t *testing.T) {
	env := map[string]any{}
	require.NoError(t, envFunc(env, "stage=prod"))
	require.NoError(t, envFunc(env, "n=3"))
	require.NoError(t, envFunc(env, "m={a: [1]}"))
	require.Equal(t, map[string]any{
		"stage": "prod",
		"n":     int64(3),
		"m":     map[string]any{"a": []any{int64(1)}},
	}, env)
	require.ErrorIs(t, envFunc(env, "novalue"), cli.ErrUsage)
	require.ErrorIs(t, envFunc(env, "=1"), cli.ErrUsage)
}
