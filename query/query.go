package query

import (
	"errors"
	"fmt"

	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/expr-lang/expr"
)

var ErrQuery = errors.New("query error")

// Eval evaluates src against n and returns the result as a Value.
func Eval(n *ir.Node, src string) (ir.Value, error) {
	res, err := run(n, src)
	if err != nil {
		return ir.Value{}, err
	}
	return ir.ValueOf(res), nil
}

// Test evaluates src against n and reports whether the result is truthy.
func Test(n *ir.Node, src string) (bool, error) {
	v, err := Eval(n, src)
	if err != nil {
		return false, err
	}
	return ir.Truth(v), nil
}

// Filter returns the Nodes among vs for which src is truthy. Values which
// are not Nodes are skipped.
func Filter(vs []ir.Value, src string) ([]ir.Value, error) {
	var res []ir.Value
	for _, v := range vs {
		if v.Type != ir.NodeType {
			continue
		}
		ok, err := Test(v.Node, src)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, v)
		}
	}
	return res, nil
}

func run(n *ir.Node, src string) (any, error) {
	env, err := Env(n)
	if err != nil {
		return nil, err
	}
	prog, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res, err := expr.Run(prog, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if debug.Query() {
		debug.Logf("query %q on %s: %v\n", src, n, res)
	}
	return res, nil
}

// Env returns the variables an expression sees for n.
func Env(n *ir.Node) (map[string]any, error) {
	env, err := n.ToStringMap()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	env["path"] = func(p string) (any, error) {
		v, ok, err := n.GetPath(p)
		if err != nil || !ok {
			return nil, err
		}
		return ir.StringMapValue(v)
	}
	env["has"] = func(p string) (bool, error) {
		_, ok, err := n.GetPath(p)
		return ok, err
	}
	return env, nil
}
