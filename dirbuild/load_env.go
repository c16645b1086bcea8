package dirbuild

import (
	"fmt"
	"os"

	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/parse"
)

const (
	EnvEnv = "ATT_ENV"
)

// LoadEnv parses the mapping in $ATT_ENV, nil if it is unset.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	return ParseEnv(envEnv)
}

// ParseEnv parses a YAML or JSON mapping for use as an env.
func ParseEnv(src string) (map[string]any, error) {
	node, err := parse.ParseNode([]byte(src), parse.ParseYAML())
	if err != nil {
		return nil, fmt.Errorf("error decoding env %q: %w", src, err)
	}
	env, err := node.ToStringMap()
	if err != nil {
		return nil, fmt.Errorf("error decoding env %q: %w", src, err)
	}
	if debug.Build() {
		debug.Logf("loaded env:\n")
		debug.LogAny(env)
	}
	return env, nil
}
