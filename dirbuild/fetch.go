package dirbuild

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	attrtree "github.com/attrtree/go-attrtree"
	"github.com/attrtree/go-attrtree/debug"
	"github.com/attrtree/go-attrtree/format"
	"github.com/attrtree/go-attrtree/ir"
	"github.com/attrtree/go-attrtree/parse"
)

// ExecTimeout bounds the run time of exec sources.
var ExecTimeout = 10 * time.Second

// DirSource is one of a file, a directory of .yaml, .yml and .json files
// read in lexical order, or a command whose output is parsed as YAML
// unless Format is set. Paths are relative to the build directory and
// may refer to env entries as $name.
type DirSource struct {
	File   *string        `json:"file,omitempty"`
	Dir    *string        `json:"dir,omitempty"`
	Exec   *string        `json:"exec,omitempty"`
	Format *format.Format `json:"format,omitempty"`
}

func (s *DirSource) String() string {
	switch {
	case s.File != nil:
		return "file " + *s.File
	case s.Dir != nil:
		return "dir " + *s.Dir
	case s.Exec != nil:
		return "exec " + *s.Exec
	}
	return "<empty>"
}

// Fetch returns the documents of s.
func (s *DirSource) Fetch(root string, env map[string]any) ([]*ir.Node, error) {
	var opts []parse.ParseOption
	if s.Format != nil {
		opts = append(opts, parse.ParseFormat(*s.Format))
	}
	switch {
	case s.File != nil:
		path, err := expandString(*s.File, env)
		if err != nil {
			return nil, err
		}
		n, err := attrtree.ReadFile(filepath.Join(root, path), opts...)
		if err != nil {
			return nil, err
		}
		return []*ir.Node{n}, nil
	case s.Dir != nil:
		path, err := expandString(*s.Dir, env)
		if err != nil {
			return nil, err
		}
		w := &sourceWalker{root: filepath.Join(root, path), opts: opts}
		if err := filepath.WalkDir(w.root, w.walk); err != nil {
			return nil, err
		}
		return w.docs, nil
	case s.Exec != nil:
		cmdStr, err := expandString(*s.Exec, env)
		if err != nil {
			return nil, err
		}
		argv := strings.Fields(cmdStr)
		if len(argv) == 0 {
			return nil, fmt.Errorf("invalid command %q (after env %q)", cmdStr, *s.Exec)
		}
		ctx, cancel := context.WithTimeout(context.Background(), ExecTimeout)
		defer cancel()
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		cmd.Dir = root
		out := bytes.NewBuffer(nil)
		cmd.Stdout = out
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return nil, err
		}
		if debug.Build() {
			debug.Logf("exec %s gave\n%s\n", cmdStr, out.String())
		}
		return splitDocs(out.Bytes(), append([]parse.ParseOption{parse.ParseYAML()}, opts...))
	}
	return nil, fmt.Errorf("%w: source has none of file, dir, exec", ErrBuild)
}

func splitDocs(d []byte, opts []parse.ParseOption) ([]*ir.Node, error) {
	var res []*ir.Node
	for _, doc := range bytes.Split(d, []byte("\n---\n")) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		n, err := parse.ParseNode(doc, opts...)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

type sourceWalker struct {
	root string
	opts []parse.ParseOption
	docs []*ir.Node
}

func (w *sourceWalker) walk(path string, info fs.DirEntry, err error) error {
	if err != nil {
		return err
	}
	if info.IsDir() {
		if path != w.root && strings.HasPrefix(info.Name(), ".") {
			return fs.SkipDir
		}
		return nil
	}
	if _, ok := format.FromSuffix(filepath.Ext(path)); !ok {
		return nil
	}
	n, err := attrtree.ReadFile(path, w.opts...)
	if err != nil {
		return err
	}
	w.docs = append(w.docs, n)
	return nil
}

func expandString(s string, env map[string]any) (string, error) {
	var missing []string
	res := os.Expand(s, func(name string) string {
		v, ok := env[name]
		if !ok {
			missing = append(missing, name)
			return ""
		}
		return fmt.Sprint(v)
	})
	if len(missing) != 0 {
		return "", fmt.Errorf("%w: %q refers to undefined env %s", ErrBuild, s, strings.Join(missing, ", "))
	}
	return res, nil
}
