// Package filter evaluates exclusion expressions against the entries found while walking an asset directory.
//
// Expressions use the expr language (https://github.com/antonmedv/expr) and must evaluate to a boolean, e.g.
//
//	hidden || ext in ["map", "ts"] || (isDir && name == "node_modules")
package filter

import (
	"path"
	"strings"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
	"github.com/syntax-framework/statics/cmn"
)

var errorCompile = cmn.Err(
	"filter.compile",
	"Invalid exclude expression.", "Expression: %q", "Caused by: %s",
)

var errorEval = cmn.Err(
	"filter.eval",
	"Could not evaluate the exclude expression.", "Expression: %q", "Path: %s", "Caused by: %s",
)

// Entry file or directory being evaluated
type Entry struct {
	Path  string // relative to the asset directory, "/" separated
	IsDir bool
	Size  int64
}

func (e Entry) env() map[string]interface{} {
	name := path.Base(e.Path)
	ext := ""
	if !e.IsDir {
		if i := strings.LastIndexByte(name, '.'); i > 0 {
			ext = name[i+1:]
		}
	}
	dir := path.Dir(e.Path)
	if dir == "." {
		dir = ""
	}
	return map[string]interface{}{
		"name":   name,
		"ext":    ext,
		"dir":    dir,
		"path":   e.Path,
		"isDir":  e.IsDir,
		"hidden": strings.HasPrefix(name, "."),
		"size":   e.Size,
	}
}

// Filter a compiled exclude expression
type Filter struct {
	source  string
	program *vm.Program
}

// Compile parses the expression. An empty expression returns a nil Filter, which excludes nothing.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}
	program, err := expr.Compile(expression, expr.Env(Entry{}.env()), expr.AsBool())
	if err != nil {
		return nil, errorCompile(expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// String the source expression
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Excludes reports whether the entry must be skipped
func (f *Filter) Excludes(entry Entry) (bool, error) {
	if f == nil {
		return false, nil
	}
	output, err := expr.Run(f.program, entry.env())
	if err != nil {
		return false, errorEval(f.source, entry.Path, err)
	}
	excluded, _ := output.(bool)
	return excluded, nil
}
