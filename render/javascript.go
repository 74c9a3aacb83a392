package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/manifest"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

const jsAccessors = `
/**
 * Get a single StaticFile by its public path.
 * @param {string} name
 * @returns {StaticFile | undefined}
 */
export function get(name) {
  return STATICS.find((s) => s.name === name);
}

/**
 * @param {StaticFile} file
 * @returns {string} the public path
 */
export function display(file) {
  return file.name;
}
`

type jsEmitter struct {
	opts Options
	buf  *bytes.Buffer
}

func renderJs(m *manifest.Manifest, opts Options) ([]byte, error) {
	e := &jsEmitter{opts: opts, buf: &bytes.Buffer{}}
	if err := e.check(m); err != nil {
		return nil, err
	}

	fmt.Fprintf(e.buf, "// Code generated by %s. DO NOT EDIT.\n\n", opts.Generator)
	e.buf.WriteString("/** @typedef {{fileName: string, name: string, mime: string}} StaticFile */\n")

	for _, record := range topLevel(m) {
		e.buf.WriteByte('\n')
		e.comment(record, "")
		fmt.Fprintf(e.buf, "export const %s = ", e.ident(record.Ident))
		e.literal(record, "")
		e.buf.WriteString(";\n")
	}

	for _, child := range m.Root.Children {
		fmt.Fprintf(e.buf, "\nexport const %s = ", e.ident(child.Name))
		e.scope(child, "")
		e.buf.WriteString(";\n")
	}

	e.buf.WriteString("\n/** @type {ReadonlyArray<StaticFile>} */\nexport const STATICS = Object.freeze([\n")
	for _, record := range m.Index {
		e.buf.WriteString("  ")
		for _, segment := range record.Scope {
			e.buf.WriteString(e.ident(segment))
			e.buf.WriteByte('.')
		}
		e.buf.WriteString(e.ident(record.Ident))
		e.buf.WriteString(",\n")
	}
	e.buf.WriteString("]);\n")
	e.buf.WriteString(jsAccessors)

	out := e.buf.Bytes()
	if _, err := js.Parse(parse.NewInputBytes(out), js.Options{}); err != nil {
		return nil, errorInvalid("js", err)
	}
	return out, nil
}

// check the module level declarations are unique after renaming
func (e *jsEmitter) check(m *manifest.Manifest) error {
	declared := &cmn.IndexedSet{}
	for _, name := range []string{"STATICS", "get", "display"} {
		declared.Add(name)
	}
	names := scopeNames(m.Root)
	for _, record := range m.Extras {
		names = append(names, record.Ident)
	}
	if err := e.unique(declared, names); err != nil {
		return err
	}

	var err error
	m.Root.Walk(func(scope *manifest.Scope) {
		if err == nil && !scope.IsRoot() {
			err = e.unique(&cmn.IndexedSet{}, scopeNames(scope))
		}
	})
	return err
}

func (e *jsEmitter) unique(declared *cmn.IndexedSet, names []string) error {
	for _, name := range names {
		if _, added := declared.Add(e.ident(name)); !added {
			return errorIdentifier("js", name, "conflicts with "+e.ident(name))
		}
	}
	return nil
}

func (e *jsEmitter) ident(name string) string {
	if e.opts.Exported {
		return strcase.ToLowerCamel(name)
	}
	return name
}

func (e *jsEmitter) comment(record *manifest.Record, indent string) {
	fmt.Fprintf(e.buf, "%s// From %s\n", indent, jsString(record.FileName))
}

func (e *jsEmitter) literal(record *manifest.Record, indent string) {
	fmt.Fprintf(e.buf, "Object.freeze({\n%s  fileName: %s,\n%s  name: %s,\n%s  mime: %s,\n%s})",
		indent, jsString(record.FileName),
		indent, jsString(record.Name),
		indent, jsString(record.Mime),
		indent,
	)
}

func (e *jsEmitter) scope(scope *manifest.Scope, indent string) {
	inner := indent + "  "
	e.buf.WriteString("Object.freeze({\n")
	for _, record := range scope.Records {
		e.comment(record, inner)
		fmt.Fprintf(e.buf, "%s%s: ", inner, e.ident(record.Ident))
		e.literal(record, inner)
		e.buf.WriteString(",\n")
	}
	for _, child := range scope.Children {
		fmt.Fprintf(e.buf, "%s%s: ", inner, e.ident(child.Name))
		e.scope(child, inner)
		e.buf.WriteString(",\n")
	}
	e.buf.WriteString(indent)
	e.buf.WriteString("})")
}

// jsString a JSON string is a valid JavaScript string literal
func jsString(s string) string {
	out, _ := json.Marshal(s)
	return strings.TrimSpace(string(out))
}
