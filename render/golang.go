package render

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/manifest"
)

const goPrelude = `
// StaticFile a static file declared by the asset manifest
type StaticFile struct {
	FileName string // original location at generation time
	Name     string // cache-busted public path
	Mime     string
}

// Get returns the StaticFile with the given public path, nil if it does not exist.
func Get(name string) *StaticFile {
	for _, s := range Statics {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// String returns the public path
func (s *StaticFile) String() string {
	return s.Name
}
`

var goReserved = []string{"StaticFile", "Statics", "Get"}

// goPredeclared identifiers that would shadow the universe scope when declared at package level
var goPredeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true, "int8": true, "int16": true, "int32": true,
	"int64": true, "rune": true, "string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true, "true": true, "false": true, "iota": true, "nil": true, "append": true,
	"cap": true, "clear": true, "close": true, "complex": true, "copy": true, "delete": true, "imag": true,
	"len": true, "make": true, "max": true, "min": true, "new": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true,
}

type goEmitter struct {
	opts      Options
	buf       *bytes.Buffer
	typeNames map[*manifest.Scope]string
}

func renderGo(m *manifest.Manifest, opts Options) ([]byte, error) {
	g := &goEmitter{opts: opts, buf: &bytes.Buffer{}, typeNames: map[*manifest.Scope]string{}}
	if err := g.check(m); err != nil {
		return nil, err
	}

	fmt.Fprintf(g.buf, "// Code generated by %s. DO NOT EDIT.\n\npackage %s\n", opts.Generator, opts.Package)
	g.buf.WriteString(goPrelude)

	for _, record := range topLevel(m) {
		g.buf.WriteByte('\n')
		g.comment(record)
		fmt.Fprintf(g.buf, "var %s = ", g.ident(record.Ident))
		g.literal(record)
		g.buf.WriteByte('\n')
	}

	m.Root.Walk(func(scope *manifest.Scope) {
		if !scope.IsRoot() {
			g.scopeType(scope)
		}
	})

	for _, child := range m.Root.Children {
		fmt.Fprintf(g.buf, "\nvar %s = ", g.ident(child.Name))
		g.scopeLiteral(child)
		g.buf.WriteByte('\n')
	}

	g.buf.WriteString("\n// Statics every declared StaticFile, in emission order\nvar Statics = []*StaticFile{\n")
	for _, record := range m.Index {
		g.buf.WriteString("\t&")
		for _, segment := range record.Scope {
			g.buf.WriteString(g.ident(segment))
			g.buf.WriteByte('.')
		}
		g.buf.WriteString(g.ident(record.Ident))
		g.buf.WriteString(",\n")
	}
	g.buf.WriteString("}\n")

	out, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, errorInvalid("go", err)
	}
	return out, nil
}

func (g *goEmitter) ident(name string) string {
	if g.opts.Exported {
		return strcase.ToCamel(name)
	}
	return name
}

// check validates every identifier and assigns the scope type names
func (g *goEmitter) check(m *manifest.Manifest) error {
	if !token.IsIdentifier(g.opts.Package) {
		return errorIdentifier("go", g.opts.Package, "invalid package name")
	}

	packageLevel := &cmn.IndexedSet{}
	for _, name := range goReserved {
		packageLevel.Add(name)
	}
	declare := func(set *cmn.IndexedSet, name string, original string, topLevel bool) error {
		if !token.IsIdentifier(name) {
			return errorIdentifier("go", original, "keyword or invalid identifier")
		}
		if topLevel && goPredeclared[name] {
			return errorIdentifier("go", original, "shadows a predeclared identifier")
		}
		if _, added := set.Add(name); !added {
			return errorIdentifier("go", original, "conflicts with "+name)
		}
		return nil
	}

	for _, record := range topLevel(m) {
		if err := declare(packageLevel, g.ident(record.Ident), record.Ident, true); err != nil {
			return err
		}
	}

	var err error
	m.Root.Walk(func(scope *manifest.Scope) {
		if err != nil {
			return
		}
		if scope.IsRoot() {
			for _, child := range scope.Children {
				if err = declare(packageLevel, g.ident(child.Name), child.Name, true); err != nil {
					return
				}
			}
			return
		}

		typeName := g.scopeTypeName(packageLevel, scope)
		if err = declare(packageLevel, typeName, strings.Join(scope.Path, "::"), true); err != nil {
			return
		}
		g.typeNames[scope] = typeName

		fields := &cmn.IndexedSet{}
		for _, record := range scope.Records {
			if err = declare(fields, g.ident(record.Ident), record.Ident, false); err != nil {
				return
			}
		}
		for _, child := range scope.Children {
			if err = declare(fields, g.ident(child.Name), child.Name, false); err != nil {
				return
			}
		}
	})
	return err
}

// scopeTypeName the camel case of the scope path followed by "Scope". Paths that camel case to a name already
// declared, like "a_b/c" and "a/b_c", get a numeric suffix.
func (g *goEmitter) scopeTypeName(declared *cmn.IndexedSet, scope *manifest.Scope) string {
	path := strings.Join(scope.Path, "_")
	base := strcase.ToLowerCamel(path) + "Scope"
	if g.opts.Exported {
		base = strcase.ToCamel(path) + "Scope"
	}
	typeName := base
	for n := 2; declared.Contains(typeName); n++ {
		typeName = base + strconv.Itoa(n)
	}
	return typeName
}

func (g *goEmitter) comment(record *manifest.Record) {
	fmt.Fprintf(g.buf, "// From %s\n", strconv.Quote(record.FileName))
}

func (g *goEmitter) literal(record *manifest.Record) {
	fmt.Fprintf(
		g.buf, "StaticFile{\nFileName: %s,\nName: %s,\nMime: %s,\n}",
		strconv.Quote(record.FileName), strconv.Quote(record.Name), strconv.Quote(record.Mime),
	)
}

func (g *goEmitter) scopeType(scope *manifest.Scope) {
	fmt.Fprintf(g.buf, "\ntype %s struct {\n", g.typeNames[scope])
	for _, record := range scope.Records {
		g.comment(record)
		fmt.Fprintf(g.buf, "%s StaticFile\n", g.ident(record.Ident))
	}
	for _, child := range scope.Children {
		fmt.Fprintf(g.buf, "%s %s\n", g.ident(child.Name), g.typeNames[child])
	}
	g.buf.WriteString("}\n")
}

func (g *goEmitter) scopeLiteral(scope *manifest.Scope) {
	fmt.Fprintf(g.buf, "%s{\n", g.typeNames[scope])
	for _, record := range scope.Records {
		fmt.Fprintf(g.buf, "%s: ", g.ident(record.Ident))
		g.literal(record)
		g.buf.WriteString(",\n")
	}
	for _, child := range scope.Children {
		fmt.Fprintf(g.buf, "%s: ", g.ident(child.Name))
		g.scopeLiteral(child)
		g.buf.WriteString(",\n")
	}
	g.buf.WriteString("}")
}
