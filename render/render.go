// Package render serializes a manifest into the generated artifact.
//
// Every format declares the same three-field record type (original location, public path, MIME), one declaration
// per record nested in scopes that mirror the asset directories, a lookup by public path, a display function that
// renders the public path, and the flat index of every record in emission order.
package render

import (
	"sort"
	"strings"

	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/manifest"
)

// DefaultFormat used when no format is informed
const DefaultFormat = "go"

var errorUnknown = cmn.Err(
	"render.unknown",
	"Unknown output format.", "Format: %q", "Supported: %s",
)

var errorInvalid = cmn.Err(
	"render.invalid",
	"The generated artifact is invalid.", "Format: %s", "Caused by: %s",
)

var errorIdentifier = cmn.Err(
	"render.identifier",
	"The identifier can not be declared in this format.", "Format: %s", "Identifier: %s", "Reason: %s",
)

// Options customizes the rendered artifact
type Options struct {
	Package   string // Go package name, "statics" by default
	Exported  bool   // Go: exported CamelCase identifiers, JS: lowerCamelCase identifiers
	Generator string // tool name written in the "Code generated" header, "staticgen" by default
}

func (o Options) withDefaults() Options {
	if strings.TrimSpace(o.Package) == "" {
		o.Package = "statics"
	}
	if strings.TrimSpace(o.Generator) == "" {
		o.Generator = "staticgen"
	}
	return o
}

// Renderer serializes a manifest
type Renderer interface {
	Render(m *manifest.Manifest, opts Options) ([]byte, error)
}

// RendererFunc adapts a function to the Renderer interface
type RendererFunc func(m *manifest.Manifest, opts Options) ([]byte, error)

func (f RendererFunc) Render(m *manifest.Manifest, opts Options) ([]byte, error) {
	return f(m, opts.withDefaults())
}

var renderers = map[string]Renderer{}

// Register a renderer under the format name, replacing any previous one
func Register(format string, renderer Renderer) {
	renderers[strings.ToLower(format)] = renderer
}

// Lookup the renderer of a format. The empty format resolves to DefaultFormat.
func Lookup(format string) (Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = DefaultFormat
	}
	renderer, exists := renderers[format]
	if !exists {
		return nil, errorUnknown(format, strings.Join(Names(), ", "))
	}
	return renderer, nil
}

// Names of the registered formats, sorted
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// topLevel every record declared unqualified, asset directory records first, then extra files
func topLevel(m *manifest.Manifest) []*manifest.Record {
	records := make([]*manifest.Record, 0, len(m.Root.Records)+len(m.Extras))
	records = append(records, m.Root.Records...)
	return append(records, m.Extras...)
}

func init() {
	Register("go", RendererFunc(renderGo))
	Register("rust", RendererFunc(renderRust))
	Register("js", RendererFunc(renderJs))
	Register("json", RendererFunc(renderJson))
	Register("html", RendererFunc(renderHtml))
}
