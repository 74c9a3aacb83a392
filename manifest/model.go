package manifest

import (
	"github.com/syntax-framework/statics/naming"
)

// Record a static file discovered during generation
type Record struct {
	Ident    string   // sanitized file base name, unique within its scope
	FileName string   // canonical absolute location at generation time
	Name     string   // cache-busted public path
	Mime     string
	Hash     string   // hex digest of the content
	Size     int64
	Scope    []string // namespace path of the declaring scope, empty for flat root records
}

// Ref the qualified reference of the record in the flat index
func (r *Record) Ref() Ref {
	return Ref{Scopes: r.Scope, Ident: r.Ident}
}

// Ref a qualified reference to a record
type Ref struct {
	Scopes []string
	Ident  string
}

// String the reference with the scope segments joined by "::", e.g. "vendor::script_js"
func (r Ref) String() string {
	return naming.Qualify(r.Scopes, r.Ident)
}

// Scope a namespace mirroring one directory level
type Scope struct {
	Name     string   // sanitized directory base name, empty for the root
	Path     []string // namespace path from the root, including Name
	Records  []*Record
	Children []*Scope
	parent   *Scope
	rel      string            // relative directory mirrored by the scope, "/" separated
	names    map[string]string // identifier -> path that declared it
}

func newScope(parent *Scope, name string) *Scope {
	s := &Scope{Name: name, parent: parent, names: map[string]string{}}
	if parent != nil {
		s.Path = append(append([]string{}, parent.Path...), name)
	}
	return s
}

// Child find a child scope by name
func (s *Scope) Child(name string) *Scope {
	for _, child := range s.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Parent the enclosing scope, nil for the root
func (s *Scope) Parent() *Scope {
	return s.parent
}

// IsRoot checks if this is the flat root scope
func (s *Scope) IsRoot() bool {
	return s.parent == nil
}

// Walk visits this scope and all nested scopes in pre-order
func (s *Scope) Walk(visit func(scope *Scope)) {
	visit(s)
	for _, child := range s.Children {
		child.Walk(visit)
	}
}

// Manifest the discovered static files, organized as a namespace tree and as a flat index in emission order
type Manifest struct {
	Root   *Scope    // records and scopes found in the asset directories
	Extras []*Record // extra files, always declared unqualified next to the Root records
	Index  []*Record // every record, in emission order
}

// Get find a record by its public path, nil if absent. First match wins.
func (m *Manifest) Get(name string) *Record {
	for _, record := range m.Index {
		if record.Name == name {
			return record
		}
	}
	return nil
}

// Refs the qualified references of the flat index
func (m *Manifest) Refs() []Ref {
	refs := make([]Ref, len(m.Index))
	for i, record := range m.Index {
		refs[i] = record.Ref()
	}
	return refs
}
