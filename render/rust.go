package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/syntax-framework/statics/manifest"
)

const rustPrelude = `#[derive(Debug)]
pub struct StaticFile {
    pub file_name: &'static str,
    pub name: &'static str,
    pub mime: &'static str,
}
`

const rustAccessors = `
#[allow(dead_code)]
impl StaticFile {
    /// Get a single ` + "`StaticFile`" + ` by name, if it exists.
    #[must_use]
    pub fn get(name: &str) -> Option<&'static Self> {
        if let Some(pos) = STATICS.iter().position(|&s| name == s.name) {
            Some(STATICS[pos])
        } else {
            None
        }
    }
}

impl std::fmt::Display for StaticFile {
    fn fmt(&self, f: &mut std::fmt::Formatter<'_>) -> std::fmt::Result {
        write!(f, "{}", self.name)
    }
}
`

var rustKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "const": true, "continue": true, "crate": true,
	"dyn": true, "else": true, "enum": true, "extern": true, "false": true, "fn": true, "for": true, "if": true,
	"impl": true, "in": true, "let": true, "loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true, "static": true, "struct": true,
	"super": true, "trait": true, "true": true, "type": true, "unsafe": true, "use": true, "where": true,
	"while": true, "abstract": true, "become": true, "box": true, "do": true, "final": true, "macro": true,
	"override": true, "priv": true, "typeof": true, "unsized": true, "virtual": true, "yield": true, "try": true,
	"_": true,
}

var rustEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func renderRust(m *manifest.Manifest, opts Options) ([]byte, error) {
	var err error
	m.Root.Walk(func(scope *manifest.Scope) {
		for _, name := range scopeNames(scope) {
			if err == nil && rustKeywords[name] {
				err = errorIdentifier("rust", name, "reserved keyword")
			}
		}
	})
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	buf.WriteString(rustPrelude)

	for _, record := range m.Root.Records {
		rustRecord(buf, record, 0)
	}
	for _, child := range m.Root.Children {
		rustScope(buf, child, 0)
	}
	for _, record := range m.Extras {
		rustRecord(buf, record, 0)
	}

	buf.WriteString(rustAccessors)

	buf.WriteString("\npub static STATICS: &[&StaticFile] = &[")
	for i, record := range m.Index {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n    &")
		buf.WriteString(record.Ref().String())
	}
	buf.WriteString("\n];\n")
	return buf.Bytes(), nil
}

func rustScope(buf *bytes.Buffer, scope *manifest.Scope, level int) {
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(buf, "\n%spub mod %s {\n", indent, scope.Name)
	fmt.Fprintf(buf, "%s    use super::StaticFile;\n", indent)
	for _, record := range scope.Records {
		rustRecord(buf, record, level+1)
	}
	for _, child := range scope.Children {
		rustScope(buf, child, level+1)
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func rustRecord(buf *bytes.Buffer, record *manifest.Record, level int) {
	indent := strings.Repeat("    ", level)
	fileName := rustEscaper.Replace(record.FileName)
	fmt.Fprintf(buf, "\n%s/// From \"%s\"\n", indent, fileName)
	fmt.Fprintf(buf, "%s#[allow(non_upper_case_globals)]\n", indent)
	fmt.Fprintf(buf, "%spub static %s: StaticFile = StaticFile {\n", indent, record.Ident)
	fmt.Fprintf(buf, "%s    file_name: \"%s\",\n", indent, fileName)
	fmt.Fprintf(buf, "%s    name: \"%s\",\n", indent, rustEscaper.Replace(record.Name))
	fmt.Fprintf(buf, "%s    mime: \"%s\",\n", indent, record.Mime)
	fmt.Fprintf(buf, "%s};\n", indent)
}

// scopeNames identifiers declared directly inside the scope
func scopeNames(scope *manifest.Scope) []string {
	names := make([]string, 0, len(scope.Records)+len(scope.Children))
	for _, record := range scope.Records {
		names = append(names, record.Ident)
	}
	for _, child := range scope.Children {
		names = append(names, child.Name)
	}
	return names
}
