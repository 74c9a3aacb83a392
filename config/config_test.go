package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/manifest"
	"github.com/tdewolff/test"
)

func testConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "statics.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func Test_Load(t *testing.T) {
	path := testConfigFile(t, `
output: gen/statics_gen.go
format: rust
package: web
exported: true
prefix: /assets
hash: xxh64
hash_length: 12
dirs:
  - static
  - /abs/static
files:
  - favicon.ico
exclude: hidden
follow_symlinks: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Dir(path)

	test.String(t, cfg.Output, filepath.Join(base, "gen", "statics_gen.go"))
	test.String(t, cfg.Format, "rust")
	test.String(t, cfg.Package, "web")
	test.That(t, cfg.Exported, "exported")
	test.String(t, *cfg.Prefix, "/assets")
	test.String(t, cfg.Hash, "xxh64")
	test.That(t, cfg.HashLength == 12, "hash_length")
	test.String(t, cfg.Dirs[0], filepath.Join(base, "static"))
	test.String(t, cfg.Dirs[1], "/abs/static")
	test.String(t, cfg.Files[0], filepath.Join(base, "favicon.ico"))
	test.String(t, cfg.Exclude, "hidden")
	test.That(t, cfg.FollowSymlinks, "follow_symlinks")

	if err = cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.ManifestOptions()
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, len(opts) == 5, "manifest options", len(opts))

	renderOpts := cfg.RenderOptions()
	test.String(t, renderOpts.Package, "web")
	test.That(t, renderOpts.Exported, "render exported")
}

func Test_Load_Empty_File(t *testing.T) {
	cfg, err := Load(testConfigFile(t, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, cfg.Prefix == nil, "prefix not set")
	err = cfg.Validate()
	test.That(t, cmn.IsCode(err, "config.invalid"), "output is required", err)
}

func Test_Load_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.That(t, cmn.IsCode(err, "config.read"), "missing file", err)

	_, err = Load(testConfigFile(t, "output: a.go\nunknown: 1\n"))
	test.That(t, cmn.IsCode(err, "config.parse"), "unknown field", err)

	_, err = Load(testConfigFile(t, "dirs: [unterminated\n"))
	test.That(t, cmn.IsCode(err, "config.parse"), "malformed yaml", err)
}

func Test_Validate(t *testing.T) {
	var tests = []struct {
		name string
		cfg  Config
	}{
		{"no inputs", Config{Output: "a.go"}},
		{"unknown format", Config{Output: "a.go", Dirs: []string{"static"}, Format: "xml"}},
		{"unknown hash", Config{Output: "a.go", Dirs: []string{"static"}, Hash: "crc32"}},
		{"negative hash length", Config{Output: "a.go", Dirs: []string{"static"}, HashLength: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			test.That(t, cmn.IsCode(err, "config.invalid"), "Validate() | expect config.invalid", err)
		})
	}
}

func Test_ManifestOptions_Applied(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{"app.js": "app", ".hidden.js": "hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	prefix := "cdn"
	cfg := &Config{Prefix: &prefix, HashLength: 4, Exclude: "hidden"}
	opts, err := cfg.ManifestOptions()
	if err != nil {
		t.Fatal(err)
	}
	m, err := manifest.Build([]string{dir}, nil, opts...)
	if err != nil {
		t.Fatal(err)
	}
	test.That(t, len(m.Index) == 1, "hidden file must be excluded", len(m.Index))
	test.String(t, m.Index[0].Name[:9], "/cdn/app-")
	test.That(t, len(m.Index[0].Hash) == 4, "hash length")

	cfg.Exclude = "name =="
	_, err = cfg.ManifestOptions()
	test.That(t, cmn.IsCode(err, "config.invalid") && cmn.IsCode(err, "filter.compile"), "invalid exclude", err)
}
