package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/syntax-framework/statics/cmn"
	"github.com/tdewolff/test"
)

func testAssets(t *testing.T) string {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"static/root.css":         "root file",
		"static/vendor/script.js": "nested file",
		"static/LICENSE":          "license",
	} {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func Test_Run_Flags(t *testing.T) {
	dir := testAssets(t)
	out := filepath.Join(dir, "gen", "statics_gen.go")

	err := run([]string{
		"-o", out, "--package", "web", "-d", filepath.Join(dir, "static"), "--exclude", `name == "LICENSE"`, "-q",
	})
	if err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	generated := string(content)
	test.That(t, strings.Contains(generated, "package web\n"), "package name")
	test.That(t, strings.Contains(generated, "\t&root_css,\n\t&vendor.script_js,\n}"), "flat index", generated)

	err = run([]string{"-o", out, "--package", "web", "-d", filepath.Join(dir, "static"), "--exclude", `name == "LICENSE"`, "--check", "-q"})
	if err != nil {
		t.Fatal(err)
	}
}

func Test_Run_Config_File_With_Overrides(t *testing.T) {
	dir := testAssets(t)
	configPath := filepath.Join(dir, "statics.yaml")
	configContent := "output: out/static_gen.rs\nformat: rust\ndirs: [static]\nexclude: 'name == \"LICENSE\"'\n"
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{"-c", configPath, "--prefix", "/assets", "-q"}); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(filepath.Join(dir, "out", "static_gen.rs"))
	if err != nil {
		t.Fatal(err)
	}
	generated := string(content)
	test.That(t, strings.Contains(generated, "pub mod vendor {"), "rust scope")
	test.That(t, strings.Contains(generated, `name: "/assets/vendor/script-`), "prefix override")
	test.That(t, strings.Contains(generated, "&vendor::script_js"), "flat index")
}

func Test_Run_Errors(t *testing.T) {
	dir := testAssets(t)

	err := run([]string{"-d", filepath.Join(dir, "static")})
	test.That(t, cmn.IsCode(err, "config.invalid"), "output is required", err)

	err = run([]string{"-o", filepath.Join(dir, "a.go"), "-d", filepath.Join(dir, "static"), "-q"})
	test.That(t, cmn.IsCode(err, "naming.extension"), "LICENSE is walked without exclude", err)

	err = run([]string{"-o", filepath.Join(dir, "b.go"), "-d", filepath.Join(dir, "static"), "--exclude", `name == "LICENSE"`, "--check", "-q"})
	test.That(t, cmn.IsCode(err, "output.stale"), "check without artifact", err)

	err = run([]string{"unexpected"})
	test.That(t, err != nil, "positional argument")

	test.That(t, run([]string{"--help"}) == nil, "help")
}
