// Package config loads the staticgen configuration file.
//
// Relative paths in the file are resolved against the directory of the file, so a config checked into a
// repository works from any working directory.
//
//	output: internal/web/statics_gen.go
//	format: go
//	package: web
//	dirs: [web/static]
//	files: [web/favicon.ico]
//	exclude: hidden || ext == "map"
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/digest"
	"github.com/syntax-framework/statics/filter"
	"github.com/syntax-framework/statics/manifest"
	"github.com/syntax-framework/statics/render"
	"gopkg.in/yaml.v3"
)

var errorRead = cmn.Err(
	"config.read",
	"Could not read the config file.", "Path: %s", "Caused by: %s",
)

var errorParse = cmn.Err(
	"config.parse",
	"Malformed config file.", "Path: %s", "Caused by: %s",
)

var errorInvalid = cmn.Err(
	"config.invalid",
	"Invalid configuration.", "Field: %s", "Reason: %s",
)

// Config every setting of one generation
type Config struct {
	Output         string   `yaml:"output"`
	Format         string   `yaml:"format"`
	Package        string   `yaml:"package"`
	Exported       bool     `yaml:"exported"`
	Prefix         *string  `yaml:"prefix"`
	Hash           string   `yaml:"hash"`
	HashLength     int      `yaml:"hash_length"`
	Dirs           []string `yaml:"dirs"`
	Files          []string `yaml:"files"`
	Exclude        string   `yaml:"exclude"`
	FollowSymlinks bool     `yaml:"follow_symlinks"`
}

// Load reads a config file. Unknown fields are rejected.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errorRead(path, err)
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err = decoder.Decode(cfg); err != nil && len(bytes.TrimSpace(content)) > 0 {
		return nil, errorParse(path, err)
	}

	base := filepath.Dir(path)
	cfg.Output = resolve(base, cfg.Output)
	for i, dir := range cfg.Dirs {
		cfg.Dirs[i] = resolve(base, dir)
	}
	for i, file := range cfg.Files {
		cfg.Files[i] = resolve(base, file)
	}
	return cfg, nil
}

func resolve(base string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Validate checks the configuration can run a generation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return errorInvalid("output", "the destination path is required")
	}
	if len(c.Dirs) == 0 && len(c.Files) == 0 {
		return errorInvalid("dirs", "at least one asset directory or extra file is required")
	}
	if _, err := render.Lookup(c.Format); err != nil {
		return errorInvalid("format", err)
	}
	if _, err := digest.Parse(c.Hash); err != nil {
		return errorInvalid("hash", err)
	}
	if c.HashLength < 0 {
		return errorInvalid("hash_length", "must not be negative")
	}
	return nil
}

// ManifestOptions the manifest options equivalent to this configuration
func (c *Config) ManifestOptions() ([]manifest.Option, error) {
	algorithm, err := digest.Parse(c.Hash)
	if err != nil {
		return nil, errorInvalid("hash", err)
	}
	exclude, err := filter.Compile(c.Exclude)
	if err != nil {
		return nil, errorInvalid("exclude", err)
	}

	opts := []manifest.Option{
		manifest.WithHash(algorithm),
		manifest.WithHashLength(c.HashLength),
		manifest.WithFilter(exclude),
		manifest.WithFollowSymlinks(c.FollowSymlinks),
	}
	if c.Prefix != nil {
		opts = append(opts, manifest.WithPrefix(*c.Prefix))
	}
	return opts, nil
}

// RenderOptions the render options equivalent to this configuration
func (c *Config) RenderOptions() render.Options {
	return render.Options{Package: c.Package, Exported: c.Exported}
}
