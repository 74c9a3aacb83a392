// Package statics generates, at build time, a source file declaring every static asset with its original location,
// a content-addressed public path and its MIME type.
package statics

import (
	"io"
	"log/slog"

	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/manifest"
	"github.com/syntax-framework/statics/output"
	"github.com/syntax-framework/statics/render"
)

// Generator configuration of one generation
type Generator struct {
	Format   string            // artifact format, see render.Names
	Render   render.Options
	Manifest []manifest.Option // hash, prefix, filter...
	Logger   *slog.Logger
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Logger
}

// Render builds the manifest and renders the artifact in memory
func (g *Generator) Render(assetDirs []string, extraFiles []string) ([]byte, *manifest.Manifest, error) {
	timing := &cmn.Timing{}
	return g.render(timing, assetDirs, extraFiles)
}

func (g *Generator) render(timing *cmn.Timing, assetDirs []string, extraFiles []string) ([]byte, *manifest.Manifest, error) {
	renderer, err := render.Lookup(g.Format)
	if err != nil {
		return nil, nil, err
	}

	opts := append([]manifest.Option{manifest.WithLogger(g.Logger)}, g.Manifest...)
	metric := timing.Start("build", "")
	m, err := manifest.Build(assetDirs, extraFiles, opts...)
	metric.Stop()
	if err != nil {
		return nil, nil, err
	}

	metric = timing.Start("render", g.Format)
	content, err := renderer.Render(m, g.Render)
	metric.Stop()
	if err != nil {
		return nil, nil, err
	}
	return content, m, nil
}

// Generate writes the artifact describing every file of the asset directories and the extra files to dest.
//
// Nothing is written when discovery or rendering fails. When the final write fails, dest must be considered
// unusable.
func (g *Generator) Generate(dest string, assetDirs []string, extraFiles []string) error {
	timing := &cmn.Timing{}
	content, m, err := g.render(timing, assetDirs, extraFiles)
	if err != nil {
		return err
	}

	metric := timing.Start("write", "")
	changed, err := output.Write(dest, content)
	metric.Stop()
	if err != nil {
		return err
	}

	g.logger().Info("static manifest generated",
		"dest", dest,
		"records", len(m.Index),
		"changed", changed,
		"elapsed", timing.Total(),
		"timing", timing.String(),
	)
	return nil
}

// Check renders the artifact and reports an output.stale error when dest does not hold exactly the same bytes
func (g *Generator) Check(dest string, assetDirs []string, extraFiles []string) error {
	timing := &cmn.Timing{}
	content, m, err := g.render(timing, assetDirs, extraFiles)
	if err != nil {
		return err
	}
	if err = output.Check(dest, content); err != nil {
		return err
	}
	g.logger().Info("static manifest up to date", "dest", dest, "records", len(m.Index), "elapsed", timing.Total(),
		"timing", timing.String(),
	)
	return nil
}

// Generate with the default configuration: Go source, md5 digests, "/static" prefix
func Generate(dest string, assetDirs []string, extraFiles []string) error {
	return (&Generator{}).Generate(dest, assetDirs, extraFiles)
}
