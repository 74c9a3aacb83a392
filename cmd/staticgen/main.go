// staticgen writes the static asset manifest of a project: a generated source file declaring, for every asset,
// its original location, its cache-busted public path and its MIME type.
//
// Settings come from an optional YAML config file (--config); flags override the file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/syntax-framework/statics"
	"github.com/syntax-framework/statics/cmn"
	"github.com/syntax-framework/statics/config"
	"github.com/syntax-framework/statics/digest"
	"github.com/syntax-framework/statics/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if cmn.IsCode(err, "output.stale") {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath string
	var check, verbose, quiet bool
	cfg := &config.Config{}
	var prefix string

	flagSet := pflag.NewFlagSet("staticgen", pflag.ContinueOnError)
	flagSet.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flagSet.StringVarP(&cfg.Output, "output", "o", "", "destination of the generated artifact")
	flagSet.StringVarP(&cfg.Format, "format", "f", "", "artifact format: "+strings.Join(render.Names(), ", ")+" (default "+render.DefaultFormat+")")
	flagSet.StringVar(&cfg.Package, "package", "", "Go package name of the generated file (default statics)")
	flagSet.BoolVar(&cfg.Exported, "exported", false, "declare exported camel case identifiers")
	flagSet.StringVar(&prefix, "prefix", "", "public path prefix (default /static)")
	flagSet.StringVar(&cfg.Hash, "hash", "", "content hash: "+joinAlgorithms()+" (default md5)")
	flagSet.IntVar(&cfg.HashLength, "hash-length", 0, "hex digits of the hash kept in public paths, 0 keeps all")
	flagSet.StringArrayVarP(&cfg.Dirs, "dir", "d", nil, "asset directory, repeatable")
	flagSet.StringArrayVar(&cfg.Files, "file", nil, "extra file declared unqualified, repeatable")
	flagSet.StringVar(&cfg.Exclude, "exclude", "", "expression excluding walked entries, e.g. 'hidden || ext == \"map\"'")
	flagSet.BoolVar(&cfg.FollowSymlinks, "follow-symlinks", false, "accept symbolic links to regular files")
	flagSet.BoolVar(&check, "check", false, "verify the artifact is up to date without writing it (exit status 3 when stale)")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every scope and record")
	flagSet.BoolVarP(&quiet, "quiet", "q", false, "log warnings and errors only")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	if flagSet.Changed("prefix") {
		cfg.Prefix = &prefix
	}

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = merge(fileCfg, cfg, flagSet)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	manifestOpts, err := cfg.ManifestOptions()
	if err != nil {
		return err
	}
	generator := &statics.Generator{
		Format:   cfg.Format,
		Render:   cfg.RenderOptions(),
		Manifest: manifestOpts,
		Logger:   logger,
	}

	if check {
		return generator.Check(cfg.Output, cfg.Dirs, cfg.Files)
	}
	return generator.Generate(cfg.Output, cfg.Dirs, cfg.Files)
}

// merge applies the flags explicitly set on the command line over the config file
func merge(file *config.Config, flags *config.Config, flagSet *pflag.FlagSet) *config.Config {
	merged := *file
	if flagSet.Changed("output") {
		merged.Output = flags.Output
	}
	if flagSet.Changed("format") {
		merged.Format = flags.Format
	}
	if flagSet.Changed("package") {
		merged.Package = flags.Package
	}
	if flagSet.Changed("exported") {
		merged.Exported = flags.Exported
	}
	if flagSet.Changed("prefix") {
		merged.Prefix = flags.Prefix
	}
	if flagSet.Changed("hash") {
		merged.Hash = flags.Hash
	}
	if flagSet.Changed("hash-length") {
		merged.HashLength = flags.HashLength
	}
	if flagSet.Changed("dir") {
		merged.Dirs = flags.Dirs
	}
	if flagSet.Changed("file") {
		merged.Files = flags.Files
	}
	if flagSet.Changed("exclude") {
		merged.Exclude = flags.Exclude
	}
	if flagSet.Changed("follow-symlinks") {
		merged.FollowSymlinks = flags.FollowSymlinks
	}
	return &merged
}

func joinAlgorithms() string {
	names := make([]string, 0, 4)
	for _, algorithm := range digest.Algorithms() {
		names = append(names, string(algorithm))
	}
	return strings.Join(names, ", ")
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `staticgen declares every static asset in a generated source file.

Each file found in the asset directories gets a record with its original
location, a public path embedding a hash of its content, and its MIME type.
Subdirectories become nested namespaces; every record is also listed in a
flat index that supports lookup by public path.

Usage:
  staticgen [flags]

Examples:
  # Go source for package web, from one asset directory and a favicon
  staticgen -o internal/web/statics_gen.go --package web -d web/static --file web/favicon.ico

  # Settings from a config file, failing when the artifact is out of date
  staticgen -c statics.yaml --check

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
