package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-accessor/codegen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cli.MainContext(ctx, MainCommand(ctx))
}

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("accessor-gen").
		WithSynopsis("accessor-gen [opts]").
		WithDescription("Generate member accessors for structs marked with //accessor:generate and a RegisterAccessors function per package.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(ctx, cfg, cc, args)
		})
}

type Config struct {
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	Filter     string `cli:"name=filter desc='expression selecting the types to generate, e.g. Arity == 0'"`
	Init       bool   `cli:"name=init desc='emit an init function registering with accessor.Default()'"`
	Check      bool   `cli:"name=check desc='do not write, fail if generated files are out of date'"`
	ConfigFile string `cli:"name=config desc='config file (default: <dir>/accessor-gen.yaml if present)'"`
	NoColor    bool   `cli:"name=no-color desc='do not color diagnostics'"`
	Verbose    bool   `cli:"name=v desc='verbose logging'"`
}

func run(ctx context.Context, cfg *Config, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	log := newLogger(cc.Out, cfg.Verbose)

	dir := cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	genCfg, err := cfg.codegenConfig(dir)
	if err != nil {
		return err
	}

	packages, err := codegen.DiscoverPackages(dir, cfg.Recursive, nil)
	if err != nil {
		return fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(packages) == 0 {
		return fmt.Errorf("no Go packages found in %q", dir)
	}

	p := newPrinter(os.Stderr, cfg.NoColor)
	return codegen.Generate(ctx, packages, genCfg, func(res *codegen.Result, diffs map[string]string) {
		log.Debug("processed package", "package", res.Package.Path, "types", len(res.Types), "closed", len(res.Closed))
		p.diagnostics(res.Diagnostics)
		if cfg.Check {
			p.diffs(res, diffs)
			return
		}
		for _, name := range res.FileNames() {
			log.Info("wrote", "file", relPath(dir, res.Package.Dir, name))
		}
		for _, name := range res.Stale {
			log.Info("removed", "file", relPath(dir, res.Package.Dir, name))
		}
	})
}

func (cfg *Config) codegenConfig(dir string) (*codegen.CodegenConfig, error) {
	filter, err := codegen.CompileFilter(cfg.Filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res := &codegen.CodegenConfig{
		Init:   cfg.Init,
		Check:  cfg.Check,
		Filter: filter,
	}
	fc, err := codegen.LoadFileConfig(cfg.ConfigFile, dir)
	if err != nil {
		return nil, err
	}
	if err := fc.Apply(res); err != nil {
		return nil, err
	}
	return res, nil
}
