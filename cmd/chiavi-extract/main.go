// chiavi-extract discovers user-facing string literals in the source
// tree, synthesizes auto.* translation keys for them and merges them
// into the catalogs. Without --write the run is a dry pass; the JSON
// report is written either way.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"chiavi/internal/catalog"
	appcli "chiavi/internal/cli"
	"chiavi/internal/extract"
	"chiavi/internal/fsio"
	applog "chiavi/internal/log"
)

func main() {
	app := &cli.App{
		Name:  "chiavi-extract",
		Usage: "extract user-facing strings into the translation catalogs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "write",
				Usage: "persist catalog changes (default: dry run)",
			},
			&cli.StringFlag{
				Name:  "src",
				Usage: "override the source directory",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "override the report file path",
			},
			&cli.StringFlag{
				Name:  "namespace",
				Usage: "force all candidates into one namespace",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print per-file candidate counts",
			},
		},
		Action: runExtract,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runExtract(cctx *cli.Context) error {
	appcli.LoadEnvFile()
	logger := appcli.SetupLogger(slog.LevelInfo)
	cfg := appcli.LoadAndValidateConfig(logger)
	if level, err := cfg.SlogLevel(); err == nil && level != slog.LevelInfo {
		logger = appcli.SetupLogger(level)
	}

	if src := cctx.String("src"); src != "" {
		cfg.SourceDir = src
	}
	if report := cctx.String("report"); report != "" {
		cfg.ReportPath = report
	}

	if _, err := os.Stat(cfg.SourceDir); err != nil {
		return cli.Exit(fmt.Sprintf("source directory %q does not exist", cfg.SourceDir), 1)
	}

	opts := extract.Options{
		Write:   cctx.Bool("write"),
		Verbose: cctx.Bool("verbose"),
	}
	if name := cctx.String("namespace"); name != "" {
		ns, err := catalog.Parse(name)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		opts.ForceNamespace = ns
	}

	extractor := &extract.Extractor{
		Source:     os.DirFS(cfg.SourceDir),
		Store:      catalog.NewStore(fsio.NewDir(cfg.LocalesDir), cfg.Locale),
		Reports:    fsio.NewDir("."),
		ReportPath: cfg.ReportPath,
		Out:        os.Stdout,
		Log:        logger.WithComponent(applog.ComponentExtract),
	}

	if _, err := extractor.Run(opts); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
