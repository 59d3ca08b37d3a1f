// chiavi-check validates every translation-key reference in the source
// tree against the loaded catalogs. It takes no flags: the source and
// locales directories come from the environment (see internal/config).
// Exit code 1 means missing keys were found or the run failed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"chiavi/internal/catalog"
	"chiavi/internal/cli"
	"chiavi/internal/fsio"
	"chiavi/internal/log"
	"chiavi/internal/validate"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// A linter must never crash without a verdict.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "chiavi-check: unexpected error: %v\n", r)
			code = 1
		}
	}()

	cli.LoadEnvFile()
	logger := cli.SetupLogger(slog.LevelInfo)
	cfg := cli.LoadAndValidateConfig(logger)
	if level, err := cfg.SlogLevel(); err == nil && level != slog.LevelInfo {
		logger = cli.SetupLogger(level)
	}

	if _, err := os.Stat(cfg.SourceDir); err != nil {
		logger.Error("source directory not found",
			log.FieldPath, cfg.SourceDir, log.FieldError, err)
		return 1
	}

	locales := fsio.NewDir(cfg.LocalesDir)
	store := catalog.NewStore(locales, cfg.Locale)
	catalogs, err := store.LoadAll()
	if err != nil {
		logger.Error("failed to load catalogs", log.FieldError, err)
		return 1
	}

	validator := &validate.Validator{
		Source:           os.DirFS(cfg.SourceDir),
		Catalogs:         catalogs,
		DefaultNamespace: cfg.DefaultNamespace,
		Log:              logger.WithComponent(log.ComponentValidate),
	}
	result, err := validator.Run()
	if err != nil {
		logger.Error("validation run failed", log.FieldError, err)
		return 1
	}

	reporter := validate.Reporter{
		Out:        os.Stdout,
		LocalesDir: cfg.LocalesDir,
		Locale:     cfg.Locale,
	}
	reporter.Print(result)
	printCoverage(reporter, logger, locales, store.Locale(), catalogs)

	if !result.OK() {
		return 1
	}
	return 0
}

// printCoverage compares every sibling locale against the base locale.
// Gaps are warnings only; they never change the exit code.
func printCoverage(reporter validate.Reporter, logger *log.Logger, locales fsio.Dir, base string, catalogs map[catalog.Namespace]catalog.Catalog) {
	others, err := catalog.Locales(locales, base)
	if err != nil || len(others) == 0 {
		return
	}
	fmt.Fprintln(os.Stdout)
	for _, locale := range others {
		otherStore := catalog.NewStore(locales, locale)
		var covs []catalog.Coverage
		for _, ns := range catalog.All() {
			baseCat, ok := catalogs[ns]
			if !ok {
				continue
			}
			otherCat, err := otherStore.LoadOrEmpty(ns)
			if err != nil {
				logger.Warn("skipping unreadable catalog",
					log.FieldLocale, locale, log.FieldNamespace, ns, log.FieldError, err)
				continue
			}
			covs = append(covs, catalog.Compare(ns, baseCat, otherCat))
		}
		reporter.PrintCoverage(locale, covs)
	}
}
