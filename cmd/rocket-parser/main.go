package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/satellitewp/rocket-parser/internal/application"
	"github.com/satellitewp/rocket-parser/internal/config"
	"github.com/satellitewp/rocket-parser/internal/logging"
)

var newLogger = logging.New

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("rocket-parser", "Rocket-Parser - generates Rocket-Nginx cache configuration for every profile in rocket-nginx.ini")
	kingpinApp.UsageWriter(stderr).ErrorWriter(stderr)
	configFile := kingpinApp.Flag("config", "Path to the INI profile configuration").String()
	templateFile := kingpinApp.Flag("template", "Path to the Nginx configuration template").String()
	outputDir := kingpinApp.Flag("output", "Directory receiving the generated <profile>/<profile>.conf files").String()
	verbose := kingpinApp.Flag("verbose", "Log every generated file").Bool()
	dump := kingpinApp.Flag("dump", "Print the merged profiles as YAML instead of generating files").Bool()

	if _, err := kingpinApp.Parse(args); err != nil {
		fmt.Fprintf(stderr, "rocket-parser: %v\n", err)
		return 2
	}

	overrides := &config.CLIOverrides{
		Verbose: *verbose,
		Dump:    *dump,
	}

	if *configFile != "" {
		overrides.ConfigFile = configFile
	}

	if *templateFile != "" {
		overrides.TemplateFile = templateFile
	}

	if *outputDir != "" {
		overrides.OutputDir = outputDir
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load configuration: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger)

	if cfg.Dump {
		if err := app.Dump(stdout); err != nil {
			return fail(stderr, logger, err)
		}
		return 0
	}

	summary, err := app.Run()
	if err != nil {
		return fail(stderr, logger, err)
	}

	if err := summary.Err(); err != nil {
		logger.Warn("some profiles were not generated",
			zap.Strings("profiles", summary.Failed),
			zap.Error(err),
		)
	}

	return 0
}

// fail prints the guidance of a precondition failure, or logs any other error.
func fail(stderr io.Writer, logger *zap.Logger, err error) int {
	var precondition *application.PreconditionError
	if errors.As(err, &precondition) {
		fmt.Fprintln(stderr, precondition.Guidance())
		return 1
	}

	logger.Error("generation failed", zap.Error(err))
	return 1
}
