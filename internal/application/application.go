package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/satellitewp/rocket-parser/internal/config"
	"github.com/satellitewp/rocket-parser/internal/profile"
	"github.com/satellitewp/rocket-parser/internal/render"
	"github.com/satellitewp/rocket-parser/internal/storage"
)

// App encapsulates the generator dependencies.
type App struct {
	cfg     config.Config
	loader  *profile.Loader
	storage storage.Storage
	logger  *zap.Logger
}

// Option configures an App.
type Option func(*App)

// WithStorage replaces the file-backed output storage (primarily for tests).
func WithStorage(store storage.Storage) Option {
	return func(a *App) {
		a.storage = store
	}
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	app := &App{
		cfg:     cfg,
		loader:  profile.NewLoader(logger),
		storage: storage.NewFileStorage(cfg.OutputDir, cfg.DirMode),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run performs a full generation pass. It returns a *PreconditionError when
// an input file is missing; per-profile failures are reported in the Summary.
func (a *App) Run() (Summary, error) {
	if err := checkPresence(a.cfg.ConfigFile, ErrConfigMissing); err != nil {
		return Summary{}, err
	}
	if err := checkPresence(a.cfg.TemplateFile, ErrTemplateMissing); err != nil {
		return Summary{}, err
	}

	profiles, err := a.loadProfiles()
	if err != nil {
		return Summary{}, err
	}

	tmpl, err := render.LoadTemplate(a.cfg.TemplateFile)
	if err != nil {
		if errors.Is(err, render.ErrTemplateMissing) {
			return Summary{}, &PreconditionError{Path: a.cfg.TemplateFile, Err: ErrTemplateMissing, Cause: err}
		}
		return Summary{}, fmt.Errorf("load template: %w", err)
	}

	renderer := render.New(tmpl, render.WithIncludeRoot(a.cfg.IncludeRoot))

	var summary Summary
	for _, name := range profiles.Names() {
		settings, _ := profiles.Get(name)

		if !isPlainName(name) {
			a.logger.Warn("profile name is not a plain directory name, output may land outside the output directory",
				zap.String("profile", name),
				zap.String("output", a.cfg.OutputDir))
		}

		output, err := renderer.Render(name, settings)
		if err != nil {
			a.logger.Error("cannot render profile", zap.String("profile", name), zap.Error(err))
			summary.fail(name, err)
			continue
		}

		path, err := a.storage.Write(name, output)
		if err != nil {
			fields := []zap.Field{zap.String("profile", name), zap.Error(err)}
			var writeErr *storage.WriteError
			if errors.As(err, &writeErr) {
				fields = append(fields, zap.String("path", writeErr.Path), zap.String("op", writeErr.Op))
			}
			a.logger.Error("cannot write profile configuration", fields...)
			summary.fail(name, err)
			continue
		}

		a.logger.Debug("profile configuration written", zap.String("profile", name), zap.String("path", path))
		summary.Written = append(summary.Written, name)
	}

	a.logger.Info("generation complete",
		zap.Int("written", len(summary.Written)),
		zap.Int("failed", len(summary.Failed)),
	)

	return summary, nil
}

func (a *App) loadProfiles() (*profile.Set, error) {
	profiles, err := a.loader.Load(a.cfg.ConfigFile)
	if err != nil {
		if errors.Is(err, profile.ErrConfigMissing) {
			return nil, &PreconditionError{Path: a.cfg.ConfigFile, Err: ErrConfigMissing, Cause: err}
		}
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	a.logger.Debug("profiles loaded", zap.Int("count", profiles.Len()), zap.Strings("names", profiles.Names()))
	return profiles, nil
}

// isPlainName reports whether name stays a single path element when joined
// under the output directory.
func isPlainName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsRune(name, '/') && !strings.ContainsRune(name, filepath.Separator)
}

// checkPresence reports a missing input file as a *PreconditionError.
func checkPresence(path string, missing error) error {
	if _, err := os.Stat(path); err != nil {
		return &PreconditionError{Path: path, Err: missing, Cause: err}
	}
	return nil
}
