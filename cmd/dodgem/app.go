package main

import (
	"io"
	"os"

	"github.com/dbr/dodgem/internal/config"
	internalErrors "github.com/dbr/dodgem/internal/errors"
	"github.com/dbr/dodgem/internal/git"
	"github.com/dbr/dodgem/internal/logger"
	"github.com/dbr/dodgem/internal/patch"
	ver "github.com/dbr/dodgem/internal/version"
)

// Result summarizes a completed (or dry) bump.
type Result struct {
	Tag        string // tag name the previous version came from
	OldVersion string
	NewVersion string
	File       string // path of the patched file
}

// AppOptions contains app configuration and dependencies
type AppOptions struct {
	// Required
	Config *config.Config

	// Optional components
	Logger logger.Logger

	// I/O dependencies
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	Exit     func(code int)
	Discover func(path string, log logger.Logger) (*git.Repository, error)
}

// App is the main dodgem application
type App struct {
	Config *config.Config
	Logger logger.Logger

	// I/O streams
	Stdout io.Writer
	Stderr io.Writer

	// System dependencies
	exit     func(code int)
	discover func(path string, log logger.Logger) (*git.Repository, error)
}

// NewDefaultApp creates an App with standard dependencies
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo

	return NewApp(AppOptions{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
	})
}

// NewApp creates an App with custom dependencies
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:   opts.Config,
		Logger:   opts.Logger,
		Stdout:   opts.Stdout,
		Stderr:   opts.Stderr,
		exit:     opts.Exit,
		discover: opts.Discover,
	}

	// Set defaults for nil dependencies
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.discover == nil {
		app.discover = git.Discover
	}

	return app
}

// Initialize validates configuration and sets up components not provided
// during construction
func (a *App) Initialize() error {
	if err := a.Config.Finalize(); err != nil {
		if internalErrors.Is(err, internalErrors.ErrInvalidConfiguration) {
			return err
		}
		return internalErrors.Wrap(internalErrors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Config.Verbose, a.Stdout, a.Stderr)
	}

	return nil
}

// Run executes the bump pipeline: discover the repository, validate branch
// and cleanliness, locate the most recent tagged ancestor of HEAD, compute
// the next version, and patch the version file. Each step's failure aborts
// the run; the file write only happens after everything else succeeded.
func (a *App) Run() (Result, error) {
	var res Result

	kind, err := ver.ParseKind(a.Config.Bump)
	if err != nil {
		return res, internalErrors.NewConfigError("type", a.Config.Bump, err)
	}

	repo, err := a.discover(a.Config.RepoPath, a.Logger)
	if err != nil {
		return res, err
	}

	if err := repo.EnsureBranch(a.Config.Branch); err != nil {
		return res, err
	}

	if a.Config.AllowDirty {
		a.Logger.Warning("Skipping working tree cleanliness check")
	} else if err := repo.EnsureClean(); err != nil {
		return res, err
	}

	idx, err := repo.TagIndex()
	if err != nil {
		return res, err
	}

	_, tag, err := repo.LatestTaggedCommit(idx)
	if err != nil {
		return res, err
	}
	res.Tag = tag

	current, err := ver.ParseTag(tag)
	if err != nil {
		return res, err
	}

	next, err := ver.Bump(current, kind)
	if err != nil {
		return res, err
	}
	res.OldVersion = ver.String(current)
	res.NewVersion = ver.String(next)

	workdir, err := repo.Workdir()
	if err != nil {
		return res, err
	}
	res.File = a.Config.VersionFile

	patcher := patch.New(a.Logger)
	if a.Config.DryRun {
		if err := patcher.Check(workdir, a.Config.VersionFile); err != nil {
			return res, err
		}
		a.Logger.StatusMessage("Dry run: would update %s from %s to %s",
			a.Config.VersionFile, res.OldVersion, res.NewVersion)
		return res, nil
	}

	if err := patcher.Apply(workdir, a.Config.VersionFile, res.OldVersion, res.NewVersion); err != nil {
		return res, err
	}

	a.Logger.Success("Bumped %s version %s → %s (%s)", a.Config.VersionFile, res.OldVersion, res.NewVersion, kind)
	return res, nil
}
