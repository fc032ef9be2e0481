package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/fsutil"
	"github.com/savesync/savesync/pkg/logging"
	"github.com/savesync/savesync/pkg/output"
)

// newManager creates the config manager for the configured root.
func newManager() (*config.Manager, error) {
	return config.NewManager(globalFlags.ConfigRoot)
}

// requireInitialized loads the manager and fails with a hint when the
// configuration tree has not been created yet.
func requireInitialized() (*config.Manager, *config.Config, error) {
	m, err := newManager()
	if err != nil {
		return nil, nil, err
	}
	if !m.Initialized() {
		return nil, nil, fmt.Errorf("configuration not found at %s (run 'savesync config init' first)", m.ConfigDir())
	}
	cfg, err := m.Load()
	if err != nil {
		return nil, nil, err
	}
	return m, cfg, nil
}

// createLogger creates a logger based on configuration and global flags
func createLogger(cfg *config.Config) logging.Logger {
	if globalFlags.Quiet {
		return logging.NewNull()
	}

	level := logging.ParseLevel(cfg.General.LogLevel)
	if globalFlags.Verbose {
		level = logging.DebugLevel
	}

	if cfg.General.LogFormat == "json" {
		return logging.NewJSON(os.Stderr, level)
	}
	return logging.NewText(os.Stderr, level)
}

// newFormatter creates the output formatter selected by --output
func newFormatter(w io.Writer) (output.Formatter, error) {
	return output.New(globalFlags.Output, w)
}

// resolveGames returns the games named on the command line, or every
// configured game when all is set.
func resolveGames(m *config.Manager, args []string, all bool) ([]*config.GameConfig, error) {
	if all {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine --all with game names")
		}
		games, err := m.ListGames()
		if err != nil {
			return nil, err
		}
		if len(games) == 0 {
			return nil, fmt.Errorf("no games configured (run 'savesync detect' or add one manually)")
		}
		return games, nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("specify at least one game name or use --all")
	}

	games := make([]*config.GameConfig, 0, len(args))
	for _, name := range args {
		g, err := m.LoadGame(name)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// validateGameDirs checks that the game's directories exist, creating the
// cloud directory when missing.
func validateGameDirs(g *config.GameConfig) error {
	local := g.ExpandedLocalDir()
	if !fsutil.DirExists(local) {
		return fmt.Errorf("local directory does not exist: %s", local)
	}

	cloud := g.ExpandedCloudDir()
	if !fsutil.DirExists(cloud) {
		if err := fsutil.EnsureDir(cloud); err != nil {
			return fmt.Errorf("create cloud directory %s: %w", cloud, err)
		}
	}

	localAbs, err := filepath.Abs(local)
	if err != nil {
		return fmt.Errorf("resolve local directory: %w", err)
	}
	cloudAbs, err := filepath.Abs(cloud)
	if err != nil {
		return fmt.Errorf("resolve cloud directory: %w", err)
	}
	if localAbs == cloudAbs {
		return fmt.Errorf("local and cloud directories cannot be the same: %s", localAbs)
	}
	return nil
}

// lockGame takes an exclusive lock for the named game so two invocations
// cannot modify the same save directories concurrently. The returned function
// releases the lock.
func lockGame(m *config.Manager, name string) (func(), error) {
	lockDir := filepath.Join(m.ConfigDir(), "locks")
	if err := fsutil.EnsureDir(lockDir); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(filepath.Join(lockDir, filepath.Base(m.GamePath(name))+".lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock for %s: %w", name, err)
	}
	if !locked {
		return nil, fmt.Errorf("another savesync instance is already working on %s", name)
	}
	return func() { _ = lock.Unlock() }, nil
}
