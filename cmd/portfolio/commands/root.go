// Package commands implements the portfolio CLI commands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/pkg/config"
	"github.com/n3il-kb/portfolio/pkg/observability"
	"github.com/n3il-kb/portfolio/pkg/plotpage"
	"github.com/n3il-kb/portfolio/pkg/site"
	"github.com/n3il-kb/portfolio/pkg/terminal"
	"github.com/n3il-kb/portfolio/pkg/version"
)

// Globals holds the persistent root flags.
type Globals struct {
	ConfigPath string
	PrefsPath  string
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

// NewRootCommand builds the portfolio command tree.
func NewRootCommand() *cobra.Command {
	g := &Globals{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Build and explore the portfolio site",
		Long: `portfolio renders the personal site and its commit history views.

Commands:
  build     Render every page into the output directory
  meta      Print the commit visualization at a given state
  explore   Browse the commit history interactively
  projects  List, search and chart the projects
  theme     Show or set the color scheme
  contact   Print the mailto URL for a contact message
  stats     Print GitHub profile counters`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&g.ConfigPath, "config", "c", "", "config file (default ./portfolio.yaml)")
	flags.StringVar(&g.PrefsPath, "prefs", "", "preferences file (default in the user config dir)")
	flags.BoolVarP(&g.Verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&g.Quiet, "quiet", "q", false, "suppress output")
	flags.BoolVar(&g.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		NewBuildCommand(g),
		NewMetaCommand(g),
		NewExploreCommand(g),
		NewProjectsCommand(g),
		NewThemeCommand(g),
		NewContactCommand(g),
		NewStatsCommand(g),
		newVersionCommand(),
	)

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}

// env is what a command needs after startup.
type env struct {
	cfg       *config.Config
	providers observability.Providers
	term      terminal.Config
}

func (e *env) close(ctx context.Context) {
	if e.providers.Shutdown == nil {
		return
	}

	err := e.providers.Shutdown(ctx)
	if err != nil {
		e.providers.Logger.WarnContext(ctx, "telemetry shutdown failed", "error", err)
	}
}

// setup loads the configuration and initializes telemetry for mode.
func (g *Globals) setup(cmd *cobra.Command, mode observability.AppMode) (*env, error) {
	cfg, err := config.LoadConfig(g.ConfigPath)
	if err != nil {
		return nil, err
	}

	level, err := observability.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	switch {
	case g.Verbose:
		level = slog.LevelDebug
	case g.Quiet:
		level = slog.LevelError
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceName = cfg.Telemetry.ServiceName
	obsCfg.ServiceVersion = version.Get().Version
	obsCfg.Mode = mode
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPInsecure = cfg.Telemetry.Insecure
	obsCfg.LogLevel = level
	obsCfg.LogJSON = cfg.Logging.Format == "json"
	obsCfg.LogOutput = cmd.ErrOrStderr()

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	term := terminal.NewConfig()
	if g.NoColor {
		term.NoColor = true
	}

	return &env{cfg: cfg, providers: providers, term: term}, nil
}

func (g *Globals) prefsPath() (string, error) {
	if g.PrefsPath != "" {
		return g.PrefsPath, nil
	}

	return site.DefaultPreferencesPath()
}

// preferences loads the stored preferences. A store that cannot be located
// falls back to the defaults.
func (g *Globals) preferences(logger *slog.Logger) site.Preferences {
	fallback := site.Preferences{ColorScheme: plotpage.ThemeAuto}

	path, err := g.prefsPath()
	if err != nil {
		logger.Warn("preferences unavailable", "error", err)

		return fallback
	}

	prefs, err := site.LoadPreferences(path)
	if err != nil {
		logger.Warn("ignoring preferences", "path", path, "error", err)

		return fallback
	}

	return prefs
}

var errUsage = errors.New("invalid usage")
