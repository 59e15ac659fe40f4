package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/pkg/observability"
	"github.com/n3il-kb/portfolio/pkg/plotpage"
	"github.com/n3il-kb/portfolio/pkg/site"
)

type buildOptions struct {
	output  string
	base    string
	local   bool
	theme   string
	offline bool
}

// NewBuildCommand creates the static site build command.
func NewBuildCommand(g *Globals) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page into the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, g, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output directory (overrides site.output_dir)")
	flags.StringVar(&opts.base, "base", "", "base path for internal links (overrides site.base_path)")
	flags.BoolVar(&opts.local, "local", false, "build for local preview under /")
	flags.StringVar(&opts.theme, "theme", "", "color scheme for this build: light dark, light or dark")
	flags.BoolVar(&opts.offline, "offline", false, "skip the GitHub stats fetch")

	return cmd
}

func runBuild(cmd *cobra.Command, g *Globals, opts *buildOptions) error {
	e, err := g.setup(cmd, observability.ModeBuild)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	defer e.close(ctx)

	cfg := e.cfg

	if opts.output != "" {
		cfg.Site.OutputDir = opts.output
	}

	switch {
	case opts.local:
		cfg.Site.BasePath = "/"
	case opts.base != "":
		cfg.Site.BasePath = site.NormalizeBase(opts.base)
	}

	if opts.offline {
		cfg.GitHub.Enabled = false
	}

	prefs := g.preferences(e.providers.Logger)

	if opts.theme != "" {
		prefs.ColorScheme, err = plotpage.ParseTheme(opts.theme)
		if err != nil {
			return err
		}
	}

	b := site.NewBuilder(cfg, prefs, e.providers.Logger)
	b.Tracer = e.providers.Tracer
	b.Metrics = e.providers.Metrics

	report, err := b.Build(ctx)
	if err != nil {
		return err
	}

	if g.Quiet {
		return nil
	}

	pal := e.term.Palette()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s %d pages, %d assets -> %s\n",
		pal.OK("built"), len(report.Pages), report.Assets, cfg.Site.OutputDir)

	for _, p := range report.Pages {
		fmt.Fprintln(out, "  "+pal.Muted(p))
	}

	return nil
}
