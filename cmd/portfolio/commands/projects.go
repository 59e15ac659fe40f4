package commands

import (
	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/internal/explorer"
	"github.com/n3il-kb/portfolio/pkg/observability"
	"github.com/n3il-kb/portfolio/pkg/projects"
	"github.com/n3il-kb/portfolio/pkg/site"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

type projectsOptions struct {
	source      string
	query       string
	year        string
	interactive bool
	html        string
	cards       bool
}

// NewProjectsCommand creates the projects command.
func NewProjectsCommand(g *Globals) *cobra.Command {
	opts := &projectsOptions{}

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List, search and chart the projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProjects(cmd, g, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "source", "", "project list path or URL (overrides projects.source)")
	flags.StringVar(&opts.query, "query", "", "search query")
	flags.StringVar(&opts.year, "year", "", "selected pie year")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "search and toggle years interactively")
	flags.StringVar(&opts.html, "html", "", "write the projects page to this file instead of text")
	flags.BoolVar(&opts.cards, "cards", false, "print only the card markup")

	return cmd
}

func runProjects(cmd *cobra.Command, g *Globals, opts *projectsOptions) error {
	mode := observability.ModeCLI
	if opts.interactive {
		mode = observability.ModeTUI
	}

	e, err := g.setup(cmd, mode)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	defer e.close(ctx)

	src := e.cfg.Projects.Source
	if opts.source != "" {
		src = opts.source
	}

	list, err := projects.Load(ctx, src)
	if err != nil {
		return err
	}

	ex := projects.NewExplorer(list)
	ex.SetQuery(opts.query)

	if opts.year != "" {
		ex.ToggleYear(projects.Year(opts.year))
	}

	cardOpts := site.CardOptions(e.cfg.Projects)

	switch {
	case opts.interactive:
		return explorer.RunProjects(ex, e.term)
	case opts.cards:
		return projects.RenderCards(cmd.OutOrStdout(), ex.Visible(), cardOpts)
	case opts.html != "":
		b := site.NewBuilder(e.cfg, g.preferences(e.providers.Logger), e.providers.Logger)

		page, pageErr := site.ProjectsPage(b.Shell(), ex, cardOpts)
		if pageErr != nil {
			return pageErr
		}

		return writeHTML(opts.html, page.Render)
	default:
		return terminal.WriteProjects(cmd.OutOrStdout(), e.term, ex)
	}
}
