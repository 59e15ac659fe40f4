package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/n3il-kb/portfolio/internal/explorer"
	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/config"
	"github.com/n3il-kb/portfolio/pkg/loclog"
	"github.com/n3il-kb/portfolio/pkg/observability"
	"github.com/n3il-kb/portfolio/pkg/site"
	"github.com/n3il-kb/portfolio/pkg/terminal"
)

const brushCoords = 4

type metaOptions struct {
	loc           string
	skipMalformed bool
	progress      float64
	brush         string
	hover         string
	html          string
	svg           bool
}

func (o *metaOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.loc, "loc", "", "line log CSV (overrides meta.loc_path)")
	flags.BoolVar(&o.skipMalformed, "skip-malformed", false, "skip malformed rows instead of failing")
}

// NewMetaCommand creates the commit visualization snapshot command.
func NewMetaCommand(g *Globals) *cobra.Command {
	opts := &metaOptions{}

	cmd := &cobra.Command{
		Use:   "meta",
		Short: "Print the commit visualization at a given state",
		Long: `Print the summary, language and file breakdowns of the commit history.

The slider, brush and hover are set by flags; --brush takes plot pixel
coordinates of two corners as x0,y0,x1,y1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMeta(cmd, g, opts)
		},
	}

	opts.bind(cmd)

	flags := cmd.Flags()
	flags.Float64Var(&opts.progress, "progress", commitviz.MaxProgress, "time slider position, 0 to 100")
	flags.StringVar(&opts.brush, "brush", "", "brush rectangle x0,y0,x1,y1")
	flags.StringVar(&opts.hover, "hover", "", "commit id to hover")
	flags.StringVar(&opts.html, "html", "", "write the meta page to this file instead of text")
	flags.BoolVar(&opts.svg, "svg", false, "print only the scatter plot SVG")

	return cmd
}

// NewExploreCommand creates the interactive commit explorer.
func NewExploreCommand(g *Globals) *cobra.Command {
	opts := &metaOptions{}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse the commit history interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.setup(cmd, observability.ModeTUI)
			if err != nil {
				return err
			}
			defer e.close(cmd.Context())

			store, err := loadStore(e, opts)
			if err != nil {
				return err
			}

			return explorer.RunMeta(store, e.term)
		},
	}

	opts.bind(cmd)

	return cmd
}

func loadStore(e *env, opts *metaOptions) (*commitviz.Store, error) {
	m := e.cfg.Meta
	if opts.loc != "" {
		m.LocPath = opts.loc
	}

	res, err := loclog.ReadFile(m.LocPath, loclog.Options{
		Lenient: m.SkipMalformed || opts.skipMalformed,
		Logger:  e.providers.Logger,
	})
	if err != nil {
		return nil, err
	}

	all := commits.Aggregate(res.Records, m.CommitURLPrefix)

	return commitviz.NewStore(res.Records, all, site.StoreOptions(m)), nil
}

// ParseBrush parses "x0,y0,x1,y1" into the rectangle corners.
func ParseBrush(s string) (commitviz.Point, commitviz.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != brushCoords {
		return commitviz.Point{}, commitviz.Point{}, fmt.Errorf("%w: brush needs x0,y0,x1,y1, got %q", errUsage, s)
	}

	var v [brushCoords]float64

	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return commitviz.Point{}, commitviz.Point{}, fmt.Errorf("%w: brush coordinate %q: %w", errUsage, p, err)
		}

		v[i] = f
	}

	return commitviz.Point{X: v[0], Y: v[1]}, commitviz.Point{X: v[2], Y: v[3]}, nil
}

func runMeta(cmd *cobra.Command, g *Globals, opts *metaOptions) error {
	e, err := g.setup(cmd, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer e.close(cmd.Context())

	store, err := loadStore(e, opts)
	if err != nil {
		return err
	}

	store.SetProgress(opts.progress)

	if opts.brush != "" {
		a, b, brushErr := ParseBrush(opts.brush)
		if brushErr != nil {
			return brushErr
		}

		store.Brush(a, b)
	}

	if opts.hover != "" {
		if dot, ok := store.Scatter().Dot(opts.hover); ok {
			store.Hover(opts.hover, commitviz.Point{X: dot.CX, Y: dot.CY})
		} else {
			e.providers.Logger.Warn("hovered commit is not visible", "commit", opts.hover)
		}
	}

	out := cmd.OutOrStdout()

	switch {
	case opts.svg:
		return store.RenderSVG(out)
	case opts.html != "":
		return writeMetaHTML(e, g, store, opts.html)
	default:
		return terminal.WriteMeta(out, e.term, store)
	}
}

func writeMetaHTML(e *env, g *Globals, store *commitviz.Store, path string) error {
	b := site.NewBuilder(e.cfg, g.preferences(e.providers.Logger), e.providers.Logger)

	page, err := site.MetaPage(b.Shell(), store, radiusOf(e.cfg.Meta))
	if err != nil {
		return err
	}

	return writeHTML(path, page.Render)
}

func radiusOf(m config.MetaConfig) [2]float64 {
	return [2]float64{m.MinRadius, m.MaxRadius}
}

func writeHTML(path string, render func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	renderErr := render(f)
	closeErr := f.Close()

	if renderErr != nil {
		return renderErr
	}

	return closeErr
}
