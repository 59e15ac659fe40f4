package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/n3il-kb/portfolio/pkg/commits"
	"github.com/n3il-kb/portfolio/pkg/commitviz"
	"github.com/n3il-kb/portfolio/pkg/config"
	"github.com/n3il-kb/portfolio/pkg/ghstats"
	"github.com/n3il-kb/portfolio/pkg/loclog"
	"github.com/n3il-kb/portfolio/pkg/observability"
	"github.com/n3il-kb/portfolio/pkg/plotpage"
	"github.com/n3il-kb/portfolio/pkg/projects"
)

const (
	indexFile = "index.html"

	sourceLoc      = "loc"
	sourceProjects = "projects"
	sourceGitHub   = "github"
)

// ErrNoConfig is returned when a builder has no configuration.
var ErrNoConfig = errors.New("site builder has no configuration")

// StatsFetcher fetches GitHub counters.
type StatsFetcher interface {
	Fetch(ctx context.Context, user string) (ghstats.Stats, error)
}

// ProjectLoader loads the project list from a path or URL.
type ProjectLoader interface {
	Load(ctx context.Context, src string) ([]projects.Project, error)
}

// Data is everything the pages are rendered from. Each source fails
// independently.
type Data struct {
	Records     []loclog.LineRecord
	Commits     []*commits.Commit
	LocErr      error
	Projects    []projects.Project
	ProjectsErr error
	Stats       ghstats.Stats
	StatsErr    error
}

// Report summarizes a build.
type Report struct {
	Pages  []string
	Assets int
}

// Builder renders the static site.
type Builder struct {
	Config   *config.Config
	Prefs    Preferences
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  *observability.SiteMetrics
	Stats    StatsFetcher
	Projects ProjectLoader
}

// NewBuilder returns a builder with a GitHub client and project loader
// derived from cfg.
func NewBuilder(cfg *config.Config, prefs Preferences, logger *slog.Logger) *Builder {
	return &Builder{
		Config:   cfg,
		Prefs:    prefs,
		Logger:   logger,
		Stats:    ghstats.NewClient(cfg.GitHub.APIBase, cfg.GitHub.Timeout),
		Projects: projects.Loader{},
	}
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return b.Logger
}

func (b *Builder) tracer() trace.Tracer {
	if b.Tracer == nil {
		return nooptrace.NewTracerProvider().Tracer("site")
	}

	return b.Tracer
}

// Shell returns the shared page settings.
func (b *Builder) Shell() Shell {
	return Shell{
		SiteName: b.Config.Site.Title,
		BasePath: b.Config.Site.BasePath,
		Theme:    b.Prefs.ColorScheme,
		Links:    DefaultLinks(b.Config.Site.GitHubURL),
	}
}

// Load reads the line log, the project list and the GitHub counters
// concurrently and waits for all three.
func (b *Builder) Load(ctx context.Context) Data {
	var (
		data Data
		wg   sync.WaitGroup
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		data.Records, data.Commits, data.LocErr = b.loadLog(ctx)
	}()

	wg.Add(1)

	go func() {
		defer wg.Done()

		data.Projects, data.ProjectsErr = b.loadProjects(ctx)
	}()

	if b.Config.GitHub.Enabled {
		wg.Add(1)

		go func() {
			defer wg.Done()

			data.Stats, data.StatsErr = b.loadStats(ctx)
		}()
	}

	wg.Wait()

	return data
}

func (b *Builder) track(ctx context.Context, source string, fn func(ctx context.Context) (int, error)) error {
	ctx, span := b.tracer().Start(ctx, "site.load."+source)
	defer span.End()

	start := time.Now()
	n, err := fn(ctx)
	elapsed := time.Since(start)

	b.Metrics.RecordLoad(ctx, source, n, elapsed, err)
	span.SetAttributes(attribute.Int("records", n))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		b.logger().WarnContext(ctx, "data source unavailable", "source", source, "error", err)

		return err
	}

	b.logger().DebugContext(ctx, "data source loaded", "source", source, "records", n, "elapsed", elapsed)

	return nil
}

func (b *Builder) loadLog(ctx context.Context) ([]loclog.LineRecord, []*commits.Commit, error) {
	var res loclog.Result

	err := b.track(ctx, sourceLoc, func(context.Context) (int, error) {
		var readErr error

		res, readErr = loclog.ReadFile(b.Config.Meta.LocPath, loclog.Options{
			Lenient: b.Config.Meta.SkipMalformed,
			Logger:  b.logger(),
		})

		return len(res.Records), readErr
	})
	if err != nil {
		return nil, nil, err
	}

	return res.Records, commits.Aggregate(res.Records, b.Config.Meta.CommitURLPrefix), nil
}

func (b *Builder) loadProjects(ctx context.Context) ([]projects.Project, error) {
	var list []projects.Project

	err := b.track(ctx, sourceProjects, func(ctx context.Context) (int, error) {
		var loadErr error

		list, loadErr = b.Projects.Load(ctx, b.Config.Projects.Source)

		return len(list), loadErr
	})

	return list, err
}

func (b *Builder) loadStats(ctx context.Context) (ghstats.Stats, error) {
	var stats ghstats.Stats

	err := b.track(ctx, sourceGitHub, func(ctx context.Context) (int, error) {
		var fetchErr error

		stats, fetchErr = b.Stats.Fetch(ctx, b.Config.GitHub.User)
		if fetchErr != nil {
			return 0, fetchErr
		}

		return 1, nil
	})

	return stats, err
}

// StoreOptions returns the commit plot layout from the configuration.
func StoreOptions(m config.MetaConfig) commitviz.Options {
	return commitviz.Options{
		Layout: commitviz.Layout{
			Width:  m.Width,
			Height: m.Height,
			Margin: commitviz.Margin{
				Top:    m.MarginTop,
				Right:  m.MarginRight,
				Bottom: m.MarginBottom,
				Left:   m.MarginLeft,
			},
		},
		Radius: [2]float64{m.MinRadius, m.MaxRadius},
	}
}

// CardOptions returns the card settings from the configuration.
func CardOptions(p config.ProjectsConfig) projects.CardOptions {
	return projects.CardOptions{Heading: p.Heading, Markdown: p.Markdown}
}

// Build loads every source, writes all pages under the output directory and
// copies the assets.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	if b.Config == nil {
		return Report{}, ErrNoConfig
	}

	ctx, span := b.tracer().Start(ctx, "site.build")
	defer span.End()

	data := b.Load(ctx)
	sh := b.Shell()
	cfg := b.Config
	cards := CardOptions(cfg.Projects)

	var (
		store    *commitviz.Store
		explorer *projects.Explorer
	)

	if data.LocErr == nil {
		store = commitviz.NewStore(data.Records, data.Commits, StoreOptions(cfg.Meta))
	}

	if data.ProjectsErr == nil {
		explorer = projects.NewExplorer(data.Projects)
	}

	radius := [2]float64{cfg.Meta.MinRadius, cfg.Meta.MaxRadius}

	builds := []struct {
		name string
		path string
		make func() (*plotpage.Page, error)
	}{
		{"home", HomePath, func() (*plotpage.Page, error) {
			return HomePage(sh, HomeInput{
				Latest:      projects.Latest(data.Projects, cfg.Projects.Latest),
				ProjectsErr: data.ProjectsErr,
				Cards:       cards,
				ShowStats:   cfg.GitHub.Enabled,
				Stats:       data.Stats,
				StatsErr:    data.StatsErr,
			})
		}},
		{"projects", ProjectsPath, func() (*plotpage.Page, error) { return ProjectsPage(sh, explorer, cards) }},
		{"meta", MetaPath, func() (*plotpage.Page, error) { return MetaPage(sh, store, radius) }},
		{"contact", ContactPath, func() (*plotpage.Page, error) { return ContactPage(sh, cfg.Site.ContactAction) }},
		{"resume", ResumePath, func() (*plotpage.Page, error) { return ResumePage(sh, cfg.Site.ResumePath) }},
	}

	var report Report

	for _, pb := range builds {
		page, err := pb.make()
		if err != nil {
			span.RecordError(err)

			return report, fmt.Errorf("build %s page: %w", pb.name, err)
		}

		out := filepath.Join(cfg.Site.OutputDir, filepath.FromSlash(pb.path), indexFile)

		err = b.writePage(ctx, pb.name, out, page)
		if err != nil {
			return report, err
		}

		report.Pages = append(report.Pages, out)
	}

	copied, err := CopyAssets(cfg.Site.AssetsDir, cfg.Site.OutputDir, cfg.Site.AssetGlobs)
	if err != nil {
		return report, err
	}

	report.Assets = copied

	b.logger().InfoContext(ctx, "site built",
		"output", cfg.Site.OutputDir, "pages", len(report.Pages), "assets", copied)

	return report, nil
}

func (b *Builder) writePage(ctx context.Context, name, path string, page *plotpage.Page) error {
	_, span := b.tracer().Start(ctx, "site.render."+name)
	defer span.End()

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	err = errors.Join(page.Render(f), f.Close())
	if err != nil {
		span.RecordError(err)

		return fmt.Errorf("write %s: %w", path, err)
	}

	b.Metrics.RecordPage(ctx, name)

	return nil
}
