package config

import "time"

// File lookup.
const (
	DefaultConfigName = "portfolio"
	EnvPrefix         = "PORTFOLIO"
)

// Site defaults.
const (
	DefaultSiteTitle     = "Neil's Portfolio"
	DefaultBasePath      = "/"
	DefaultOutputDir     = "_site"
	DefaultAssetsDir     = "assets"
	DefaultResumePath    = "resume.md"
	DefaultContactAction = "mailto:nbango@ucsd.edu"
	DefaultGitHubURL     = "https://github.com/N3il-kb"
)

// DefaultAssetGlobs returns the asset patterns copied into the output.
func DefaultAssetGlobs() []string {
	return []string{"**/*.css", "**/*.png", "**/*.jpg", "**/*.svg", "**/*.pdf"}
}

// Commit visualization defaults.
const (
	DefaultLocPath         = "meta/loc.csv"
	DefaultCommitURLPrefix = "https://github.com/N3il-kb/portfolio/commit/"
	DefaultPlotWidth       = 1000
	DefaultPlotHeight      = 600
	DefaultMarginTop       = 10
	DefaultMarginRight     = 10
	DefaultMarginBottom    = 30
	DefaultMarginLeft      = 20
	DefaultMinRadius       = 2
	DefaultMaxRadius       = 30
)

// Project list defaults.
const (
	DefaultProjectsSource  = "lib/projects.json"
	DefaultProjectsHeading = "h2"
	DefaultLatestProjects  = 3
)

// GitHub widget defaults.
const (
	DefaultGitHubUser    = "N3il-kb"
	DefaultGitHubAPI     = "https://api.github.com"
	DefaultGitHubTimeout = 10 * time.Second
)

// DefaultServiceName is the OpenTelemetry service name.
const DefaultServiceName = "portfolio"
