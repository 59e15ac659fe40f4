// Package config provides configuration loading and validation for the
// portfolio site generator.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidBasePath   = errors.New("base path must start and end with /")
	ErrInvalidOutputDir  = errors.New("output directory must not be empty")
	ErrInvalidDimensions = errors.New("plot size must exceed its margins")
	ErrInvalidRadius     = errors.New("dot radius range must satisfy 0 < min <= max")
	ErrInvalidHeading    = errors.New("project heading must be h1..h6")
	ErrInvalidLatest     = errors.New("latest project count must not be negative")
	ErrInvalidTimeout    = errors.New("github timeout must be positive")
	ErrInvalidLogFormat  = errors.New("log format must be text or json")
	ErrInvalidLogLevel   = errors.New("unknown log level")
)

// Config holds all configuration for the portfolio build.
type Config struct {
	Site      SiteConfig      `mapstructure:"site"`
	Meta      MetaConfig      `mapstructure:"meta"`
	Projects  ProjectsConfig  `mapstructure:"projects"`
	GitHub    GitHubConfig    `mapstructure:"github"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// SiteConfig holds the site shell settings.
type SiteConfig struct {
	Title         string   `mapstructure:"title"`
	BasePath      string   `mapstructure:"base_path"`
	OutputDir     string   `mapstructure:"output_dir"`
	AssetsDir     string   `mapstructure:"assets_dir"`
	AssetGlobs    []string `mapstructure:"asset_globs"`
	ResumePath    string   `mapstructure:"resume_path"`
	ContactAction string   `mapstructure:"contact_action"`
	GitHubURL     string   `mapstructure:"github_url"`
}

// MetaConfig holds the commit visualization settings.
type MetaConfig struct {
	LocPath         string  `mapstructure:"loc_path"`
	CommitURLPrefix string  `mapstructure:"commit_url_prefix"`
	SkipMalformed   bool    `mapstructure:"skip_malformed"`
	Width           float64 `mapstructure:"width"`
	Height          float64 `mapstructure:"height"`
	MarginTop       float64 `mapstructure:"margin_top"`
	MarginRight     float64 `mapstructure:"margin_right"`
	MarginBottom    float64 `mapstructure:"margin_bottom"`
	MarginLeft      float64 `mapstructure:"margin_left"`
	MinRadius       float64 `mapstructure:"min_radius"`
	MaxRadius       float64 `mapstructure:"max_radius"`
}

// ProjectsConfig holds the project list settings.
type ProjectsConfig struct {
	Source   string `mapstructure:"source"`
	Heading  string `mapstructure:"heading"`
	Markdown bool   `mapstructure:"markdown"`
	Latest   int    `mapstructure:"latest"`
}

// GitHubConfig holds the stats widget settings.
type GitHubConfig struct {
	User    string        `mapstructure:"user"`
	APIBase string        `mapstructure:"api_base"`
	Timeout time.Duration `mapstructure:"timeout"`
	Enabled bool          `mapstructure:"enabled"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds the OpenTelemetry exporter settings. An empty endpoint
// disables export.
type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	Insecure     bool   `mapstructure:"insecure"`
	ServiceName  string `mapstructure:"service_name"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty path searches for portfolio.yaml in the working directory.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(DefaultConfigName)
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() (*Config, error) {
	viperCfg := viper.New()
	setDefaults(viperCfg)

	var config Config

	err := viperCfg.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("site.title", DefaultSiteTitle)
	viperCfg.SetDefault("site.base_path", DefaultBasePath)
	viperCfg.SetDefault("site.output_dir", DefaultOutputDir)
	viperCfg.SetDefault("site.assets_dir", DefaultAssetsDir)
	viperCfg.SetDefault("site.asset_globs", DefaultAssetGlobs())
	viperCfg.SetDefault("site.resume_path", DefaultResumePath)
	viperCfg.SetDefault("site.contact_action", DefaultContactAction)
	viperCfg.SetDefault("site.github_url", DefaultGitHubURL)

	viperCfg.SetDefault("meta.loc_path", DefaultLocPath)
	viperCfg.SetDefault("meta.commit_url_prefix", DefaultCommitURLPrefix)
	viperCfg.SetDefault("meta.skip_malformed", false)
	viperCfg.SetDefault("meta.width", DefaultPlotWidth)
	viperCfg.SetDefault("meta.height", DefaultPlotHeight)
	viperCfg.SetDefault("meta.margin_top", DefaultMarginTop)
	viperCfg.SetDefault("meta.margin_right", DefaultMarginRight)
	viperCfg.SetDefault("meta.margin_bottom", DefaultMarginBottom)
	viperCfg.SetDefault("meta.margin_left", DefaultMarginLeft)
	viperCfg.SetDefault("meta.min_radius", DefaultMinRadius)
	viperCfg.SetDefault("meta.max_radius", DefaultMaxRadius)

	viperCfg.SetDefault("projects.source", DefaultProjectsSource)
	viperCfg.SetDefault("projects.heading", DefaultProjectsHeading)
	viperCfg.SetDefault("projects.markdown", false)
	viperCfg.SetDefault("projects.latest", DefaultLatestProjects)

	viperCfg.SetDefault("github.enabled", true)
	viperCfg.SetDefault("github.user", DefaultGitHubUser)
	viperCfg.SetDefault("github.api_base", DefaultGitHubAPI)
	viperCfg.SetDefault("github.timeout", DefaultGitHubTimeout)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")

	viperCfg.SetDefault("telemetry.otlp_endpoint", "")
	viperCfg.SetDefault("telemetry.insecure", false)
	viperCfg.SetDefault("telemetry.service_name", DefaultServiceName)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	base := c.Site.BasePath
	if !strings.HasPrefix(base, "/") || !strings.HasSuffix(base, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidBasePath, base)
	}

	if strings.TrimSpace(c.Site.OutputDir) == "" {
		return ErrInvalidOutputDir
	}

	m := c.Meta
	if m.Width <= m.MarginLeft+m.MarginRight || m.Height <= m.MarginTop+m.MarginBottom {
		return fmt.Errorf("%w: %gx%g", ErrInvalidDimensions, m.Width, m.Height)
	}

	if m.MinRadius <= 0 || m.MinRadius > m.MaxRadius {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRadius, m.MinRadius, m.MaxRadius)
	}

	switch c.Projects.Heading {
	case "h1", "h2", "h3", "h4", "h5", "h6":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHeading, c.Projects.Heading)
	}

	if c.Projects.Latest < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLatest, c.Projects.Latest)
	}

	if c.GitHub.Enabled && c.GitHub.Timeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.GitHub.Timeout)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}
