// Package config loads folio settings from defaults, an optional folio.yaml
// and FOLIO_ environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	FileName  = "folio"
	EnvPrefix = "FOLIO"
)

type Titles struct {
	Home string `mapstructure:"home"`
	Blog string `mapstructure:"blog"`
	Post string `mapstructure:"post"`
}

type Server struct {
	Addr    string `mapstructure:"addr" validate:"required"`
	Metrics bool   `mapstructure:"metrics"`
}

type Config struct {
	SiteTitle   string   `mapstructure:"siteTitle" validate:"required"`
	BaseURL     string   `mapstructure:"baseURL" validate:"required,url"`
	ContentDir  string   `mapstructure:"contentDir" validate:"required"`
	OutputDir   string   `mapstructure:"outputDir" validate:"required"`
	PublicDir   string   `mapstructure:"publicDir"`
	SourceShell string   `mapstructure:"sourceShell"`
	Routes      []string `mapstructure:"routes" validate:"required,dive,startswith=/"`
	RootAliases []string `mapstructure:"rootAliases" validate:"dive,startswith=/"`
	Titles      Titles   `mapstructure:"titles"`
	SitemapURL  string   `mapstructure:"sitemapURL" validate:"omitempty,url"`
	Server      Server   `mapstructure:"server"`

	// Root is the directory relative paths are resolved against: the
	// directory of the config file, or the working directory.
	Root string `mapstructure:"-"`
	// File is the config file used, empty when none was found.
	File string `mapstructure:"-"`
}

type LoadOptions struct {
	// File is an explicit config file; it must exist.
	File string
	// Dir is searched for folio.yaml when File is empty.
	Dir string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("siteTitle", "folio")
	v.SetDefault("baseURL", "http://localhost:8080")
	v.SetDefault("contentDir", "content")
	v.SetDefault("outputDir", "dist")
	v.SetDefault("publicDir", "public")
	v.SetDefault("sourceShell", "index.html")
	v.SetDefault("routes", []string{"/", "/blog"})
	v.SetDefault("rootAliases", []string{})
	v.SetDefault("titles.home", "")
	v.SetDefault("titles.blog", "")
	v.SetDefault("titles.post", "")
	v.SetDefault("sitemapURL", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.metrics", true)
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()
	setDefaults(v)

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.AddConfigPath(dir)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.Root = dir
	if cfg.File != "" {
		cfg.Root = filepath.Dir(cfg.File)
	}
	cfg.applyTitleDefaults()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyTitleDefaults() {
	if c.Titles.Home == "" {
		c.Titles.Home = c.SiteTitle
	}
	if c.Titles.Blog == "" {
		c.Titles.Blog = "Blog | " + c.SiteTitle
	}
	if c.Titles.Post == "" {
		c.Titles.Post = "Blog Post | " + c.SiteTitle
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Path resolves p against the config root. Absolute paths and empty paths
// are returned unchanged.
func (c Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}
