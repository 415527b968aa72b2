package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gendry/pkg/errors"
	"github.com/arthur-debert/gendry/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
// Sections are separated by a double underscore: GENDRY_POLICY__SKIP_OVERWRITE.
const EnvPrefix = "GENDRY_"

// ProjectConfigNames are the file names searched in the project directory
var ProjectConfigNames = []string{".gendry.toml", "gendry.toml", ".gendry.yaml", "gendry.yaml"}

// Output formats accepted by the report renderers
var validFormats = map[string]bool{
	"auto": true, "term": true, "terminal": true, "text": true, "plain": true,
	"json": true, "yaml": true, "xml": true, "markdown": true, "md": true,
}

// Config is the complete gendry configuration
type Config struct {
	Policy  types.Policy `koanf:"policy"`
	Capture Capture      `koanf:"capture"`
	Output  Output       `koanf:"output"`

	// Sources lists the files that contributed, in load order
	Sources []string `koanf:"-"`
}

// Capture controls template data capturing
type Capture struct {
	Enabled  bool `koanf:"enabled"`
	ShowData bool `koanf:"show_data"`
}

// Output controls report rendering and replay
type Output struct {
	Format  string `koanf:"format"`
	Workers int    `koanf:"workers"`

	// Diff adds a content diff for file outputs that would be written
	Diff bool `koanf:"diff"`
}

// LoadOptions tells Load where to look
type LoadOptions struct {
	// ConfigFile is an explicit config path; when set project files are not searched
	ConfigFile string

	// Dir is searched for ProjectConfigNames; defaults to the working directory
	Dir string

	// Overrides are applied last, keyed like "policy.skip_overwrite"
	Overrides map[string]interface{}
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg := &Config{Output: Output{Format: "auto", Workers: 1}}
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return cfg
	}
	if err := unmarshal(k, cfg); err != nil {
		return &Config{Output: Output{Format: "auto", Workers: 1}}
	}
	cfg.Sources = []string{"defaults"}
	return cfg
}

// Load builds the configuration from defaults, a project file, the
// environment and overrides, in increasing priority.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	sources = append(sources, "defaults")

	// 2. Project or explicit config file
	path, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		sources = append(sources, path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides (CLI flags)
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := unmarshal(k, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the rest of gendry cannot act on
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = "auto"
	}
	if !validFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigValid, "unknown output format %q", c.Output.Format).
			WithDetail("field", "output.format")
	}
	if c.Output.Workers < 1 {
		return errors.Newf(errors.ErrConfigValid, "output.workers must be at least 1, got %d", c.Output.Workers).
			WithDetail("field", "output.workers")
	}
	return nil
}

func unmarshal(k *koanf.Koanf, cfg *Config) error {
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	return k.UnmarshalWithConf("", cfg, unmarshalConf)
}

// envKey maps GENDRY_POLICY__SKIP_OVERWRITE to policy.skip_overwrite
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			if os.IsNotExist(err) {
				return "", errors.Newf(errors.ErrNotFound, "config file %s not found", opts.ConfigFile).
					WithDetail("path", opts.ConfigFile)
			}
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	for _, name := range ProjectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

// String summarises the effective configuration for debug logs
func (c *Config) String() string {
	return fmt.Sprintf("skip_overwrite=%t minimal_update=%t capture=%t format=%s workers=%d diff=%t",
		c.Policy.SkipOverwrite, c.Policy.MinimalUpdate, c.Capture.Enabled, c.Output.Format, c.Output.Workers, c.Output.Diff)
}
