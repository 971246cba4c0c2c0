package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// FileName is the per-project configuration file.
const FileName = "bkgen.toml"

// YAMLFileName is read instead of FileName when only it exists.
const YAMLFileName = "bkgen.yaml"

// EnvPrefix prefixes configuration environment variables.
const EnvPrefix = "BKGEN_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the complete generator configuration.
type Config struct {
	Toolsets  []string  `koanf:"toolsets"`
	OutputDir string    `koanf:"output_dir"`
	Verify    bool      `koanf:"verify"`
	GNU       GNUConfig `koanf:"gnu"`
	VS        VSConfig  `koanf:"vs"`
}

// GNUConfig configures the makefile toolset.
type GNUConfig struct {
	Makefile string `koanf:"makefile"`
}

// VSConfig configures the Visual Studio toolset.
type VSConfig struct {
	Configurations []string `koanf:"configurations"`
	Platform       string   `koanf:"platform"`
	SolutionFolder string   `koanf:"solution_folder"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// DefaultContent returns the embedded defaults, used by `bkgen config`.
func DefaultContent() string {
	return string(defaultConfig)
}

// Load builds the configuration for the project rooted at projectDir.
func Load(projectDir string) (*Config, error) {
	return LoadWithOverrides(projectDir, nil)
}

// LoadWithOverrides is Load with a final layer of flat keys, such as
// "output_dir", taken from command line flags.
func LoadWithOverrides(projectDir string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project config if it exists
	path, parser, err := projectFile(projectDir)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Command line
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// projectFile finds the configuration file in dir, preferring TOML. An empty
// path means there is none.
func projectFile(dir string) (string, koanf.Parser, error) {
	candidates := []struct {
		name   string
		parser koanf.Parser
	}{
		{FileName, toml.Parser()},
		{YAMLFileName, yaml.Parser()},
	}
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		_, err := os.Stat(path)
		if err == nil {
			return path, c.parser, nil
		}
		if !os.IsNotExist(err) {
			return "", nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot stat %s", path)
		}
	}
	return "", nil, nil
}

// envKey maps BKGEN_VS__SOLUTION_FOLDER to vs.solution_folder.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// Validate checks settings that would otherwise fail deep inside a writer.
func (c *Config) Validate() error {
	if len(c.Toolsets) == 0 {
		return errors.New(errors.ErrConfigValid, "at least one toolset must be configured")
	}
	if c.VS.Platform == "" {
		return errors.New(errors.ErrConfigValid, "vs.platform must not be empty")
	}
	if len(c.VS.Configurations) == 0 {
		return errors.New(errors.ErrConfigValid, "vs.configurations must not be empty")
	}
	if c.GNU.Makefile == "" {
		return errors.New(errors.ErrConfigValid, "gnu.makefile must not be empty")
	}
	return nil
}
