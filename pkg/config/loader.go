package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/sortdir/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "SORTDIR_"

var sections = map[string]bool{
	"organize":  true,
	"changelog": true,
	"output":    true,
}

// LoadOptions says where configuration comes from besides the defaults
type LoadOptions struct {
	// ConfigFile is loaded when it exists; a missing file is not an error
	ConfigFile string
	// Overrides are applied last, keyed like "organize.workers"
	Overrides map[string]interface{}
}

// Result carries the loaded configuration and the file it was read from
type Result struct {
	Config *Config
	// LoadedFile is empty when no config file was found
	LoadedFile string
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Result, error) {
	k := koanf.New(".")
	result := &Result{}

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err == nil {
			if err := k.Load(file.Provider(opts.ConfigFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.ConfigFile).
					WithDetail("file", opts.ConfigFile)
			}
			result.LoadedFile = opts.ConfigFile
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", opts.ConfigFile)
		}
	}

	// 3. Environment: SORTDIR_ORGANIZE_NO_EXTENSION_DIR -> organize.no_extension_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
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
			ErrorUnused:      false,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	// 6. Validate
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	result.Config = &cfg
	return result, nil
}

// Default returns the embedded defaults
func Default() *Config {
	res, err := Load(LoadOptions{})
	if err != nil {
		panic(err)
	}
	return res.Config
}

// envKey maps an environment variable to a config key. Variables that do not
// start with a known section (SORTDIR_STATE_DIR and friends) are dropped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || !sections[section] || rest == "" {
		return ""
	}
	return section + "." + rest
}
