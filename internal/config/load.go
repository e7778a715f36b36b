package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"resource-naming/internal/inflect"
)

// EnvPrefix prefixes environment variables, e.g. RESNAME_NAMING_LOCALE.
const EnvPrefix = "RESNAME"

// Load loads configuration from multiple sources with the following precedence:
// 1. Command line flags
// 2. Environment variables
// 3. Config file
// 4. Default values
//
// args are the command line arguments without the program name. Positional
// arguments are returned in Config.Args.
func Load(args []string) (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Flags ---
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// --- Config file ---
	cfgPath, _ := fs.GetString("config")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName("resource-naming")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/resource-naming/")
		v.AddConfigPath("$HOME/.resource-naming")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgPath != "" {
			return nil, fmt.Errorf("failed to read config file %q: %w", cfgPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Canonical keys: dot + snake_case
	// Env vars: RESNAME_NAMING_LOCALE
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags binding (highest priority) ---
	bindChangedFlagsToViper(fs, v)

	// --- Unmarshal (strict) ---
	var cfg Config
	if err := v.UnmarshalExact(
		&cfg,
		viper.DecodeHook(
			mapstructure.ComposeDecodeHookFunc(
				stringToStringMapHookFunc(",", "="),
			),
		),
	); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Args = fs.Args()
	cfg.ShowVersion, _ = fs.GetBool("version")
	return &cfg, nil
}

// bindChangedFlagsToViper copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlagsToViper(fs *pflag.FlagSet, v *viper.Viper) {
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "version" {
			return
		}

		switch f.Value.Type() {
		case "string":
			val, _ := fs.GetString(f.Name)
			v.Set(f.Name, val)
		case "bool":
			val, _ := fs.GetBool(f.Name)
			v.Set(f.Name, val)
		case "stringToString":
			val, _ := fs.GetStringToString(f.Name)
			v.Set(f.Name, val)
		default:
			v.Set(f.Name, f.Value.String())
		}
	})
}

// newFlagSet defines all command line flags using canonical snake_case keys.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("resource-naming", pflag.ContinueOnError)

	fs.String("config", "", "Path to config file (yaml, json or toml)")
	fs.Bool("version", false, "Print version and exit")

	// Naming flags
	fs.String("naming.locale", "", "Locale of the pluralization rules (e.g. en, en-US)")
	fs.StringToString("naming.plural_overrides", nil, "Custom plurals as singular=plural pairs")
	fs.StringToString("naming.singular_overrides", nil, "Custom singulars as plural=singular pairs")

	// Output flags
	fs.String("output.format", "", "Output format (text, json)")
	fs.Bool("output.quote_reserved", false, "Quote derived names that are SQL reserved words")
	fs.String("output.quote_style", "", "Identifier quote style (backtick, double)")

	// Logging flags
	fs.String("logging.level", "", "Log level (debug, info, warn, error)")
	fs.String("logging.format", "", "Log format (text, json)")

	return fs
}

func setDefaults(v *viper.Viper) {
	// Naming defaults
	v.SetDefault("naming.locale", inflect.DefaultLocale)
	v.SetDefault("naming.plural_overrides", map[string]string{})
	v.SetDefault("naming.singular_overrides", map[string]string{})

	// Output defaults
	v.SetDefault("output.format", "text")
	v.SetDefault("output.quote_reserved", false)
	v.SetDefault("output.quote_style", "backtick")

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

// stringToStringMapHookFunc decodes "a=b,c=d" (as set through environment
// variables) into a map.
func stringToStringMapHookFunc(sep, kvSep string) mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(map[string]string{}) {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		out := map[string]string{}
		if raw == "" {
			return out, nil
		}

		for _, pair := range strings.Split(raw, sep) {
			key, value, ok := strings.Cut(pair, kvSep)
			if !ok {
				return nil, fmt.Errorf("invalid key=value pair %q", strings.TrimSpace(pair))
			}
			out[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		return out, nil
	}
}
