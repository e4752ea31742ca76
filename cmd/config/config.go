package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	coreconfig "github.com/mattsolo1/grove-core/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-pagesort/pkg/models"
)

// flagKeys maps persistent flags to their configuration keys.
var flagKeys = map[string]string{
	"locale":          "locale",
	"numeric":         "numeric",
	"sticky-segments": "sticky_segments",
	"format":          "format",
	"workspace":       "index.workspace",
}

// AddGlobalFlags registers the flags every subcommand shares. The config
// flag is only added when the root command does not already provide one.
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	if flags.Lookup("config") == nil {
		flags.String("config", "", "config file (default is $HOME/.config/pagesort/config.yaml)")
	}
	if flags.Lookup("verbose") == nil {
		flags.BoolP("verbose", "v", false, "Enable debug logging")
	}
	flags.String("locale", "", "Collation locale as a BCP 47 tag (e.g. en, de, sv)")
	flags.Bool("numeric", false, "Order digit runs by numeric value")
	flags.Bool("sticky-segments", false, "Let sticky headers split segments like dividers")
	flags.String("format", "", "Output format: text or json")
	flags.StringP("workspace", "W", "", "Only read pages of this workspace from a search index")
}

// Load reads configuration for cmd. Precedence, lowest first: built-in
// defaults, the "pagesort" section of grove.yml, the config file,
// PAGESORT_* environment variables, then flags.
func Load(cmd *cobra.Command, logger *logrus.Logger) (*models.SortConfig, error) {
	v := viper.New()

	if cfgFile := flagString(cmd, "config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".config", "pagesort"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAGESORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := groveDefaults(logger)
	v.SetDefault("locale", defaults.Locale)
	v.SetDefault("numeric", defaults.Numeric)
	v.SetDefault("sticky_segments", defaults.StickySegments)
	v.SetDefault("format", string(defaults.Format))
	v.SetDefault("index.workspace", defaults.Index.Workspace)

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logger.Debug("no pagesort config file found, using defaults")
	} else {
		logger.WithField("file", v.ConfigFileUsed()).Debug("loaded config")
	}

	var cfg models.SortConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// groveDefaults overlays the "pagesort" extension of the grove config on
// the built-in defaults.
func groveDefaults(logger *logrus.Logger) models.SortConfig {
	defaults := models.DefaultSortConfig()

	coreCfg, err := coreconfig.LoadDefault()
	if err != nil {
		logger.Debugf("could not load grove config, using built-in defaults: %v", err)
		return defaults
	}

	var ext models.SortConfig
	if err := coreCfg.UnmarshalExtension("pagesort", &ext); err != nil {
		logger.Debugf("ignoring pagesort section of grove config: %v", err)
		return defaults
	}

	if ext.Locale != "" {
		defaults.Locale = ext.Locale
	}
	if ext.Format != "" {
		defaults.Format = ext.Format
	}
	if ext.Index.Workspace != "" {
		defaults.Index.Workspace = ext.Index.Workspace
	}
	defaults.Numeric = defaults.Numeric || ext.Numeric
	defaults.StickySegments = defaults.StickySegments || ext.StickySegments
	return defaults
}

func flagString(cmd *cobra.Command, name string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

// Verbose reports whether debug logging was requested.
func Verbose(cmd *cobra.Command) bool {
	return flagString(cmd, "verbose") == "true"
}
