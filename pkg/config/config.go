// Package config loads gameshelf settings from defaults, an optional YAML
// file, GAMESHELF_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GAMESHELF"

// DefaultRecipient receives feedback unless feedback.recipient overrides it.
const DefaultRecipient = "dogisamoose.amazon@gmail.com"

type Settings struct {
	Catalog struct {
		Location string `mapstructure:"location"` // URL or path of the games document
	} `mapstructure:"catalog"`

	Feedback struct {
		Recipient string `mapstructure:"recipient"`
		Subject   string `mapstructure:"subject"`
		Style     string `mapstructure:"style"` // glamour style for the panel copy
	} `mapstructure:"feedback"`

	Downloads struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"downloads"`

	Thumbnails struct {
		Enabled bool `mapstructure:"enabled"`
		Width   int  `mapstructure:"width"`
		MaxRows int  `mapstructure:"maxrows"`
	} `mapstructure:"thumbnails"`

	Log struct {
		File  string `mapstructure:"file"`
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// New returns a viper instance with defaults, config paths and env binding
// set up. Flags can be bound onto it before Load.
func New(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		for _, path := range DefaultConfigPaths() {
			v.AddConfigPath(path)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if one exists and unmarshals the result.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	settings.Downloads.Dir = expandHome(settings.Downloads.Dir)
	settings.Log.File = expandHome(settings.Log.File)

	if err := Validate(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}
	return settings, nil
}

func Validate(s *Settings) error {
	var errs []error
	if strings.TrimSpace(s.Catalog.Location) == "" {
		errs = append(errs, errors.New("catalog.location must not be empty"))
	}
	if strings.TrimSpace(s.Feedback.Recipient) == "" {
		errs = append(errs, errors.New("feedback.recipient must not be empty"))
	}
	if strings.TrimSpace(s.Feedback.Subject) == "" {
		errs = append(errs, errors.New("feedback.subject must not be empty"))
	}
	if s.Thumbnails.Width < 0 || s.Thumbnails.MaxRows < 0 {
		errs = append(errs, errors.New("thumbnail dimensions must not be negative"))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.location", "games.json")
	v.SetDefault("feedback.recipient", DefaultRecipient)
	v.SetDefault("feedback.subject", "Feedback")
	v.SetDefault("feedback.style", "dark")
	v.SetDefault("downloads.dir", filepath.Join("~", "Downloads"))
	v.SetDefault("thumbnails.enabled", true)
	v.SetDefault("thumbnails.width", 24)
	v.SetDefault("thumbnails.maxrows", 12)
	v.SetDefault("log.file", defaultLogFile())
	v.SetDefault("log.level", "info")
}

// DefaultConfigPaths lists the directories searched for config.yaml.
func DefaultConfigPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "gameshelf"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gameshelf"))
	}
	return append(paths, ".")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "gameshelf.log"
	}
	return filepath.Join(dir, "gameshelf", "gameshelf.log")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}
