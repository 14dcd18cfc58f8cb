// Package config resolves settings with viper. Precedence, highest first:
// command-line flags, NOTATION_* environment variables, the optional config
// file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/notation/constants"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Settings struct {
	Output  OutputSettings  `mapstructure:"output"`
	Server  ServerSettings  `mapstructure:"server"`
	Log     LogSettings     `mapstructure:"log"`
	Archive ArchiveSettings `mapstructure:"archive"`
}

type OutputSettings struct {
	Scale        string `mapstructure:"scale"`
	Progressions string `mapstructure:"progressions"`
	Midi         bool   `mapstructure:"midi"`
}

type ServerSettings struct {
	Addr string `mapstructure:"addr"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ArchiveSettings configures the DynamoDB mirror; an empty Table disables it.
type ArchiveSettings struct {
	Table    string `mapstructure:"table"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

func (a ArchiveSettings) Enabled() bool {
	return a.Table != ""
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("output.scale", constants.DefaultScalePath)
	v.SetDefault("output.progressions", constants.DefaultProgressionsDir)
	v.SetDefault("output.midi", false)
	v.SetDefault("server.addr", constants.DefaultServerAddr)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("archive.table", "")
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("archive.endpoint", "")
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) Validate() error {
	var errs []error
	if s.Output.Scale == "" {
		errs = append(errs, errors.New("output.scale must not be empty"))
	}
	if s.Output.Progressions == "" {
		errs = append(errs, errors.New("output.progressions must not be empty"))
	}
	if s.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	if _, err := zapcore.ParseLevel(s.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if s.Log.Format != "console" && s.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", s.Log.Format))
	}
	if s.Archive.Enabled() && s.Archive.Region == "" {
		errs = append(errs, errors.New("archive.region is required when archive.table is set"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
