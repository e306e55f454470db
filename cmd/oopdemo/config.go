package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/marcodamonte/oop-concepts/internal/logging"
	"github.com/marcodamonte/oop-concepts/record"
)

const (
	envPrefix = "OOPDEMO"

	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
	cfgKeyLogOutput = "log_output"
	cfgKeyDBHost    = "db.host"
	cfgKeyDBPort    = "db.port"
	cfgKeyDBDebug   = "db.debug"
)

// settings is everything the CLI reads from flags, environment and file.
type settings struct {
	Log logging.Config
	DB  record.Config
}

// loadConfig layers, lowest first: defaults, the config file (when given),
// OOPDEMO_* environment variables, then flags already bound to v. An
// explicit file that cannot be read is an error.
func loadConfig(v *viper.Viper, file string) (settings, error) {
	def := logging.DefaultConfig()
	v.SetDefault(cfgKeyLogLevel, def.Level)
	v.SetDefault(cfgKeyLogFormat, def.Format)
	v.SetDefault(cfgKeyLogOutput, def.Output)
	v.SetDefault(cfgKeyDBHost, "arcturus")
	v.SetDefault(cfgKeyDBPort, 255)
	v.SetDefault(cfgKeyDBDebug, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	port := v.GetInt(cfgKeyDBPort)
	if port < 0 || port > 65535 {
		return settings{}, fmt.Errorf("config: %s out of range: %d", cfgKeyDBPort, port)
	}

	return settings{
		Log: logging.Config{
			Level:  v.GetString(cfgKeyLogLevel),
			Format: v.GetString(cfgKeyLogFormat),
			Output: v.GetString(cfgKeyLogOutput),
		},
		DB: record.NewConfig(v.GetString(cfgKeyDBHost), port, record.Debug(v.GetBool(cfgKeyDBDebug))),
	}, nil
}
