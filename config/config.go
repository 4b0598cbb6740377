// Package config resolves where the daemon listens and which token to
// present, from a config file in the data dir and KMD_* environment
// variables.
package config

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName     = "kmd-client"
	defaultDirName = ".kmd"
	defaultAddress = "http://127.0.0.1:7833"
)

type Config struct {
	Address string `mapstructure:"address"`
	Token   string `mapstructure:"token"`
}

// DefaultDataDir is ~/.kmd.
func DefaultDataDir() string {
	dir, err := homedir.Dir()
	if err != nil {
		panic("cannot get homedir")
	}
	return filepath.Join(dir, defaultDirName)
}

// Load reads kmd-client.yaml from dataDir, then applies KMD_ADDRESS and
// KMD_TOKEN from the environment on top. A missing config file is fine;
// a malformed one is not.
func Load(dataDir string) (config Config, err error) {
	return load(dataDir, nil)
}

// LoadWithFlags is Load with command-line flags bound over the config file,
// so --address and --token win when set.
func LoadWithFlags(dataDir string, flags *pflag.FlagSet) (Config, error) {
	return load(dataDir, flags)
}

func load(dataDir string, flags *pflag.FlagSet) (config Config, err error) {
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(dataDir)
	v.SetEnvPrefix("kmd")
	v.AutomaticEnv()
	v.SetDefault("address", defaultAddress)
	v.SetDefault("token", "")

	// Only explicitly set flags may shadow the config file; untouched flag
	// defaults must not bury the defaults above.
	if flags != nil {
		flags.Visit(func(flag *pflag.Flag) {
			if err == nil {
				err = v.BindPFlag(flag.Name, flag)
			}
		})
		if err != nil {
			return config, errors.Wrap(err, "viper failed to bind flags")
		}
	}

	if err = v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return config, errors.Wrap(err, "viper failed to read config file")
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "viper failed to unmarshal config")
	}

	return config, nil
}
