package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// loadSettings resolves the persistent flags with precedence
// flag > PRODUCTOPS_* env > settings file > flag default.
func loadSettings() {
	v, err := newSettings(configFilePath, rootCmd.PersistentFlags())
	if err != nil {
		logrus.Fatalf("Failed to load settings: %v", err)
	}
	logLevel = v.GetString("log")
	defaultsFilePath = v.GetString("defaults-filepath")
	statePath = v.GetString("state")
}

func newSettings(path string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("PRODUCTOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}
