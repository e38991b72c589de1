package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// playgroundConfig is the subset of llpc.yaml that matters to the CLI:
// default grammar for parse, and the playground's listen port.
type playgroundConfig struct {
	DefaultGrammar string `mapstructure:"default_grammar"`
	Port           int    `mapstructure:"port"`
}

var config playgroundConfig

func initConfig() error {
	v := viper.New()

	v.SetDefault("default_grammar", "calc")
	v.SetDefault("port", 8080)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("llpc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v.Unmarshal(&config)
}
