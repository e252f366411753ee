package main

import "github.com/spf13/viper"

// Config stores the runner's configuration.
// The values are read by viper from a config file or environment variables.
type Config struct {
	// ProblemPath points at the problem-instance JSON file.
	ProblemPath string `mapstructure:"PROBLEM_PATH"`

	// Heuristic selects the bound: max-air, mst-air or relaxed.
	Heuristic string `mapstructure:"HEURISTIC"`

	// Strict switches from the relaxed model to the strict one.
	// The relaxed heuristic is only defined over the strict model.
	Strict bool `mapstructure:"STRICT"`

	// MaxExpansions caps the search; 0 means unlimited.
	MaxExpansions int `mapstructure:"MAX_EXPANSIONS"`

	// PrettyLog switches zerolog to human-readable console output.
	PrettyLog bool `mapstructure:"PRETTY_LOG"`
}

// LoadConfig reads configuration from app.env in path, overridden by
// environment variables of the same names.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("HEURISTIC", "mst-air")
	viper.SetDefault("STRICT", false)
	viper.SetDefault("MAX_EXPANSIONS", 0)
	viper.SetDefault("PRETTY_LOG", true)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults apply.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)

	return
}
