package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gigworks/gig-assistant/internal/geo"
)

const (
	app = "gig-assistant"
)

type Config struct {
	Data     *DataConfig     `mapstructure:"data"`
	Server   *ServerConfig   `mapstructure:"server"`
	Resolver *ResolverConfig `mapstructure:"resolver"`
	AI       *AIConfig       `mapstructure:"ai"`
}

type DataConfig struct {
	Jobs    string `mapstructure:"jobs"`
	History string `mapstructure:"history"`
	Workers string `mapstructure:"workers"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type ResolverConfig struct {
	MinSimilarity float64 `mapstructure:"min-similarity"`
}

type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "gig-assistant is a chat assistant for a gig-work marketplace: incoming jobs, historical pricing, and worker availability",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is gig-assistant.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	viper.SetDefault("data.jobs", "data/gig_jobs.csv")
	viper.SetDefault("data.history", "data/historical_jobs.csv")
	viper.SetDefault("data.workers", "data/worker_profiles.csv")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("resolver.min-similarity", geo.DefaultMinSimilarity)
	viper.SetDefault("ai.gemini.model", "gemini-2.5-flash")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The defaults above make the config file optional, but a present yet
	// unparseable one is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
