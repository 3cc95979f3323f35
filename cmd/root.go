package cmd

import (
	"errors"
	"log"

	"github.com/tailora/outfit-agent/internal/brandvoice"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "outfit-agent"

	defaultCatalogPath = "data/catalog.csv"
	defaultMaxOutfits  = 5
)

type Config struct {
	Catalog     string              `mapstructure:"catalog"`
	ExcludeFile string              `mapstructure:"exclude-file"`
	MaxOutfits  int                 `mapstructure:"max-outfits"`
	Voice       string              `mapstructure:"voice"`
	BrandVoices []*brandvoice.Voice `mapstructure:"brand-voices"`
	AI          *AIConfig           `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Provider      string        `mapstructure:"provider"`
	MaxNoteLength int           `mapstructure:"max-note-length"`
	Gemini        *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "outfit-agent is a small cli for assembling outfit recommendations from a catalog",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is outfit-agent.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("catalog", defaultCatalogPath)
	viper.SetDefault("max-outfits", defaultMaxOutfits)
}

func initConfig() {
	// Config needed only for the run and serve commands.
	if runCmd.CalledAs() == "" && serveCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// A missing default config is fine: the built-in defaults and the
	// built-in brand voice cover the demo case. An explicitly requested
	// or unparseable config is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Catalog == "" {
		config.Catalog = defaultCatalogPath
	}
	if config.MaxOutfits <= 0 {
		config.MaxOutfits = defaultMaxOutfits
	}

	return config, nil
}
