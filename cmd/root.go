package cmd

import (
	"log"

	"github.com/talentrag/talentrag-cli/internal/credentials"
	"github.com/talentrag/talentrag-cli/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "talentrag"
)

type Config struct {
	APIURL    string `mapstructure:"api-url"`
	UserAgent string `mapstructure:"user-agent"`
	TokenFile string `mapstructure:"token-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentrag is a cli for matching a resume against a job description and asking questions about the result",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("api-url", "TALENTRAG_API_URL"); err != nil {
		log.Fatalf("binding TALENTRAG_API_URL environment variable: %v", err)
	}

	if err := viper.BindEnv("token-file", "TALENTRAG_TOKEN_FILE"); err != nil {
		log.Fatalf("binding TALENTRAG_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentrag.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly given config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// All settings have defaults or env bindings, so a missing config file
	// is fine.
	_ = viper.ReadInConfig()
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

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return l
}

func newStore(config *Config) (*credentials.Store, error) {
	if config != nil && config.TokenFile != "" {
		return credentials.NewStoreAt(config.TokenFile), nil
	}

	return credentials.NewStore()
}
