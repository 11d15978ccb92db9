package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored access token",
	Run: func(_ *cobra.Command, _ []string) {
		logout()
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func logout() {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := newStore(config)
	if err != nil {
		logger.Fatal("locating the token store", zap.Error(err))
	}

	if err := store.Clear(); err != nil {
		logger.Fatal("clearing the token", zap.Error(err))
	}

	logger.Info("logged out")
}
