package cmd

import (
	"context"

	"github.com/talentrag/talentrag-cli/internal/auth"
	"github.com/talentrag/talentrag-cli/internal/secrets"
	"github.com/talentrag/talentrag-cli/internal/talentrag"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the access token",
	Run: func(cmd *cobra.Command, _ []string) {
		login(cmd)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().BoolP("register", "r", false, "create an account before logging in")
	loginCmd.Flags().StringP("username", "u", "", "account name. Prompted for when unset.")
	loginCmd.Flags().String("email", "", "optional email, only used with --register")
	loginCmd.Flags().String("password-file", "", "file containing the password, for non-interactive use")
}

func login(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := newStore(config)
	if err != nil {
		logger.Fatal("locating the token store", zap.Error(err))
	}

	creds, err := gatherCredentials(cmd)
	if err != nil {
		logger.Fatal("collecting credentials", zap.Error(err))
	}

	mode := auth.ModeLogin
	if cmd.Flag("register").Value.String() == "true" {
		mode = auth.ModeRegister
	}

	// Auth calls are always anonymous; the token does not exist yet.
	client := talentrag.New(context.Background(), logger, config.APIURL, "")
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	flow := auth.NewFlow(client, store, logger)

	if _, err := flow.Authenticate(mode, creds); err != nil {
		logger.Fatal("authentication", zap.Error(err))
	}
}

func gatherCredentials(cmd *cobra.Command) (auth.Credentials, error) {
	creds := auth.Credentials{
		Username: cmd.Flag("username").Value.String(),
		Email:    cmd.Flag("email").Value.String(),
	}

	if creds.Username == "" {
		prompt := promptui.Prompt{Label: "Username"}

		username, err := prompt.Run()
		if err != nil {
			return creds, err
		}
		creds.Username = username
	}

	passwordFile := cmd.Flag("password-file").Value.String()
	if passwordFile != "" {
		password, err := secrets.Load(secrets.Source{
			Name: "password",
			File: passwordFile,
		})
		if err != nil {
			return creds, err
		}
		creds.Password = password

		return creds, nil
	}

	prompt := promptui.Prompt{Label: "Password", Mask: '*'}

	password, err := prompt.Run()
	if err != nil {
		return creds, err
	}
	creds.Password = password

	return creds, nil
}
