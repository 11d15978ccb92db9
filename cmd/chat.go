package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/talentrag/talentrag-cli/internal/conversation"
	"github.com/talentrag/talentrag-cli/internal/logger"
	"github.com/talentrag/talentrag-cli/internal/talentrag"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const promptExit = "exit"

var chatCmd = &cobra.Command{
	Use:   "chat <session-id>",
	Short: "Hold a question-and-answer conversation about an analysis session",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		chat(args[0])
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func chat(sessionID string) {
	log := newLogger()
	log = logger.WithSession(log, sessionID)

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	store, err := newStore(config)
	if err != nil {
		log.Fatal("locating the token store", zap.Error(err))
	}

	token, _ := store.Get()

	client := talentrag.New(context.Background(), log, config.APIURL, token)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	manager := conversation.NewManager(client, log)

	// A brand-new session has no history; hydration failure is fine.
	manager.Hydrate(sessionID)

	for _, turn := range manager.Turns() {
		fmt.Println(renderTurn(turn))
	}

	for {
		prompt := promptui.Prompt{Label: "You"}

		question, err := prompt.Run()
		if err != nil {
			// ^C / ^D ends the conversation.
			log.Info("exiting", zap.Error(err))
			return
		}

		if question == promptExit {
			return
		}

		index, err := manager.Ask(sessionID, question)
		switch {
		case errors.Is(err, conversation.ErrEmptyQuestion):
			continue
		case err != nil:
			// The question stays in the transcript; the user may retry.
			fmt.Println(renderError(err))
			continue
		}

		turns := manager.Turns()
		fmt.Println(renderTurn(turns[index+1]))
	}
}
