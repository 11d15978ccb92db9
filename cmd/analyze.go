package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/talentrag/talentrag-cli/internal/talentrag"
	"github.com/talentrag/talentrag-cli/internal/upload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume> <job-description>",
	Short: "Upload a resume and a job description and print the match analysis",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		analyze(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func analyze(resumePath, jobDescriptionPath string) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	store, err := newStore(config)
	if err != nil {
		logger.Fatal("locating the token store", zap.Error(err))
	}

	resume, err := os.Open(resumePath)
	if err != nil {
		logger.Fatal("opening resume", zap.Error(err))
	}
	defer resume.Close()

	jobDescription, err := os.Open(jobDescriptionPath)
	if err != nil {
		logger.Fatal("opening job description", zap.Error(err))
	}
	defer jobDescription.Close()

	// Anonymous upload is allowed when no token is stored.
	token, ok := store.Get()
	if !ok {
		logger.Debug("no stored token, uploading anonymously")
	}

	ctx := context.Background()

	client := talentrag.New(ctx, logger, config.APIURL, token)
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	orchestrator := upload.New(client, logger)

	logger.Info("uploading documents",
		zap.String("resume", resumePath),
		zap.String("job_description", jobDescriptionPath),
	)

	sessionID, analysis, err := orchestrator.Submit(ctx,
		talentrag.FilePart{Name: filepath.Base(resumePath), Reader: resume},
		talentrag.FilePart{Name: filepath.Base(jobDescriptionPath), Reader: jobDescription},
		func() {
			fmt.Fprintln(os.Stderr, renderWarmup())
		},
	)
	if err != nil {
		logger.Fatal("upload", zap.Error(err))
	}

	fmt.Println(renderAnalysis(sessionID, analysis))
	fmt.Printf("\nask questions about this candidate with: %s chat %s\n", app, sessionID)
}
