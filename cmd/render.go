package cmd

import (
	"fmt"
	"strings"

	"github.com/talentrag/talentrag-cli/internal/conversation"
	"github.com/talentrag/talentrag-cli/internal/talentrag"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	scoreStyle   = lipgloss.NewStyle().Bold(true)
	strengthMark = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("+")
	gapMark      = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("-")
	userStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	answerStyle  = lipgloss.NewStyle().PaddingLeft(2)
	sourceStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(4)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func renderAnalysis(sessionID string, analysis *talentrag.MatchAnalysis) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Match analysis") + "\n")
	b.WriteString(fmt.Sprintf("session: %s\n", sessionID))
	b.WriteString(scoreStyle.Render(fmt.Sprintf("score: %d/100", analysis.MatchScore)) + "\n")

	for _, s := range analysis.Strengths {
		b.WriteString(fmt.Sprintf("%s %s\n", strengthMark, s))
	}
	for _, g := range analysis.Gaps {
		b.WriteString(fmt.Sprintf("%s %s\n", gapMark, g))
	}

	if analysis.Insights != "" {
		b.WriteString(answerStyle.Render(analysis.Insights) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderTurn(turn conversation.Turn) string {
	if turn.Role == conversation.RoleUser {
		return userStyle.Render("You: ") + turn.Question
	}

	out := answerStyle.Render(turn.Answer)
	for _, source := range turn.Sources {
		out += "\n" + sourceStyle.Render(
			fmt.Sprintf("chunk %d (score %.2f): %s", source.ChunkIndex, source.Score, source.Preview),
		)
	}

	return out
}

func renderWarmup() string {
	return warnStyle.Render("still waiting: the backend may be warming up, first request can take 50-60 seconds")
}

func renderError(err error) string {
	return errorStyle.Render(fmt.Sprintf("request failed: %v", err))
}
