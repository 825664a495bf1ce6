package ai

import (
	"fmt"
	"strings"

	"github.com/linkfolio-dev/linkfolio/internal/models"
)

const analysisSystemPrompt = "You are a senior engineer reviewing issue reports on a personal " +
	"profile site. Analyze the reported issue, assess its likely root cause and impact, " +
	"and suggest concrete next steps. Structure the answer with markdown headings."

const summarySystemPrompt = "You are a senior engineer summarizing the open issue backlog of a " +
	"personal profile site. Group related issues, call out anything severe, and keep it short. " +
	"Structure the answer with markdown headings."

func AnalysisPrompts(issue models.Issue) (system, user string) {
	user = fmt.Sprintf("Title: %s\nSeverity: %s\nDescription:\n%s",
		issue.Title, issue.Severity, issue.Description)
	return analysisSystemPrompt, user
}

func SummaryPrompts(issues []models.Issue) (system, user string) {
	var b strings.Builder
	b.WriteString("Open issues:\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", issue.Severity, issue.Title, issue.Description)
	}
	return summarySystemPrompt, b.String()
}
