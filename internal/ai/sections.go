package ai

import "strings"

// Section is a labeled slice of the model's free-text answer.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SplitSections applies the heading-marker heuristic: lines starting with
// one to three '#' characters open a new section; text before the first
// heading becomes an untitled section.
func SplitSections(text string) []Section {
	var sections []Section
	current := Section{}
	var body []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if current.Title != "" || content != "" {
			current.Content = content
			sections = append(sections, current)
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if title, ok := headingTitle(trimmed); ok {
			flush()
			current = Section{Title: title}
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

func headingTitle(line string) (string, bool) {
	for _, marker := range []string{"### ", "## ", "# "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}
