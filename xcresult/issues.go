package xcresult

import "fmt"

type issueCategory struct {
	label     string
	summaries []IssueSummary
}

// categories returns the issue summary collections in report order.
func (i Issues) categories() []issueCategory {
	return []issueCategory{
		{label: "Test", summaries: i.TestFailureSummaries.Values},
		{label: "Error", summaries: i.ErrorSummaries.Values},
		{label: "Warning", summaries: i.WarningSummaries.Values},
		{label: "Global", summaries: i.GlobalIssueSummaries.Values},
		{label: "Analyzer", summaries: i.AnalyzerWarningSummaries.Values},
	}
}

// HasIssues reports whether any category holds at least one issue summary.
func (i Issues) HasIssues() bool {
	for _, category := range i.categories() {
		if len(category.summaries) > 0 {
			return true
		}
	}
	return false
}

// Lines renders the printable report lines for every issue summary.
// An issue needs a test case name or a message to produce a line of the form
// `- <Label> <name>: <message>`; a source location URL is rendered on its own
// indented line right after the issue it belongs to.
func (i Issues) Lines() []string {
	var lines []string
	for _, category := range i.categories() {
		for _, summary := range category.summaries {
			name := summary.TestCaseName.Value
			message := summary.Message.Value
			location := summary.DocumentLocationInCreatingWorkspace.URL.Value

			if name != "" || message != "" {
				prefix := fmt.Sprintf("%s:", category.label)
				if name != "" {
					prefix = fmt.Sprintf("%s %s:", category.label, name)
				}
				lines = append(lines, fmt.Sprintf("- %s %s", prefix, message))
			}
			if location != "" {
				lines = append(lines, "  "+location)
			}
		}
	}
	return lines
}
