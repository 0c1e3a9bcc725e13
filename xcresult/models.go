package xcresult

// ActionsInvocationRecord is the root of an exported xcresult JSON document.
type ActionsInvocationRecord struct {
	Actions Actions `json:"actions"`
}

// Actions ...
type Actions struct {
	Values []Action `json:"_values"`
}

// Action ...
type Action struct {
	ActionResult ActionResult `json:"actionResult"`
	BuildResult  ActionResult `json:"buildResult"`
}

// ActionResult ...
type ActionResult struct {
	Issues   Issues   `json:"issues"`
	TestsRef TestsRef `json:"testsRef"`
}

// TestsRef ...
type TestsRef struct {
	ID ID `json:"id"`
}

// ID ...
type ID struct {
	Value string `json:"_value"`
}

// Issues ...
type Issues struct {
	TestFailureSummaries     IssueSummaries `json:"testFailureSummaries"`
	ErrorSummaries           IssueSummaries `json:"errorSummaries"`
	WarningSummaries         IssueSummaries `json:"warningSummaries"`
	GlobalIssueSummaries     IssueSummaries `json:"globalIssueSummaries"`
	AnalyzerWarningSummaries IssueSummaries `json:"analyzerWarningSummaries"`
}

// IssueSummaries ...
type IssueSummaries struct {
	Values []IssueSummary `json:"_values"`
}

// IssueSummary ...
type IssueSummary struct {
	TestCaseName                        TestCaseName                        `json:"testCaseName"`
	Message                             Message                             `json:"message"`
	DocumentLocationInCreatingWorkspace DocumentLocationInCreatingWorkspace `json:"documentLocationInCreatingWorkspace"`
}

// TestCaseName ...
type TestCaseName struct {
	Value string `json:"_value"`
}

// Message ...
type Message struct {
	Value string `json:"_value"`
}

// DocumentLocationInCreatingWorkspace ...
type DocumentLocationInCreatingWorkspace struct {
	URL URL `json:"url"`
}

// URL ...
type URL struct {
	Value string `json:"_value"`
}
