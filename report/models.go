package report

// Diagnostics holds everything one xcresult inspection run surfaced.
type Diagnostics struct {
	IssueLines   []string
	FailingTests []string
}

// UploadRequest ...
type UploadRequest struct {
	Title        string   `json:"title"`
	IssueLines   []string `json:"issue_lines"`
	FailingTests []string `json:"failing_tests"`
}

// UploadResponse ...
type UploadResponse struct {
	ID string `json:"id"`
}
