package main

import (
	"reflect"
	"testing"

	"github.com/bitrise-steplib/steps-xcresult-diagnostics/xcresult"
)

func testFailureIssues(name, message string) xcresult.Issues {
	var issues xcresult.Issues
	var summary xcresult.IssueSummary
	summary.TestCaseName.Value = name
	summary.Message.Value = message
	issues.TestFailureSummaries.Values = []xcresult.IssueSummary{summary}
	return issues
}

func Test_collectIssues(t *testing.T) {
	tests := []struct {
		name      string
		record    func() xcresult.ActionsInvocationRecord
		wantLines []string
		wantFound bool
	}{
		{
			name:      "no actions",
			record:    func() xcresult.ActionsInvocationRecord { return xcresult.ActionsInvocationRecord{} },
			wantLines: nil,
			wantFound: false,
		},
		{
			name: "action without issues",
			record: func() xcresult.ActionsInvocationRecord {
				var record xcresult.ActionsInvocationRecord
				record.Actions.Values = []xcresult.Action{{}}
				return record
			},
			wantLines: nil,
			wantFound: false,
		},
		{
			name: "action result issues precede build result issues",
			record: func() xcresult.ActionsInvocationRecord {
				var action xcresult.Action
				action.ActionResult.Issues = testFailureIssues("FooTests", "assertion failed")
				action.BuildResult.Issues = testFailureIssues("BarTests", "XCTAssertTrue failed")

				var record xcresult.ActionsInvocationRecord
				record.Actions.Values = []xcresult.Action{action}
				return record
			},
			wantLines: []string{
				"- Test FooTests: assertion failed",
				"- Test BarTests: XCTAssertTrue failed",
			},
			wantFound: true,
		},
		{
			name: "unprintable issue still counts as found",
			record: func() xcresult.ActionsInvocationRecord {
				var action xcresult.Action
				action.BuildResult.Issues.ErrorSummaries.Values = []xcresult.IssueSummary{{}}

				var record xcresult.ActionsInvocationRecord
				record.Actions.Values = []xcresult.Action{action}
				return record
			},
			wantLines: nil,
			wantFound: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotLines, gotFound := collectIssues(tt.record())
			if !reflect.DeepEqual(gotLines, tt.wantLines) {
				t.Errorf("collectIssues() gotLines = %v, want %v", gotLines, tt.wantLines)
			}
			if gotFound != tt.wantFound {
				t.Errorf("collectIssues() gotFound = %v, want %v", gotFound, tt.wantFound)
			}
		})
	}
}
