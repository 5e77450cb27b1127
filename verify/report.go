package verify

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/tapevm/program"
)

// Report is the result of linting one program.
type Report struct {
	ProgramLen int
	LoopPairs  int
	Issues     []Issue
}

// GenerateReport lints prog and counts its balanced loops.
func GenerateReport(prog program.Program) *Report {
	report := &Report{
		ProgramLen: len(prog),
		Issues:     RunLint(prog),
	}

	starts := 0
	for _, inst := range prog {
		if inst == program.LoopStart {
			starts++
		}
	}
	for _, issue := range report.Issues {
		if issue.Type == IssueUnmatchedStart {
			starts--
		}
	}
	report.LoopPairs = starts

	return report
}

// OK reports whether the program passed lint.
func (r *Report) OK() bool {
	return len(r.Issues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *Report) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "PROGRAM LINT REPORT")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Instructions: %d\n", r.ProgramLen)
	fmt.Fprintf(w, "Loops:        %d\n", r.LoopPairs)

	if r.OK() {
		fmt.Fprintln(w, "No lint issues found")
		return
	}

	fmt.Fprintf(w, "Found %d lint issues:\n", len(r.Issues))

	issueTable := table.NewWriter()
	issueTable.SetOutputMirror(w)
	issueTable.AppendHeader(table.Row{"#", "Type", "Pos", "Message"})
	for i, issue := range r.Issues {
		issueTable.AppendRow(table.Row{i + 1, issue.Type, issue.Pos, issue.Message})
	}
	issueTable.Render()
}
