// Package verify provides static checks for tape machine programs.
//
// The execution engine resolves loops by scanning for the matching bracket at
// run time. When a bracket has no partner the scan silently gives up: an
// unmatched LoopStart falls into its body once, and an unmatched LoopEnd never
// jumps. RunLint finds those brackets before a program runs so callers can
// reject malformed programs instead.
//
// # Usage Example
//
//	prog := program.Tokenize(source)
//	if issues := verify.RunLint(prog); len(issues) > 0 {
//	    for _, issue := range issues {
//	        log.Printf("%s", issue)
//	    }
//	}
package verify

import "fmt"

// IssueType categorizes lint issues
type IssueType string

const (
	IssueUnmatchedStart IssueType = "UNMATCHED_START" // LoopStart never closed
	IssueUnmatchedEnd   IssueType = "UNMATCHED_END"   // LoopEnd with nothing open
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	Pos     int // instruction index
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] pos=%d: %s", i.Type, i.Pos, i.Message)
}
