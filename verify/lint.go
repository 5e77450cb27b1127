package verify

import (
	"sort"

	"github.com/sarchlab/tapevm/program"
)

// RunLint checks that every LoopStart has a matching LoopEnd and vice versa.
// Issues are returned in program order; an empty result means the program
// is well formed.
func RunLint(prog program.Program) []Issue {
	var issues []Issue
	var open []int

	for pos, inst := range prog {
		switch inst {
		case program.LoopStart:
			open = append(open, pos)
		case program.LoopEnd:
			if len(open) == 0 {
				issues = append(issues, Issue{
					Type:    IssueUnmatchedEnd,
					Pos:     pos,
					Message: "LoopEnd has no matching LoopStart",
				})
				continue
			}
			open = open[:len(open)-1]
		}
	}

	for _, pos := range open {
		issues = append(issues, Issue{
			Type:    IssueUnmatchedStart,
			Pos:     pos,
			Message: "LoopStart has no matching LoopEnd",
		})
	}

	sort.SliceStable(issues, func(a, b int) bool {
		return issues[a].Pos < issues[b].Pos
	})

	return issues
}
