package main

import (
	"sort"

	"github.com/dartsarif/dartsarif"
)

// severityRank orders the known severities, unknown ones sort last
var severityRank = map[string]int{
	dartsarif.SeverityError:   3,
	dartsarif.SeverityWarning: 2,
	dartsarif.SeverityInfo:    1,
}

type sortBySeverity []*dartsarif.Issue

func (s sortBySeverity) Len() int { return len(s) }

func (s sortBySeverity) Less(i, j int) bool {
	a, b := s[i], s[j]
	if severityRank[a.Severity] != severityRank[b.Severity] {
		return severityRank[a.Severity] > severityRank[b.Severity]
	}
	if a.Location.Path != b.Location.Path {
		return a.Location.Path < b.Location.Path
	}
	if a.Location.Line != b.Location.Line {
		return a.Location.Line < b.Location.Line
	}
	return a.Location.Column < b.Location.Column
}

func (s sortBySeverity) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// sortIssues sorts the issues by severity in descending order, then by
// location. Issues which compare equal keep their input order.
func sortIssues(issues []*dartsarif.Issue) {
	sort.Stable(sortBySeverity(issues))
}
