package dartsarif

import (
	"sort"
)

// Metrics holds the counters collected while reading a report
type Metrics struct {
	NumLines    int `json:"lines" yaml:"lines"`
	NumFound    int `json:"found" yaml:"found"`
	NumSkipped  int `json:"skipped" yaml:"skipped"`
	NumExcluded int `json:"excluded" yaml:"excluded"`
}

// ReportInfo this is report information
type ReportInfo struct {
	Issues []*Issue `json:"Issues" yaml:"issues"`
	Rules  []string `json:"Rules" yaml:"rules"`
	Errors []Error  `json:"Skipped lines" yaml:"skipped"`
	Stats  *Metrics `json:"Stats" yaml:"stats"`
}

// NewReportInfo instantiate a ReportInfo. The rule set is derived from the
// issues.
func NewReportInfo(issues []*Issue, metrics *Metrics, errors []Error) *ReportInfo {
	if errors == nil {
		errors = []Error{}
	}
	sortErrors(errors)
	return &ReportInfo{
		Issues: issues,
		Rules:  RuleSet(issues),
		Errors: errors,
		Stats:  metrics,
	}
}

// RuleSet returns the distinct rule ids referenced by the issues in
// ascending order
func RuleSet(issues []*Issue) []string {
	seen := make(map[string]struct{}, len(issues))
	rules := make([]string, 0)
	for _, issue := range issues {
		if _, ok := seen[issue.Rule]; ok {
			continue
		}
		seen[issue.Rule] = struct{}{}
		rules = append(rules, issue.Rule)
	}
	sort.Strings(rules)
	return rules
}
