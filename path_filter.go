package dartsarif

import (
	"fmt"
	"regexp"
	"strings"
)

// PathExcludeRule drops issues of the given rules for paths matching a regex
type PathExcludeRule struct {
	Path  string   `json:"path" yaml:"path"`   // regex matched against the issue path
	Rules []string `json:"rules" yaml:"rules"` // rule ids, "*" matches every rule
}

type compiledPathRule struct {
	pathRegex  *regexp.Regexp
	ruleSet    map[string]bool
	excludeAll bool
}

// PathExclusionFilter decides which issues are left out of the report
type PathExclusionFilter struct {
	rules []compiledPathRule
}

// NewPathExclusionFilter compiles the exclusion rules. An invalid regex or
// an empty path is an error.
func NewPathExclusionFilter(rules []PathExcludeRule) (*PathExclusionFilter, error) {
	compiled := make([]compiledPathRule, 0, len(rules))
	for i, rule := range rules {
		if rule.Path == "" {
			return nil, fmt.Errorf("exclude-rules[%d]: path cannot be empty", i)
		}
		regex, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, fmt.Errorf("exclude-rules[%d]: invalid path regex %q: %w", i, rule.Path, err)
		}

		c := compiledPathRule{pathRegex: regex, ruleSet: make(map[string]bool)}
		for _, ruleID := range rule.Rules {
			ruleID = strings.TrimSpace(ruleID)
			switch ruleID {
			case "":
			case "*":
				c.excludeAll = true
			default:
				c.ruleSet[ruleID] = true
			}
		}
		compiled = append(compiled, c)
	}
	return &PathExclusionFilter{rules: compiled}, nil
}

// ShouldExclude reports whether an issue of ruleID at filePath is dropped.
// A nil filter excludes nothing.
func (f *PathExclusionFilter) ShouldExclude(filePath, ruleID string) bool {
	if f == nil || len(f.rules) == 0 {
		return false
	}

	// dart analyze prints native separators on Windows
	normalized := strings.ReplaceAll(filePath, "\\", "/")
	for _, rule := range f.rules {
		if !rule.pathRegex.MatchString(normalized) {
			continue
		}
		if rule.excludeAll || rule.ruleSet[ruleID] {
			return true
		}
	}
	return false
}

// ParseCLIExcludeRules parses "path:rule1,rule2;path2:rule3"
func ParseCLIExcludeRules(input string) ([]PathExcludeRule, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	var rules []PathExcludeRule
	for i, part := range strings.Split(input, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, ":")
		if idx == -1 {
			return nil, fmt.Errorf("exclude-rules part %d: missing ':' separator in %q", i+1, part)
		}
		pattern := strings.TrimSpace(part[:idx])
		if pattern == "" {
			return nil, fmt.Errorf("exclude-rules part %d: path pattern cannot be empty", i+1)
		}

		var ids []string
		for _, id := range strings.Split(part[idx+1:], ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, fmt.Errorf("exclude-rules part %d: no valid rules specified", i+1)
		}

		rules = append(rules, PathExcludeRule{Path: pattern, Rules: ids})
	}
	return rules, nil
}

// MergeExcludeRules puts the command line rules ahead of the config file ones
func MergeExcludeRules(configRules, cliRules []PathExcludeRule) []PathExcludeRule {
	merged := make([]PathExcludeRule, 0, len(cliRules)+len(configRules))
	merged = append(merged, cliRules...)
	return append(merged, configRules...)
}
