package sarif

import (
	"github.com/google/uuid"

	"github.com/dartsarif/dartsarif"
)

// Options controls the optional blocks of the generated run
type Options struct {
	// SourceRootURI enables the SRCROOT base URI mapping when set
	SourceRootURI string
	// Provenance is emitted as versionControlProvenance when not nil,
	// even if none of its fields are set
	Provenance *dartsarif.Provenance
}

// GenerateReport converts the parsed issues into a SARIF report
func GenerateReport(data *dartsarif.ReportInfo, opts Options) (*Report, error) {
	ruleIndices := make(map[string]int, len(data.Rules))
	rules := make([]*ReportingDescriptor, 0, len(data.Rules))
	for _, id := range data.Rules {
		if _, ok := ruleIndices[id]; ok {
			continue
		}
		ruleIndices[id] = len(rules)
		rules = append(rules, NewReportingDescriptor(id))
	}

	results := make([]*Result, 0, len(data.Issues))
	for _, issue := range data.Issues {
		index, ok := ruleIndices[issue.Rule]
		if !ok {
			index = len(rules)
			ruleIndices[issue.Rule] = index
			rules = append(rules, NewReportingDescriptor(issue.Rule))
		}

		result := NewResult(issue.Rule, index, getSarifLevel(issue.Severity), issue.Message).
			WithLocations(parseSarifLocation(issue, opts.SourceRootURI != ""))
		results = append(results, result)
	}

	tool := NewTool(NewToolComponent(DriverName, DriverInformationURI).WithRules(rules...))
	run := NewRun(tool).WithResults(results...)

	if opts.Provenance != nil {
		p := opts.Provenance
		run.WithVersionControlProvenance(NewVersionControlDetails(p.RepositoryURI, p.RevisionID, p.Branch))
	}
	if opts.SourceRootURI != "" {
		run.WithOriginalURIBaseID(SrcRootID,
			NewArtifactLocation(opts.SourceRootURI).WithDescription(SrcRootDescription))
	}

	return NewReport(Version, Schema).
		WithRuns(run), nil
}

func parseSarifLocation(issue *dartsarif.Issue, relative bool) *Location {
	artifact := NewArtifactLocation(issue.Location.Path)
	if relative {
		artifact.WithURIBaseID(SrcRootID)
	}
	region := NewRegion(issue.Location.Line, issue.Location.Column)
	return NewLocation(NewPhysicalLocation(artifact, region))
}

// getSarifLevel maps a dart analyze severity to a SARIF level. SARIF has
// no "info" level, every other severity passes through.
func getSarifLevel(severity string) Level {
	if severity == dartsarif.SeverityInfo {
		return Note
	}
	return Level(severity)
}

func uuid3(value string) string {
	return uuid.NewMD5(uuid.Nil, []byte(value)).String()
}
