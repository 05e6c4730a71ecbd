package sarif

// Report is the top level SARIF log object
type Report struct {
	Schema  string `json:"$schema,omitempty"`
	Version string `json:"version"`
	Runs    []*Run `json:"runs"`
}

// Run describes a single invocation of an analysis tool
type Run struct {
	VersionControlProvenance []*VersionControlDetails     `json:"versionControlProvenance,omitempty"`
	OriginalURIBaseIDs       map[string]*ArtifactLocation `json:"originalUriBaseIds,omitempty"`
	Tool                     *Tool                        `json:"tool"`
	Results                  []*Result                    `json:"results"`
}

// VersionControlDetails identifies the revision of the analyzed sources.
// Only the fields which were supplied are emitted, empty strings included.
type VersionControlDetails struct {
	RepositoryURI *string `json:"repositoryUri,omitempty"`
	RevisionID    *string `json:"revisionId,omitempty"`
	Branch        *string `json:"branch,omitempty"`
}

// Tool holds the component which produced the results
type Tool struct {
	Driver *ToolComponent `json:"driver"`
}

// ToolComponent describes the analysis tool
type ToolComponent struct {
	Name           string                 `json:"name"`
	GUID           string                 `json:"guid,omitempty"`
	InformationURI string                 `json:"informationUri,omitempty"`
	Rules          []*ReportingDescriptor `json:"rules"`
}

// ReportingDescriptor is an entry of the rule catalog
type ReportingDescriptor struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Result is a single finding
type Result struct {
	Level     Level       `json:"level"`
	Locations []*Location `json:"locations"`
	Message   *Message    `json:"message"`
	RuleID    string      `json:"ruleId"`
	RuleIndex int         `json:"ruleIndex"`
}

// Message is a plain text message
type Message struct {
	Text string `json:"text"`
}

// Location wraps the physical location of a result
type Location struct {
	PhysicalLocation *PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation points to a region of an artifact
type PhysicalLocation struct {
	ArtifactLocation *ArtifactLocation `json:"artifactLocation"`
	Region           *Region           `json:"region"`
}

// ArtifactLocation is a URI, optionally relative to a named base URI.
// The same shape describes the base URIs themselves.
type ArtifactLocation struct {
	URI         string   `json:"uri"`
	URIBaseID   string   `json:"uriBaseId,omitempty"`
	Description *Message `json:"description,omitempty"`
}

// Region is a 1-based position in a text artifact
type Region struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn"`
}
