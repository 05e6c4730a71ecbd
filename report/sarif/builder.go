package sarif

// NewReport instantiate a SARIF Report
func NewReport(version string, schema string) *Report {
	return &Report{
		Version: version,
		Schema:  schema,
	}
}

// WithRuns defines runs for the current report
func (r *Report) WithRuns(runs ...*Run) *Report {
	r.Runs = runs
	return r
}

// NewRun instantiate a Run
func NewRun(tool *Tool) *Run {
	return &Run{
		Tool:    tool,
		Results: []*Result{},
	}
}

// WithResults set the results for the current run
func (r *Run) WithResults(results ...*Result) *Run {
	r.Results = results
	return r
}

// WithVersionControlProvenance set the version control details for the current run
func (r *Run) WithVersionControlProvenance(details ...*VersionControlDetails) *Run {
	r.VersionControlProvenance = details
	return r
}

// WithOriginalURIBaseID registers a named base URI for the current run
func (r *Run) WithOriginalURIBaseID(id string, location *ArtifactLocation) *Run {
	if r.OriginalURIBaseIDs == nil {
		r.OriginalURIBaseIDs = make(map[string]*ArtifactLocation)
	}
	r.OriginalURIBaseIDs[id] = location
	return r
}

// NewVersionControlDetails instantiate a VersionControlDetails
func NewVersionControlDetails(repositoryURI, revisionID, branch *string) *VersionControlDetails {
	return &VersionControlDetails{
		RepositoryURI: repositoryURI,
		RevisionID:    revisionID,
		Branch:        branch,
	}
}

// NewTool instantiate a Tool
func NewTool(driver *ToolComponent) *Tool {
	return &Tool{
		Driver: driver,
	}
}

// NewToolComponent instantiate a ToolComponent
func NewToolComponent(name string, informationURI string) *ToolComponent {
	return &ToolComponent{
		Name:           name,
		GUID:           uuid3(name),
		InformationURI: informationURI,
		Rules:          []*ReportingDescriptor{},
	}
}

// WithRules set the rules for the current ToolComponent
func (t *ToolComponent) WithRules(rules ...*ReportingDescriptor) *ToolComponent {
	t.Rules = rules
	return t
}

// NewReportingDescriptor instantiate a rule catalog entry named after its id
func NewReportingDescriptor(id string) *ReportingDescriptor {
	return &ReportingDescriptor{
		ID:   id,
		Name: id,
	}
}

// NewResult instantiate a Result
func NewResult(ruleID string, ruleIndex int, level Level, message string) *Result {
	return &Result{
		RuleID:    ruleID,
		RuleIndex: ruleIndex,
		Level:     level,
		Message:   NewMessage(message),
	}
}

// NewMessage instantiate a Message
func NewMessage(text string) *Message {
	return &Message{
		Text: text,
	}
}

// WithLocations define the current result's locations
func (r *Result) WithLocations(locations ...*Location) *Result {
	r.Locations = locations
	return r
}

// NewLocation instantiate a Location
func NewLocation(physicalLocation *PhysicalLocation) *Location {
	return &Location{
		PhysicalLocation: physicalLocation,
	}
}

// NewPhysicalLocation instantiate a PhysicalLocation
func NewPhysicalLocation(artifactLocation *ArtifactLocation, region *Region) *PhysicalLocation {
	return &PhysicalLocation{
		ArtifactLocation: artifactLocation,
		Region:           region,
	}
}

// NewArtifactLocation instantiate an ArtifactLocation
func NewArtifactLocation(uri string) *ArtifactLocation {
	return &ArtifactLocation{
		URI: uri,
	}
}

// WithURIBaseID makes the artifact location relative to a named base URI
func (a *ArtifactLocation) WithURIBaseID(id string) *ArtifactLocation {
	a.URIBaseID = id
	return a
}

// WithDescription set the description of the artifact location
func (a *ArtifactLocation) WithDescription(text string) *ArtifactLocation {
	a.Description = NewMessage(text)
	return a
}

// NewRegion instantiate a Region
func NewRegion(startLine int, startColumn int) *Region {
	return &Region{
		StartLine:   startLine,
		StartColumn: startColumn,
	}
}
