package sarif

// Level SARIF level
// From https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html#_Toc34317648
type Level string

const (
	// None : The concept of “severity” does not apply to this result.
	None = Level("none")
	// Note : A minor problem or an opportunity to improve the code was found.
	Note = Level("note")
	// Warning : A problem was found.
	Warning = Level("warning")
	// Error : A serious problem was found.
	Error = Level("error")
	// Version : SARIF Schema version
	Version = "2.1.0"
	// Schema : SARIF Schema URL
	Schema = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/main/sarif-2.1/schema/sarif-schema-2.1.0.json"
)

const (
	// SrcRootID is the base URI id the artifact locations are relative to
	SrcRootID = "SRCROOT"
	// SrcRootDescription describes the SRCROOT base URI
	SrcRootDescription = "The root directory for the source files."
	// DriverName is the name of the tool whose output is converted
	DriverName = "dart analyze"
	// DriverInformationURI documents the driver
	DriverInformationURI = "https://dart.dev/tools/dart-analyze"
)
