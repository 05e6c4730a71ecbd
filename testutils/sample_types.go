package testutils

// OutputSample is a chunk of analyzer output and what reading it should yield
type OutputSample struct {
	Name    string
	Output  string
	Issues  int
	Rules   int
	Skipped int
}
