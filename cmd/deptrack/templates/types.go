package templates

// Report is everything "deptrack run" prints for one document.
type Report struct {
	Source       string
	DigestBefore uint64
	DigestAfter  uint64
	Bindings     []Binding
	Writes       []Write

	// State is the final document rendered as YAML.
	State string
}

// Binding is one --watch expression and what it resolved to at creation.
type Binding struct {
	Path    string
	Initial string
	Deps    int
	Err     string
}

// Write is one --set assignment with the callbacks it triggered.
type Write struct {
	Assignment string
	Events     []Event
	Errors     []string
}

type Event struct {
	Path  string
	Value string
}
