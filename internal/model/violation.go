package model

// Violation is a test marker found outside the designated test directory.
type Violation struct {
	Path Path   `yaml:"path"`
	Line int    `yaml:"line"` // 1-based
	Text string `yaml:"text"`
}

// PlacementReport is the persisted form of a check-tests run.
type PlacementReport struct {
	Root       Path        `yaml:"root"`
	Count      int         `yaml:"count"`
	Violations []Violation `yaml:"violations"`
}

// OversizedFile is a source file whose line count exceeds the configured limit.
type OversizedFile struct {
	Path  Path
	Lines int
	Max   int
}
