package model

// Severity classifies a compiler diagnostic.
type Severity string

const (
	// SeverityError fails the build profile.
	SeverityError Severity = "error"
	// SeverityWarning fails the profile only when warnings are denied.
	SeverityWarning Severity = "warning"
	// SeverityOther covers notes, help and anything else the compiler emits.
	SeverityOther Severity = "other"
)

// BuildProfile is one build configuration the toolchain is exercised with.
type BuildProfile struct {
	Name string   `mapstructure:"name" yaml:"name"`
	Args []string `mapstructure:"args" yaml:"args"`
}

// Diagnostic is a single compiler message emitted during a build.
type Diagnostic struct {
	Profile  string
	Package  string
	Severity Severity
	Message  string
	Rendered string
	File     string
	Line     int
}

// BuildResult summarises one build profile run.
type BuildResult struct {
	Profile  BuildProfile
	Errors   int
	Warnings int
	// Finished is false when the tool never reported build-finished.
	Finished bool
	// Success mirrors the build-finished message.
	Success bool
	// ExitErr is set when the tool exited non-zero.
	ExitErr error
	// Stderr keeps the tail of the tool's stderr for failures without diagnostics.
	Stderr string
}

// Failed reports whether the profile should fail the gate.
func (r BuildResult) Failed(denyWarnings bool) bool {
	if r.Errors > 0 {
		return true
	}

	if denyWarnings && r.Warnings > 0 {
		return true
	}

	if r.Finished && !r.Success {
		return true
	}

	return r.ExitErr != nil
}
