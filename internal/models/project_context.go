package models

// Context is the workspace shape found at a root directory.
type Context string

const (
	ContextApp      Context = "app"
	ContextMultiApp Context = "multiapp"
	ContextUnknown  Context = "unknown"
)

// ResolutionResult is the outcome of one resolution pass over a workspace.
//
// A result is immutable once computed. Type may hold a value outside the
// supported set; in that case Errors carries ErrInvalidProjectType and the
// value is only meant for display.
type ResolutionResult struct {
	// Context is the workspace shape
	Context Context `json:"context" yaml:"context"`

	// Type is the resolved project type, empty if none was found
	Type ProjectType `json:"type,omitempty" yaml:"type,omitempty"`

	// Name is the selected sub-project (multi-app only)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// ConfigPath is the path of the project config file
	ConfigPath string `json:"configPath" yaml:"configPath"`

	// Config is the normalized config document, nil when it could not be read
	Config []byte `json:"-" yaml:"-"`

	// Errors are the diagnostics collected during resolution, in order
	Errors []*ResolutionError `json:"errors" yaml:"errors"`
}

// HasError reports whether a diagnostic with the given code was recorded.
func (r *ResolutionResult) HasError(code ErrorCode) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ErrorCodes returns the codes of all diagnostics, in order.
func (r *ResolutionResult) ErrorCodes() []ErrorCode {
	codes := make([]ErrorCode, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// Usable reports whether the result carries a supported type and no
// diagnostics, i.e. a project can be built from it.
func (r *ResolutionResult) Usable() bool {
	return len(r.Errors) == 0 && r.Type.IsValid()
}
