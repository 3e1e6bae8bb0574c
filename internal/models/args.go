package models

// ArgProject is the argument key for explicit sub-project selection (--project).
const ArgProject = "project"

// Args is the parsed CLI argument map handed to resolution. It is never
// reparsed; only known keys are read.
type Args map[string]string

// Project returns the explicitly selected sub-project, if any.
func (a Args) Project() string {
	if a == nil {
		return ""
	}
	return a[ArgProject]
}
