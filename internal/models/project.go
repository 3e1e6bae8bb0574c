package models

import (
	"fmt"
	"strings"
)

// ProjectType represents the kind of project. The set is closed: any
// other string read from a config file is invalid.
type ProjectType string

const (
	ProjectTypeAngular      ProjectType = "angular"
	ProjectTypeIonicAngular ProjectType = "ionic-angular"
	ProjectTypeIonic1       ProjectType = "ionic1"
	ProjectTypeCustom       ProjectType = "custom"
)

// ProjectTypes lists every supported type.
var ProjectTypes = []ProjectType{
	ProjectTypeAngular,
	ProjectTypeIonicAngular,
	ProjectTypeIonic1,
	ProjectTypeCustom,
}

// IsValid checks if the project type belongs to the supported set.
func (t ProjectType) IsValid() bool {
	switch t {
	case ProjectTypeAngular, ProjectTypeIonicAngular, ProjectTypeIonic1, ProjectTypeCustom:
		return true
	default:
		return false
	}
}

// String returns the string representation of ProjectType
func (t ProjectType) String() string {
	return string(t)
}

// PrettyName returns the display name used in diagnostics and info output.
func (t ProjectType) PrettyName() string {
	switch t {
	case ProjectTypeAngular:
		return "Ionic Angular"
	case ProjectTypeIonicAngular:
		return "Ionic 2/3"
	case ProjectTypeIonic1:
		return "Ionic 1"
	case ProjectTypeCustom:
		return "Custom"
	default:
		return string(t)
	}
}

// ParseProjectType parses a string into a ProjectType
func ParseProjectType(s string) (ProjectType, error) {
	t := ProjectType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid project type: %s (must be %s)", s, joinTypes(ProjectTypes))
	}
	return t, nil
}

func joinTypes(types []ProjectType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
