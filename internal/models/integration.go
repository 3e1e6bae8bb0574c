package models

// IntegrationDescriptor is one entry of a project's "integrations" mapping.
type IntegrationDescriptor struct {
	// Name is the mapping key (e.g. "capacitor")
	Name string `json:"name" yaml:"name"`

	// Enabled is false only when the config says "enabled": false
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Root is the resolved integration directory (defaults to the project directory)
	Root string `json:"root" yaml:"root"`
}

// PersonalizationDetails describes the identity applied by Personalize.
type PersonalizationDetails struct {
	// Name is the human-readable app name written to the project config
	Name string

	// ProjectID is the package name written to package.json
	ProjectID string

	// PackageID is the bundle identifier (e.g. "io.ionic.starter") for native integrations
	PackageID string

	// Version defaults to 0.0.1
	Version string

	// Description defaults to "An Ionic project"
	Description string
}
