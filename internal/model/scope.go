package model

// Scope identifies the caller of a request. Every stored event belongs to
// exactly one workspace.
type Scope struct {
	UserID      string
	WorkspaceID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
